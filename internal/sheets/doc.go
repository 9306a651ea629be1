// Package sheets provides a read-only client for the Google Sheets API
// and helpers for flattening value grids into tab-separated text.
package sheets
