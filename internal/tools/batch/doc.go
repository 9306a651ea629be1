// Package batch provides parameter helpers for tools whose inputs accept
// either a single value or an array, such as spreadsheet ranges and
// calendar IDs.
package batch
