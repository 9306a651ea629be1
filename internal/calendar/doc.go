// Package calendar provides a read-only client for the Google Calendar
// API: calendar listing, bounded event listing and search, single event
// retrieval, and free/busy queries.
package calendar
