// Package calendar_tools provides read-only MCP tools for Google Calendar:
// calendar listing, event listing and search, event lookup, and free/busy
// queries.
package calendar_tools
