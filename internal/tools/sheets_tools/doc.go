// Package sheets_tools provides read-only MCP tools for Google Sheets:
// spreadsheet metadata and range reads rendered as tab separated values.
package sheets_tools
