// Package drive_tools provides read-only MCP tools for Google Drive: file
// search, metadata lookup, and content retrieval with export of native
// Google types.
package drive_tools
