// Package gmail_tools provides read-only MCP tools for Gmail: message
// search and retrieval, raw RFC 822 access, labels, and attachments.
package gmail_tools
