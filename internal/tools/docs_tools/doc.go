// Package docs_tools provides read-only MCP tools for Google Docs: full
// document text extraction and a heading outline.
package docs_tools
