// Package slides_tools provides read-only MCP tools for Google Slides:
// presentation search, per-slide summaries, and slide content with speaker
// notes.
package slides_tools
