// Package resources provides MCP resources for exposing server metadata.
// Resources are read-only data sources that MCP clients can fetch, such as
// the active output limits and the configured default identity.
package resources
