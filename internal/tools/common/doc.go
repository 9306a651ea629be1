// Package common provides shared utilities for MCP tool implementations.
// It resolves the Workspace identity for each call, mints per-invocation
// delegated HTTP clients, and wraps tool handlers with metrics and audit
// logging so every tool package behaves consistently.
package common
