// Package directory_tools provides a read-only MCP tool for the Admin SDK
// Directory API: listing domain users. The impersonated identity must hold
// admin privileges.
package directory_tools
