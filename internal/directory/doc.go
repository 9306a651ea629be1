// Package directory provides a read-only client for the Admin SDK
// Directory API. Listing domain users requires impersonating an
// identity that holds admin privileges.
package directory
