// Package google provides delegated authentication against Google Workspace.
//
// Authentication uses a domain-wide delegated service account: the JSON key
// is read once from disk and memoized, and every call derives a fresh JWT
// client bound to the impersonated user. Clients are never shared between
// identities.
package google
