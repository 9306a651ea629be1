// Package gmail provides read-only access to Gmail messages, labels and
// attachments for an impersonated user.
//
// The package contains the MIME extraction core: Gmail returns messages as a
// recursive part tree, and ExtractEmail flattens that tree into a ParsedEmail
// with at most one plain text body, at most one HTML body and an ordered
// attachment list. HTML-only messages are converted to readable text by a
// small tag stripping transform.
package gmail
