// Package docs provides read-only access to Google Docs documents and the
// structural-element extraction that flattens a document body into plain
// text or a heading outline.
package docs
