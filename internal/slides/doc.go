// Package slides provides read-only access to Google Slides presentations
// and the page-element extraction that flattens slide content, speaker notes
// and per-slide summaries into plain text.
package slides
