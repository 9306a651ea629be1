package gmail

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/emersion/go-message/mail"
)

// RawHeader is one decoded RFC 822 header field.
type RawHeader struct {
	Key   string
	Value string
}

// ParseRawHeaders parses a raw RFC 822 message and returns its header fields
// with RFC 2047 encoded words decoded. The body is ignored; callers wanting
// body text should use the structured message format instead.
func ParseRawHeaders(raw []byte) ([]RawHeader, error) {
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse raw message: %w", err)
	}
	defer mr.Close()

	var headers []RawHeader
	fields := mr.Header.Fields()
	for fields.Next() {
		value, err := fields.Text()
		if err != nil {
			// Undecodable field: keep the raw value rather than dropping it.
			value = fields.Value()
		}
		headers = append(headers, RawHeader{Key: fields.Key(), Value: value})
	}
	return headers, nil
}

// FormatRawHeaders renders parsed headers one per line.
func FormatRawHeaders(headers []RawHeader) string {
	var b strings.Builder
	for _, h := range headers {
		b.WriteString(h.Key)
		b.WriteString(": ")
		b.WriteString(h.Value)
		b.WriteString("\n")
	}
	return b.String()
}
