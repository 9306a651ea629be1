package gmail

import (
	"encoding/base64"
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
)

// NoReadableBody is returned by ReadableBody when a message carries neither a
// plain text nor an HTML part.
const NoReadableBody = "[No readable body found]"

// Attachment describes one attachment found in a message part tree.
type Attachment struct {
	Filename     string
	MimeType     string
	Size         int64
	AttachmentID string
}

// ParsedEmail is the flattened view of a Gmail MIME tree: at most one plain
// text body, at most one HTML body, and the attachments in document order.
type ParsedEmail struct {
	PlainBody   string
	HTMLBody    string
	Attachments []Attachment
}

// ExtractEmail walks a message part tree depth-first and produces a
// ParsedEmail. Each node is classified in order: a filename marks an
// attachment (no descent), child parts mark a container (descend, skip own
// body), otherwise an inline body is decoded. The first text/plain and the
// first text/html leaf win; later duplicates of the same type are dropped,
// not concatenated.
func ExtractEmail(root *gmail.MessagePart) (*ParsedEmail, error) {
	parsed := &ParsedEmail{}
	if err := walkPart(root, parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

func walkPart(part *gmail.MessagePart, parsed *ParsedEmail) error {
	if part == nil {
		return nil
	}

	if part.Filename != "" {
		att := Attachment{
			Filename: part.Filename,
			MimeType: part.MimeType,
		}
		if part.Body != nil {
			att.Size = part.Body.Size
			att.AttachmentID = part.Body.AttachmentId
		}
		parsed.Attachments = append(parsed.Attachments, att)
		return nil
	}

	if len(part.Parts) > 0 {
		for _, sub := range part.Parts {
			if err := walkPart(sub, parsed); err != nil {
				return err
			}
		}
		return nil
	}

	if part.Body == nil || part.Body.Data == "" {
		return nil
	}

	switch part.MimeType {
	case "text/plain":
		if parsed.PlainBody != "" {
			return nil
		}
		data, err := DecodeBase64URL(part.Body.Data)
		if err != nil {
			return fmt.Errorf("failed to decode text/plain part: %w", err)
		}
		parsed.PlainBody = string(data)
	case "text/html":
		if parsed.HTMLBody != "" {
			return nil
		}
		data, err := DecodeBase64URL(part.Body.Data)
		if err != nil {
			return fmt.Errorf("failed to decode text/html part: %w", err)
		}
		parsed.HTMLBody = string(data)
	}

	return nil
}

// ReadableBody returns the best textual rendition of the message: the plain
// text body when present, otherwise the HTML body stripped down to text,
// otherwise a fixed placeholder.
func (p *ParsedEmail) ReadableBody() string {
	if p.PlainBody != "" {
		return p.PlainBody
	}
	if p.HTMLBody != "" {
		return HTMLToText(p.HTMLBody)
	}
	return NoReadableBody
}

// DecodeBase64URL decodes Gmail body payloads. The API uses the RFC 4648
// URL-safe alphabet; raw (unpadded) input is accepted as well since Gmail
// omits padding on some parts.
func DecodeBase64URL(s string) ([]byte, error) {
	data, err := base64.URLEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	data, rawErr := base64.RawURLEncoding.DecodeString(s)
	if rawErr == nil {
		return data, nil
	}
	return nil, err
}
