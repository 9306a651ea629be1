package gmail

import (
	"context"
	"fmt"
	"net/http"

	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const (
	// MaxSearchResults caps message searches; larger requests are clamped.
	MaxSearchResults = 100

	// MaxAttachmentSize defines the maximum attachment size in bytes (25MB)
	MaxAttachmentSize = 25 * 1024 * 1024
)

// Client wraps the Gmail Users service for one impersonated user.
type Client struct {
	svc      *gmail.UsersService
	identity string
}

// Identity returns the impersonated user this client is bound to.
func (c *Client) Identity() string {
	return c.identity
}

// NewClient creates a read-only Gmail client from a delegated HTTP client.
// The client is bound to the identity the HTTP client impersonates and must
// not be reused for another user.
func NewClient(ctx context.Context, httpClient *http.Client, identity string) (*Client, error) {
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}
	return &Client{svc: svc.Users, identity: identity}, nil
}

// MessageSummary is the flat listing view of one message.
type MessageSummary struct {
	ID       string
	ThreadID string
	Snippet  string
}

// SearchMessages lists messages matching a Gmail query, up to maxResults
// (clamped to 1..MaxSearchResults). A single bounded page is requested; the
// Gmail API never returns more than requested.
func (c *Client) SearchMessages(query string, maxResults int64) ([]MessageSummary, error) {
	if maxResults <= 0 {
		maxResults = 10
	}
	if maxResults > MaxSearchResults {
		maxResults = MaxSearchResults
	}

	res, err := c.svc.Messages.List("me").Q(query).MaxResults(maxResults).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}

	summaries := make([]MessageSummary, 0, len(res.Messages))
	for _, m := range res.Messages {
		summaries = append(summaries, MessageSummary{ID: m.Id, ThreadID: m.ThreadId})
	}
	return summaries, nil
}

// GetMessage retrieves a full Gmail message including its MIME part tree.
func (c *Client) GetMessage(messageID string) (*gmail.Message, error) {
	if messageID == "" {
		return nil, fmt.Errorf("messageID is required")
	}
	msg, err := c.svc.Messages.Get("me", messageID).Format("full").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", messageID, err)
	}
	return msg, nil
}

// HeaderValue returns the first header with the given name from a message
// payload, or empty string.
func HeaderValue(msg *gmail.Message, name string) string {
	if msg == nil || msg.Payload == nil {
		return ""
	}
	for _, h := range msg.Payload.Headers {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}

// ListLabels lists all labels of the impersonated user.
func (c *Client) ListLabels() ([]*gmail.Label, error) {
	res, err := c.svc.Labels.List("me").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	return res.Labels, nil
}

// GetLabel retrieves a single label including message counts.
func (c *Client) GetLabel(labelID string) (*gmail.Label, error) {
	if labelID == "" {
		return nil, fmt.Errorf("labelID is required")
	}
	label, err := c.svc.Labels.Get("me", labelID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get label %s: %w", labelID, err)
	}
	return label, nil
}

// ListAttachments extracts the attachment descriptors from a message.
func (c *Client) ListAttachments(messageID string) ([]Attachment, error) {
	msg, err := c.GetMessage(messageID)
	if err != nil {
		return nil, err
	}
	parsed, err := ExtractEmail(msg.Payload)
	if err != nil {
		return nil, err
	}
	return parsed.Attachments, nil
}

// GetAttachment retrieves and decodes the content of an attachment.
func (c *Client) GetAttachment(messageID, attachmentID string) ([]byte, error) {
	if messageID == "" {
		return nil, fmt.Errorf("messageID is required")
	}
	if attachmentID == "" {
		return nil, fmt.Errorf("attachmentID is required")
	}

	attachment, err := c.svc.Messages.Attachments.Get("me", messageID, attachmentID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment %s: %w", attachmentID, err)
	}

	if attachment.Size > MaxAttachmentSize {
		return nil, fmt.Errorf("attachment size %d exceeds maximum size %d", attachment.Size, MaxAttachmentSize)
	}

	data, err := DecodeBase64URL(attachment.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode attachment data: %w", err)
	}
	return data, nil
}

// GetRawMessage retrieves a message in raw RFC 822 form and decodes it.
func (c *Client) GetRawMessage(messageID string) ([]byte, error) {
	if messageID == "" {
		return nil, fmt.Errorf("messageID is required")
	}
	msg, err := c.svc.Messages.Get("me", messageID).Format("raw").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", messageID, err)
	}
	data, err := DecodeBase64URL(msg.Raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode raw message: %w", err)
	}
	return data, nil
}
