package docs

import (
	"context"
	"fmt"
	"net/http"

	docs "google.golang.org/api/docs/v1"
	"google.golang.org/api/option"
)

// Client wraps the Google Docs service for one impersonated user.
type Client struct {
	svc      *docs.Service
	identity string
}

// Identity returns the impersonated user this client is bound to.
func (c *Client) Identity() string {
	return c.identity
}

// NewClient creates a read-only Docs client from a delegated HTTP client.
func NewClient(ctx context.Context, httpClient *http.Client, identity string) (*Client, error) {
	svc, err := docs.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Docs service: %w", err)
	}
	return &Client{svc: svc, identity: identity}, nil
}

// GetDocument retrieves a document's full body by ID.
func (c *Client) GetDocument(documentID string) (*docs.Document, error) {
	if documentID == "" {
		return nil, fmt.Errorf("documentID is required")
	}
	doc, err := c.svc.Documents.Get(documentID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", documentID, err)
	}
	return doc, nil
}
