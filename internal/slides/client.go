package slides

import (
	"context"
	"fmt"
	"net/http"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	slides "google.golang.org/api/slides/v1"
)

// PresentationMimeType is the Drive MIME type of Google Slides files.
const PresentationMimeType = "application/vnd.google-apps.presentation"

// MaxSearchResults caps presentation searches; larger requests are clamped.
const MaxSearchResults = 100

// Client wraps the Slides service, plus Drive for presentation search, for
// one impersonated user.
type Client struct {
	svc      *slides.Service
	driveSvc *drive.Service
	identity string
}

// Identity returns the impersonated user this client is bound to.
func (c *Client) Identity() string {
	return c.identity
}

// NewClient creates a read-only Slides client from a delegated HTTP client.
func NewClient(ctx context.Context, httpClient *http.Client, identity string) (*Client, error) {
	svc, err := slides.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Slides service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}
	return &Client{svc: svc, driveSvc: driveSvc, identity: identity}, nil
}

// PresentationInfo is the flat listing view of one presentation file.
type PresentationInfo struct {
	ID           string
	Name         string
	ModifiedTime string
	WebViewLink  string
}

// SearchPresentations finds Slides files matching a name fragment, up to
// maxResults (clamped to 1..MaxSearchResults).
func (c *Client) SearchPresentations(ctx context.Context, nameQuery string, maxResults int64) ([]PresentationInfo, error) {
	if maxResults <= 0 {
		maxResults = 10
	}
	if maxResults > MaxSearchResults {
		maxResults = MaxSearchResults
	}

	query := fmt.Sprintf("mimeType = '%s' and trashed = false", PresentationMimeType)
	if nameQuery != "" {
		query += fmt.Sprintf(" and name contains '%s'", escapeQuery(nameQuery))
	}

	res, err := c.driveSvc.Files.List().
		Context(ctx).
		Q(query).
		PageSize(maxResults).
		Fields("files(id, name, modifiedTime, webViewLink)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search presentations: %w", err)
	}

	infos := make([]PresentationInfo, 0, len(res.Files))
	for _, f := range res.Files {
		infos = append(infos, PresentationInfo{
			ID:           f.Id,
			Name:         f.Name,
			ModifiedTime: f.ModifiedTime,
			WebViewLink:  f.WebViewLink,
		})
	}
	return infos, nil
}

// GetPresentation retrieves a full presentation including all slides.
func (c *Client) GetPresentation(presentationID string) (*slides.Presentation, error) {
	if presentationID == "" {
		return nil, fmt.Errorf("presentationID is required")
	}
	pres, err := c.svc.Presentations.Get(presentationID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get presentation %s: %w", presentationID, err)
	}
	return pres, nil
}

// GetSlide retrieves a single slide page by object ID.
func (c *Client) GetSlide(presentationID, slideID string) (*slides.Page, error) {
	if presentationID == "" {
		return nil, fmt.Errorf("presentationID is required")
	}
	if slideID == "" {
		return nil, fmt.Errorf("slideID is required")
	}
	page, err := c.svc.Presentations.Pages.Get(presentationID, slideID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get slide %s: %w", slideID, err)
	}
	return page, nil
}

// escapeQuery escapes single quotes for embedding in a Drive query string.
func escapeQuery(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
