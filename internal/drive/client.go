package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	// FolderMimeType is the MIME type for Google Drive folders
	FolderMimeType = "application/vnd.google-apps.folder"

	// MaxSearchResults caps file searches; larger requests are clamped.
	MaxSearchResults = 100

	// ExportSizeLimit is the Drive API's ceiling on exported content
	// (10 MiB). Native files whose export exceeds it cannot be fetched.
	ExportSizeLimit = 10 * 1024 * 1024
)

// exportMimeTypes maps native Google MIME types to the fixed export
// target used when fetching their content.
var exportMimeTypes = map[string]string{
	"application/vnd.google-apps.document":     "text/plain",
	"application/vnd.google-apps.spreadsheet":  "text/csv",
	"application/vnd.google-apps.presentation": "text/plain",
}

const fileInfoFields = "id, name, mimeType, size, createdTime, modifiedTime, webViewLink, parents, owners, shared, trashed"

// Client wraps the Google Drive API service for one impersonated user.
type Client struct {
	svc      *drive.Service
	identity string
}

// Identity returns the impersonated user this client is bound to.
func (c *Client) Identity() string {
	return c.identity
}

// NewClient creates a read-only Drive client from a delegated HTTP client.
// The client is bound to the identity the HTTP client impersonates and must
// not be reused for another user.
func NewClient(ctx context.Context, httpClient *http.Client, identity string) (*Client, error) {
	svc, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}
	return &Client{svc: svc, identity: identity}, nil
}

// SearchFiles lists non-trashed files matching a Drive query, up to
// maxResults (clamped to 1..MaxSearchResults).
func (c *Client) SearchFiles(ctx context.Context, query string, maxResults int64) ([]*FileInfo, error) {
	if maxResults <= 0 {
		maxResults = 10
	}
	if maxResults > MaxSearchResults {
		maxResults = MaxSearchResults
	}

	q := "trashed = false"
	if query != "" {
		q = fmt.Sprintf("(%s) and trashed = false", query)
	}

	res, err := c.svc.Files.List().
		Context(ctx).
		Q(q).
		PageSize(maxResults).
		Fields(googleapi.Field("nextPageToken, files(" + fileInfoFields + ")")).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search files: %w", err)
	}

	files := make([]*FileInfo, len(res.Files))
	for i, f := range res.Files {
		files[i] = convertToFileInfo(f)
	}
	return files, nil
}

// GetFile retrieves metadata for a specific file
func (c *Client) GetFile(ctx context.Context, fileID string) (*FileInfo, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	file, err := c.svc.Files.Get(fileID).
		Context(ctx).
		Fields(fileInfoFields).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get file %s: %w", fileID, err)
	}

	return convertToFileInfo(file), nil
}

// GetFileContent fetches a file's content. Native Google types are exported
// with the fixed MIME mapping; other files are downloaded directly. When a
// native file's export exceeds ExportSizeLimit the result carries
// TooLarge=true and no data, so callers can fall back to the web view link.
func (c *Client) GetFileContent(ctx context.Context, fileID string) (*FileContent, error) {
	info, err := c.GetFile(ctx, fileID)
	if err != nil {
		return nil, err
	}

	exportMime, native := exportMimeTypes[info.MimeType]
	if !native {
		resp, err := c.svc.Files.Get(fileID).Context(ctx).Download()
		if err != nil {
			return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
		}
		defer func() { _ = resp.Body.Close() }()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
		}
		return &FileContent{Info: info, Data: data}, nil
	}

	resp, err := c.svc.Files.Export(fileID, exportMime).Context(ctx).Download()
	if err != nil {
		if isExportTooLarge(err) {
			return &FileContent{Info: info, Exported: true, ExportMimeType: exportMime, TooLarge: true}, nil
		}
		return nil, fmt.Errorf("failed to export file %s: %w", fileID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, ExportSizeLimit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read exported file %s: %w", fileID, err)
	}
	if len(data) > ExportSizeLimit {
		return &FileContent{Info: info, Exported: true, ExportMimeType: exportMime, TooLarge: true}, nil
	}

	return &FileContent{Info: info, Data: data, Exported: true, ExportMimeType: exportMime}, nil
}

// isExportTooLarge reports whether an export failed because the content
// exceeds the Drive API's export ceiling.
func isExportTooLarge(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code != http.StatusForbidden {
		return false
	}
	for _, e := range apiErr.Errors {
		if e.Reason == "exportSizeLimitExceeded" {
			return true
		}
	}
	return strings.Contains(apiErr.Message, "too large")
}

// convertToFileInfo converts a Drive API File to our FileInfo type
func convertToFileInfo(f *drive.File) *FileInfo {
	fileInfo := &FileInfo{
		ID:          f.Id,
		Name:        f.Name,
		MimeType:    f.MimeType,
		Size:        f.Size,
		WebViewLink: f.WebViewLink,
		Parents:     f.Parents,
		Shared:      f.Shared,
		Trashed:     f.Trashed,
	}

	if f.CreatedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.CreatedTime); err == nil {
			fileInfo.CreatedTime = t
		}
	}
	if f.ModifiedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
			fileInfo.ModifiedTime = t
		}
	}

	for _, owner := range f.Owners {
		fileInfo.Owners = append(fileInfo.Owners, User{
			DisplayName:  owner.DisplayName,
			EmailAddress: owner.EmailAddress,
		})
	}

	return fileInfo
}
