package sheets

import (
	"context"
	"fmt"
	"net/http"

	sheets "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"
)

// Client wraps the Sheets API service for one impersonated user.
type Client struct {
	svc      *sheets.Service
	identity string
}

// Identity returns the impersonated user this client is bound to.
func (c *Client) Identity() string {
	return c.identity
}

// NewClient creates a read-only Sheets client from a delegated HTTP client.
// The client is bound to the identity the HTTP client impersonates and must
// not be reused for another user.
func NewClient(ctx context.Context, httpClient *http.Client, identity string) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}
	return &Client{svc: svc, identity: identity}, nil
}

// SheetInfo describes one sheet (tab) within a spreadsheet.
type SheetInfo struct {
	Title       string
	SheetID     int64
	Index       int64
	RowCount    int64
	ColumnCount int64
}

// SpreadsheetInfo is the metadata view of a spreadsheet.
type SpreadsheetInfo struct {
	SpreadsheetID string
	Title         string
	Locale        string
	TimeZone      string
	Sheets        []SheetInfo
}

// GetSpreadsheet retrieves spreadsheet metadata without cell data.
func (c *Client) GetSpreadsheet(spreadsheetID string) (*SpreadsheetInfo, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheetID is required")
	}

	ss, err := c.svc.Spreadsheets.Get(spreadsheetID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet %s: %w", spreadsheetID, err)
	}

	info := &SpreadsheetInfo{SpreadsheetID: ss.SpreadsheetId}
	if ss.Properties != nil {
		info.Title = ss.Properties.Title
		info.Locale = ss.Properties.Locale
		info.TimeZone = ss.Properties.TimeZone
	}
	for _, sh := range ss.Sheets {
		if sh.Properties == nil {
			continue
		}
		si := SheetInfo{
			Title:   sh.Properties.Title,
			SheetID: sh.Properties.SheetId,
			Index:   sh.Properties.Index,
		}
		if sh.Properties.GridProperties != nil {
			si.RowCount = sh.Properties.GridProperties.RowCount
			si.ColumnCount = sh.Properties.GridProperties.ColumnCount
		}
		info.Sheets = append(info.Sheets, si)
	}
	return info, nil
}

// ReadRange reads a single A1-notation range and returns its value grid.
func (c *Client) ReadRange(spreadsheetID, readRange string) (*sheets.ValueRange, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheetID is required")
	}
	if readRange == "" {
		return nil, fmt.Errorf("range is required")
	}

	vr, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}
	return vr, nil
}

// ReadRanges reads multiple A1-notation ranges in one batch request.
func (c *Client) ReadRanges(spreadsheetID string, ranges []string) ([]*sheets.ValueRange, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheetID is required")
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("at least one range is required")
	}

	res, err := c.svc.Spreadsheets.Values.BatchGet(spreadsheetID).Ranges(ranges...).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read ranges: %w", err)
	}
	return res.ValueRanges, nil
}
