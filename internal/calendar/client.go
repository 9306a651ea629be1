package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// MaxEventResults caps event listings; larger requests are clamped.
const MaxEventResults = 100

// Client wraps the Google Calendar service for one impersonated user.
type Client struct {
	svc      *calendar.Service
	identity string
}

// Identity returns the impersonated user this client is bound to.
func (c *Client) Identity() string {
	return c.identity
}

// NewClient creates a read-only Calendar client from a delegated HTTP client.
// The client is bound to the identity the HTTP client impersonates and must
// not be reused for another user.
func NewClient(ctx context.Context, httpClient *http.Client, identity string) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}
	return &Client{svc: svc, identity: identity}, nil
}

// ListCalendars lists all calendars accessible to the user
func (c *Client) ListCalendars() ([]CalendarInfo, error) {
	list, err := c.svc.CalendarList.List().Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	var calendars []CalendarInfo
	for _, entry := range list.Items {
		calendars = append(calendars, toCalendarInfo(entry))
	}
	return calendars, nil
}

// ListEvents lists events in a calendar within a time window, expanded to
// single instances and ordered by start time. An optional free-text query
// filters the results. maxResults is clamped to 1..MaxEventResults.
func (c *Client) ListEvents(calendarID string, timeMin, timeMax time.Time, query string, maxResults int64) ([]EventSummary, error) {
	if calendarID == "" {
		return nil, fmt.Errorf("calendarID is required")
	}
	if !timeMax.After(timeMin) {
		return nil, fmt.Errorf("timeMax must be after timeMin")
	}
	maxResults = clampResults(maxResults)

	call := c.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxResults)

	if query != "" {
		call = call.Q(query)
	}

	events, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var summaries []EventSummary
	for _, event := range events.Items {
		summaries = append(summaries, toEventSummary(event))
	}
	return summaries, nil
}

// SearchEvents searches a calendar by free-text query without a time
// window. maxResults is clamped to 1..MaxEventResults.
func (c *Client) SearchEvents(calendarID, query string, maxResults int64) ([]EventSummary, error) {
	if calendarID == "" {
		return nil, fmt.Errorf("calendarID is required")
	}
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	maxResults = clampResults(maxResults)

	events, err := c.svc.Events.List(calendarID).
		Q(query).
		SingleEvents(true).
		MaxResults(maxResults).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}

	var summaries []EventSummary
	for _, event := range events.Items {
		summaries = append(summaries, toEventSummary(event))
	}
	return summaries, nil
}

// GetEvent retrieves a specific event by ID
func (c *Client) GetEvent(calendarID, eventID string) (*EventSummary, error) {
	if calendarID == "" {
		return nil, fmt.Errorf("calendarID is required")
	}
	if eventID == "" {
		return nil, fmt.Errorf("eventID is required")
	}

	event, err := c.svc.Events.Get(calendarID, eventID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	summary := toEventSummary(event)
	return &summary, nil
}

// QueryFreeBusy checks availability for calendars in a time range
func (c *Client) QueryFreeBusy(timeMin, timeMax time.Time, calendarIDs []string) ([]FreeBusyInfo, error) {
	if len(calendarIDs) == 0 {
		return nil, fmt.Errorf("at least one calendar ID is required")
	}
	if !timeMax.After(timeMin) {
		return nil, fmt.Errorf("timeMax must be after timeMin")
	}

	items := make([]*calendar.FreeBusyRequestItem, len(calendarIDs))
	for i, id := range calendarIDs {
		items[i] = &calendar.FreeBusyRequestItem{Id: id}
	}

	query := &calendar.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   items,
	}

	result, err := c.svc.Freebusy.Query(query).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to query freebusy: %w", err)
	}

	// Iterate in request order; the response map has no stable ordering.
	var infos []FreeBusyInfo
	for _, id := range calendarIDs {
		cal, ok := result.Calendars[id]
		if !ok {
			continue
		}
		info := FreeBusyInfo{Calendar: id}
		for _, busy := range cal.Busy {
			start, _ := time.Parse(time.RFC3339, busy.Start)
			end, _ := time.Parse(time.RFC3339, busy.End)
			info.Busy = append(info.Busy, TimeRange{Start: start, End: end})
		}
		for _, calErr := range cal.Errors {
			info.Errors = append(info.Errors, calErr.Reason)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func clampResults(n int64) int64 {
	if n <= 0 {
		return 10
	}
	if n > MaxEventResults {
		return MaxEventResults
	}
	return n
}
