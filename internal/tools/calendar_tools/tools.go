package calendar_tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/obe711/google-workspace-mcp/internal/calendar"
	"github.com/obe711/google-workspace-mcp/internal/server"
	"github.com/obe711/google-workspace-mcp/internal/tools/common"
)

// RegisterCalendarTools registers all Calendar-related tools with the MCP
// server
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := RegisterCalendarListTools(s, sc); err != nil {
		return fmt.Errorf("failed to register calendar list tools: %w", err)
	}

	if err := RegisterEventTools(s, sc); err != nil {
		return fmt.Errorf("failed to register event tools: %w", err)
	}

	if err := RegisterSchedulingTools(s, sc); err != nil {
		return fmt.Errorf("failed to register scheduling tools: %w", err)
	}

	return nil
}

// calendarClient resolves the identity for this call and builds a Calendar
// client impersonating it
func calendarClient(ctx context.Context, sc *server.ServerContext, args map[string]interface{}) (*calendar.Client, error) {
	httpClient, identity, err := common.DelegatedClient(ctx, sc, args)
	if err != nil {
		return nil, err
	}
	return calendar.NewClient(ctx, httpClient, identity)
}

// parseTimeArg parses an RFC 3339 timestamp argument
func parseTimeArg(args map[string]interface{}, name string) (time.Time, error) {
	v, ok := args[name].(string)
	if !ok || v == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an RFC 3339 timestamp (e.g., '2025-06-01T09:00:00Z'): %v", name, err)
	}
	return t, nil
}

func formatEvent(event *calendar.EventSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Event: %s\n", event.Summary)
	fmt.Fprintf(&b, "ID: %s\n", event.ID)
	if event.AllDay {
		fmt.Fprintf(&b, "Date: %s (all day)\n", event.Start.Format("2006-01-02"))
	} else {
		fmt.Fprintf(&b, "Start: %s\n", event.Start.Format(time.RFC3339))
		fmt.Fprintf(&b, "End: %s\n", event.End.Format(time.RFC3339))
	}
	if event.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", event.Location)
	}
	if event.Status != "" {
		fmt.Fprintf(&b, "Status: %s\n", event.Status)
	}
	if event.Organizer != "" {
		fmt.Fprintf(&b, "Organizer: %s\n", event.Organizer)
	}
	if event.MeetLink != "" {
		fmt.Fprintf(&b, "Meet: %s\n", event.MeetLink)
	}
	if len(event.Attendees) > 0 {
		fmt.Fprintf(&b, "Attendees (%d):\n", len(event.Attendees))
		for _, att := range event.Attendees {
			name := att.Email
			if att.DisplayName != "" {
				name = fmt.Sprintf("%s <%s>", att.DisplayName, att.Email)
			}
			fmt.Fprintf(&b, "  - %s (%s)\n", name, att.ResponseStatus)
		}
	}
	if event.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", event.Description)
	}
	return b.String()
}

func formatEventList(events []calendar.EventSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d event(s):\n\n", len(events))
	for i, event := range events {
		fmt.Fprintf(&b, "%d. %s\n", i+1, event.Summary)
		fmt.Fprintf(&b, "   ID: %s\n", event.ID)
		if event.AllDay {
			fmt.Fprintf(&b, "   Date: %s (all day)\n", event.Start.Format("2006-01-02"))
		} else {
			fmt.Fprintf(&b, "   When: %s - %s\n",
				event.Start.Format("2006-01-02 15:04"), event.End.Format("15:04"))
		}
		if event.Location != "" {
			fmt.Fprintf(&b, "   Location: %s\n", event.Location)
		}
		b.WriteString("\n")
	}
	return b.String()
}
