package calendar_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/obe711/google-workspace-mcp/internal/instrumentation"
	"github.com/obe711/google-workspace-mcp/internal/server"
	"github.com/obe711/google-workspace-mcp/internal/tools/common"
)

// RegisterEventTools registers event listing and lookup tools with the MCP
// server
func RegisterEventTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listEventsTool := mcp.NewTool("calendar_list_events",
		mcp.WithDescription("List events in a calendar within a time window"),
		common.UserOption(),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (default: 'primary')"),
		),
		mcp.WithString("timeMin",
			mcp.Required(),
			mcp.Description("Window start as an RFC 3339 timestamp (e.g., '2025-06-01T00:00:00Z')"),
		),
		mcp.WithString("timeMax",
			mcp.Required(),
			mcp.Description("Window end as an RFC 3339 timestamp; must be after timeMin"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of results to return, 1-100 (default: 10)"),
		),
	)

	s.AddTool(listEventsTool, common.InstrumentedToolHandlerWithService(
		"calendar_list_events", instrumentation.ServiceCalendar, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListEvents(ctx, request, sc)
		}))

	searchEventsTool := mcp.NewTool("calendar_search_events",
		mcp.WithDescription("Search events in a calendar by free text"),
		common.UserOption(),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (default: 'primary')"),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free text search over event fields"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of results to return, 1-100 (default: 10)"),
		),
	)

	s.AddTool(searchEventsTool, common.InstrumentedToolHandlerWithService(
		"calendar_search_events", instrumentation.ServiceCalendar, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchEvents(ctx, request, sc)
		}))

	getEventTool := mcp.NewTool("calendar_get_event",
		mcp.WithDescription("Get a single event with attendees and conference details"),
		common.UserOption(),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (default: 'primary')"),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event"),
		),
	)

	s.AddTool(getEventTool, common.InstrumentedToolHandlerWithService(
		"calendar_get_event", instrumentation.ServiceCalendar, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetEvent(ctx, request, sc)
		}))

	return nil
}

// calendarIDFromArgs returns the calendarId argument, defaulting to the
// user's primary calendar
func calendarIDFromArgs(args map[string]interface{}) string {
	if v, ok := args["calendarId"].(string); ok && v != "" {
		return v
	}
	return "primary"
}

func handleListEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	timeMin, err := parseTimeArg(args, "timeMin")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	timeMax, err := parseTimeArg(args, "timeMax")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	maxResults := int64(10)
	if v, ok := args["maxResults"].(float64); ok {
		maxResults = int64(v)
	}

	query := ""
	if v, ok := args["query"].(string); ok {
		query = v
	}

	client, err := calendarClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	events, err := client.ListEvents(calendarIDFromArgs(args), timeMin, timeMax, query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error listing events: %v", err)), nil
	}

	return mcp.NewToolResultText(formatEventList(events)), nil
}

func handleSearchEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	maxResults := int64(10)
	if v, ok := args["maxResults"].(float64); ok {
		maxResults = int64(v)
	}

	client, err := calendarClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	events, err := client.SearchEvents(calendarIDFromArgs(args), query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error searching events: %v", err)), nil
	}

	return mcp.NewToolResultText(formatEventList(events)), nil
}

func handleGetEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	eventID, ok := args["eventId"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("eventId is required"), nil
	}

	client, err := calendarClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	event, err := client.GetEvent(calendarIDFromArgs(args), eventID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting event: %v", err)), nil
	}

	return mcp.NewToolResultText(formatEvent(event)), nil
}
