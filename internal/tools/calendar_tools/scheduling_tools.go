package calendar_tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/obe711/google-workspace-mcp/internal/calendar"
	"github.com/obe711/google-workspace-mcp/internal/instrumentation"
	"github.com/obe711/google-workspace-mcp/internal/server"
	"github.com/obe711/google-workspace-mcp/internal/tools/batch"
	"github.com/obe711/google-workspace-mcp/internal/tools/common"
)

// RegisterSchedulingTools registers availability tools with the MCP server
func RegisterSchedulingTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	freeBusyTool := mcp.NewTool("calendar_free_busy",
		mcp.WithDescription("Query busy intervals for one or more calendars in a time window"),
		common.UserOption(),
		mcp.WithString("calendarIds",
			mcp.Required(),
			mcp.Description("Calendar ID (string) or array of calendar IDs"),
		),
		mcp.WithString("timeMin",
			mcp.Required(),
			mcp.Description("Window start as an RFC 3339 timestamp"),
		),
		mcp.WithString("timeMax",
			mcp.Required(),
			mcp.Description("Window end as an RFC 3339 timestamp; must be after timeMin"),
		),
	)

	s.AddTool(freeBusyTool, common.InstrumentedToolHandlerWithService(
		"calendar_free_busy", instrumentation.ServiceCalendar, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFreeBusy(ctx, request, sc)
		}))

	return nil
}

func handleFreeBusy(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	calendarIDs, err := batch.ParseStringOrArray(args["calendarIds"], "calendarIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	timeMin, err := parseTimeArg(args, "timeMin")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	timeMax, err := parseTimeArg(args, "timeMax")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := calendarClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	infos, err := client.QueryFreeBusy(timeMin, timeMax, calendarIDs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error querying free/busy: %v", err)), nil
	}

	return mcp.NewToolResultText(formatFreeBusy(timeMin, timeMax, infos)), nil
}

func formatFreeBusy(timeMin, timeMax time.Time, infos []calendar.FreeBusyInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Free/busy from %s to %s:\n\n",
		timeMin.Format(time.RFC3339), timeMax.Format(time.RFC3339))
	for _, info := range infos {
		fmt.Fprintf(&b, "Calendar: %s\n", info.Calendar)
		for _, e := range info.Errors {
			fmt.Fprintf(&b, "  Error: %s\n", e)
		}
		if len(info.Busy) == 0 && len(info.Errors) == 0 {
			b.WriteString("  Free for the whole window\n")
		}
		for _, busy := range info.Busy {
			fmt.Fprintf(&b, "  Busy: %s - %s\n",
				busy.Start.Format(time.RFC3339), busy.End.Format(time.RFC3339))
		}
		b.WriteString("\n")
	}
	return b.String()
}
