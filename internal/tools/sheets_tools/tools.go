package sheets_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	sheets_v4 "google.golang.org/api/sheets/v4"

	"github.com/obe711/google-workspace-mcp/internal/format"
	"github.com/obe711/google-workspace-mcp/internal/instrumentation"
	"github.com/obe711/google-workspace-mcp/internal/server"
	"github.com/obe711/google-workspace-mcp/internal/sheets"
	"github.com/obe711/google-workspace-mcp/internal/tools/batch"
	"github.com/obe711/google-workspace-mcp/internal/tools/common"
)

// RegisterSheetsTools registers all Sheets-related tools with the MCP server
func RegisterSheetsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getSpreadsheetTool := mcp.NewTool("sheets_get_spreadsheet",
		mcp.WithDescription("Get spreadsheet metadata: title, locale, and the sheet list with grid sizes"),
		common.UserOption(),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
	)

	s.AddTool(getSpreadsheetTool, common.InstrumentedToolHandlerWithService(
		"sheets_get_spreadsheet", instrumentation.ServiceSheets, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetSpreadsheet(ctx, request, sc)
		}))

	readRangeTool := mcp.NewTool("sheets_read_range",
		mcp.WithDescription("Read a range of cells, rendered as tab separated values"),
		common.UserOption(),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("A1 notation range (e.g., 'Sheet1!A1:C10')"),
		),
	)

	s.AddTool(readRangeTool, common.InstrumentedToolHandlerWithService(
		"sheets_read_range", instrumentation.ServiceSheets, instrumentation.OperationRead, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleReadRange(ctx, request, sc)
		}))

	readRangesTool := mcp.NewTool("sheets_read_ranges",
		mcp.WithDescription("Read multiple ranges of cells in one call, each rendered as tab separated values"),
		common.UserOption(),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("ranges",
			mcp.Required(),
			mcp.Description("A1 notation range (string) or array of ranges"),
		),
	)

	s.AddTool(readRangesTool, common.InstrumentedToolHandlerWithService(
		"sheets_read_ranges", instrumentation.ServiceSheets, instrumentation.OperationRead, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleReadRanges(ctx, request, sc)
		}))

	return nil
}

// sheetsClient resolves the identity for this call and builds a Sheets client
// impersonating it
func sheetsClient(ctx context.Context, sc *server.ServerContext, args map[string]interface{}) (*sheets.Client, error) {
	httpClient, identity, err := common.DelegatedClient(ctx, sc, args)
	if err != nil {
		return nil, err
	}
	return sheets.NewClient(ctx, httpClient, identity)
}

func handleGetSpreadsheet(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	spreadsheetID, ok := args["spreadsheetId"].(string)
	if !ok || spreadsheetID == "" {
		return mcp.NewToolResultError("spreadsheetId is required"), nil
	}

	client, err := sheetsClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	info, err := client.GetSpreadsheet(spreadsheetID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting spreadsheet: %v", err)), nil
	}

	return mcp.NewToolResultText(formatSpreadsheetInfo(info)), nil
}

func handleReadRange(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	spreadsheetID, ok := args["spreadsheetId"].(string)
	if !ok || spreadsheetID == "" {
		return mcp.NewToolResultError("spreadsheetId is required"), nil
	}

	readRange, ok := args["range"].(string)
	if !ok || readRange == "" {
		return mcp.NewToolResultError("range is required"), nil
	}

	client, err := sheetsClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	values, err := client.ReadRange(spreadsheetID, readRange)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error reading range: %v", err)), nil
	}

	return mcp.NewToolResultText(format.Truncate(formatValueRange(values), sc.Config().Limits.BulkLimit)), nil
}

func handleReadRanges(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	spreadsheetID, ok := args["spreadsheetId"].(string)
	if !ok || spreadsheetID == "" {
		return mcp.NewToolResultError("spreadsheetId is required"), nil
	}

	ranges, err := batch.ParseStringOrArray(args["ranges"], "ranges")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := sheetsClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	valueRanges, err := client.ReadRanges(spreadsheetID, ranges)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error reading ranges: %v", err)), nil
	}

	var b strings.Builder
	for i, values := range valueRanges {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(formatValueRange(values))
	}

	return mcp.NewToolResultText(format.Truncate(b.String(), sc.Config().Limits.BulkLimit)), nil
}

func formatSpreadsheetInfo(info *sheets.SpreadsheetInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Spreadsheet: %s\n", info.Title)
	fmt.Fprintf(&b, "ID: %s\n", info.SpreadsheetID)
	if info.Locale != "" {
		fmt.Fprintf(&b, "Locale: %s\n", info.Locale)
	}
	if info.TimeZone != "" {
		fmt.Fprintf(&b, "Time Zone: %s\n", info.TimeZone)
	}
	fmt.Fprintf(&b, "\nSheets (%d):\n", len(info.Sheets))
	for _, sheet := range info.Sheets {
		fmt.Fprintf(&b, "%d. %s (ID: %d, %d rows x %d columns)\n",
			sheet.Index+1, sheet.Title, sheet.SheetID, sheet.RowCount, sheet.ColumnCount)
	}
	return b.String()
}

func formatValueRange(values *sheets_v4.ValueRange) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Range: %s\n", values.Range)
	if len(values.Values) == 0 {
		b.WriteString("(empty)\n")
		return b.String()
	}
	b.WriteString(sheets.ValuesToTSV(values.Values))
	b.WriteString("\n")
	return b.String()
}
