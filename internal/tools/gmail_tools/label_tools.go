package gmail_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	gmail_v1 "google.golang.org/api/gmail/v1"

	"github.com/obe711/google-workspace-mcp/internal/instrumentation"
	"github.com/obe711/google-workspace-mcp/internal/server"
	"github.com/obe711/google-workspace-mcp/internal/tools/common"
)

// RegisterLabelTools registers label tools with the MCP server
func RegisterLabelTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listLabelsTool := mcp.NewTool("gmail_list_labels",
		mcp.WithDescription("List all labels in the user's mailbox"),
		common.UserOption(),
	)

	s.AddTool(listLabelsTool, common.InstrumentedToolHandlerWithService(
		"gmail_list_labels", instrumentation.ServiceGmail, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListLabels(ctx, request, sc)
		}))

	getLabelTool := mcp.NewTool("gmail_get_label",
		mcp.WithDescription("Get a label with its message and thread counts"),
		common.UserOption(),
		mcp.WithString("labelId",
			mcp.Required(),
			mcp.Description("The ID of the label (e.g., 'INBOX', 'Label_42')"),
		),
	)

	s.AddTool(getLabelTool, common.InstrumentedToolHandlerWithService(
		"gmail_get_label", instrumentation.ServiceGmail, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetLabel(ctx, request, sc)
		}))

	return nil
}

func handleListLabels(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	client, err := gmailClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	labels, err := client.ListLabels()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error listing labels: %v", err)), nil
	}

	return mcp.NewToolResultText(formatLabelList(labels)), nil
}

func handleGetLabel(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	labelID, ok := args["labelId"].(string)
	if !ok || labelID == "" {
		return mcp.NewToolResultError("labelId is required"), nil
	}

	client, err := gmailClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	label, err := client.GetLabel(labelID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting label: %v", err)), nil
	}

	return mcp.NewToolResultText(formatLabel(label)), nil
}

func formatLabelList(labels []*gmail_v1.Label) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d label(s):\n\n", len(labels))
	for i, label := range labels {
		fmt.Fprintf(&b, "%d. %s (ID: %s", i+1, label.Name, label.Id)
		if label.Type != "" {
			fmt.Fprintf(&b, ", type: %s", strings.ToLower(label.Type))
		}
		b.WriteString(")\n")
	}
	return b.String()
}

func formatLabel(label *gmail_v1.Label) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Label: %s\n", label.Name)
	fmt.Fprintf(&b, "ID: %s\n", label.Id)
	if label.Type != "" {
		fmt.Fprintf(&b, "Type: %s\n", strings.ToLower(label.Type))
	}
	fmt.Fprintf(&b, "Messages: %d (%d unread)\n", label.MessagesTotal, label.MessagesUnread)
	fmt.Fprintf(&b, "Threads: %d (%d unread)\n", label.ThreadsTotal, label.ThreadsUnread)
	return b.String()
}
