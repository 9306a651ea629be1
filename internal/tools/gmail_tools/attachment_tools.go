package gmail_tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/obe711/google-workspace-mcp/internal/format"
	"github.com/obe711/google-workspace-mcp/internal/gmail"
	"github.com/obe711/google-workspace-mcp/internal/instrumentation"
	"github.com/obe711/google-workspace-mcp/internal/server"
	"github.com/obe711/google-workspace-mcp/internal/tools/common"
)

// RegisterAttachmentTools registers attachment tools with the MCP server
func RegisterAttachmentTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listAttachmentsTool := mcp.NewTool("gmail_list_attachments",
		mcp.WithDescription("List all attachments in a Gmail message"),
		common.UserOption(),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the Gmail message"),
		),
	)

	s.AddTool(listAttachmentsTool, common.InstrumentedToolHandlerWithService(
		"gmail_list_attachments", instrumentation.ServiceGmail, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListAttachments(ctx, request, sc)
		}))

	getAttachmentTool := mcp.NewTool("gmail_get_attachment",
		mcp.WithDescription("Get the content of a message attachment"),
		common.UserOption(),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the Gmail message"),
		),
		mcp.WithString("attachmentId",
			mcp.Required(),
			mcp.Description("The ID of the attachment"),
		),
		mcp.WithString("encoding",
			mcp.Description("Output encoding: 'base64' (default) or 'text'"),
		),
	)

	s.AddTool(getAttachmentTool, common.InstrumentedToolHandlerWithService(
		"gmail_get_attachment", instrumentation.ServiceGmail, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetAttachment(ctx, request, sc)
		}))

	return nil
}

func handleListAttachments(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageID, ok := args["messageId"].(string)
	if !ok || messageID == "" {
		return mcp.NewToolResultError("messageId is required"), nil
	}

	client, err := gmailClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	attachments, err := client.ListAttachments(messageID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error listing attachments: %v", err)), nil
	}

	return mcp.NewToolResultText(formatAttachmentList(messageID, attachments)), nil
}

func handleGetAttachment(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageID, ok := args["messageId"].(string)
	if !ok || messageID == "" {
		return mcp.NewToolResultError("messageId is required"), nil
	}

	attachmentID, ok := args["attachmentId"].(string)
	if !ok || attachmentID == "" {
		return mcp.NewToolResultError("attachmentId is required"), nil
	}

	encoding := "base64"
	if v, ok := args["encoding"].(string); ok && v != "" {
		encoding = v
	}
	if encoding != "base64" && encoding != "text" {
		return mcp.NewToolResultError(fmt.Sprintf("invalid encoding %q: must be 'base64' or 'text'", encoding)), nil
	}

	client, err := gmailClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := client.GetAttachment(messageID, attachmentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting attachment: %v", err)), nil
	}

	var content string
	if encoding == "text" {
		content = string(data)
	} else {
		content = base64.StdEncoding.EncodeToString(data)
	}

	result := fmt.Sprintf("Attachment %s (%s):\n\n%s", attachmentID, format.HumanSize(int64(len(data))), content)
	return mcp.NewToolResultText(format.Truncate(result, sc.Config().Limits.BulkLimit)), nil
}

func formatAttachmentList(messageID string, attachments []gmail.Attachment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d attachment(s) in message %s:\n\n", len(attachments), messageID)
	for i, att := range attachments {
		fmt.Fprintf(&b, "%d. %s\n", i+1, att.Filename)
		fmt.Fprintf(&b, "   Type: %s\n", att.MimeType)
		fmt.Fprintf(&b, "   Size: %s\n", format.HumanSize(att.Size))
		fmt.Fprintf(&b, "   Attachment ID: %s\n", att.AttachmentID)
		b.WriteString("\n")
	}
	return b.String()
}
