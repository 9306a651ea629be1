package gmail_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	gmail_v1 "google.golang.org/api/gmail/v1"

	"github.com/obe711/google-workspace-mcp/internal/format"
	"github.com/obe711/google-workspace-mcp/internal/gmail"
	"github.com/obe711/google-workspace-mcp/internal/instrumentation"
	"github.com/obe711/google-workspace-mcp/internal/server"
	"github.com/obe711/google-workspace-mcp/internal/tools/common"
)

// RegisterMessageTools registers message search and retrieval tools with the
// MCP server
func RegisterMessageTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchMessagesTool := mcp.NewTool("gmail_search_messages",
		mcp.WithDescription("Search Gmail messages matching a query"),
		common.UserOption(),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Gmail search query (e.g., 'in:inbox', 'from:user@example.com')"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of results to return, 1-100 (default: 10)"),
		),
	)

	s.AddTool(searchMessagesTool, common.InstrumentedToolHandlerWithService(
		"gmail_search_messages", instrumentation.ServiceGmail, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchMessages(ctx, request, sc)
		}))

	getMessageTool := mcp.NewTool("gmail_get_message",
		mcp.WithDescription("Get a Gmail message with its headers and readable body"),
		common.UserOption(),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the Gmail message"),
		),
	)

	s.AddTool(getMessageTool, common.InstrumentedToolHandlerWithService(
		"gmail_get_message", instrumentation.ServiceGmail, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetMessage(ctx, request, sc)
		}))

	getMessageRawTool := mcp.NewTool("gmail_get_message_raw",
		mcp.WithDescription("Get the complete RFC 822 header set of a Gmail message"),
		common.UserOption(),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the Gmail message"),
		),
	)

	s.AddTool(getMessageRawTool, common.InstrumentedToolHandlerWithService(
		"gmail_get_message_raw", instrumentation.ServiceGmail, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetMessageRaw(ctx, request, sc)
		}))

	return nil
}

func handleSearchMessages(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	maxResults := int64(10)
	if v, ok := args["maxResults"].(float64); ok {
		maxResults = int64(v)
	}

	client, err := gmailClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	messages, err := client.SearchMessages(query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error searching messages: %v", err)), nil
	}

	return mcp.NewToolResultText(formatMessageList(query, messages)), nil
}

func handleGetMessage(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageID, ok := args["messageId"].(string)
	if !ok || messageID == "" {
		return mcp.NewToolResultError("messageId is required"), nil
	}

	client, err := gmailClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := client.GetMessage(messageID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting message: %v", err)), nil
	}

	parsed, err := gmail.ExtractEmail(msg.Payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error decoding message: %v", err)), nil
	}

	return mcp.NewToolResultText(formatMessage(msg, parsed, sc.Config().Limits.BodyLimit)), nil
}

func handleGetMessageRaw(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageID, ok := args["messageId"].(string)
	if !ok || messageID == "" {
		return mcp.NewToolResultError("messageId is required"), nil
	}

	client, err := gmailClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw, err := client.GetRawMessage(messageID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting raw message: %v", err)), nil
	}

	headers, err := gmail.ParseRawHeaders(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error parsing raw message: %v", err)), nil
	}

	result := fmt.Sprintf("Message %s headers:\n\n%s", messageID, gmail.FormatRawHeaders(headers))
	return mcp.NewToolResultText(format.Truncate(result, sc.Config().Limits.BodyLimit)), nil
}

func formatMessageList(query string, messages []gmail.MessageSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d message(s) for query %q:\n\n", len(messages), query)
	for i, msg := range messages {
		fmt.Fprintf(&b, "%d. Message ID: %s\n", i+1, msg.ID)
		fmt.Fprintf(&b, "   Thread ID: %s\n", msg.ThreadID)
		if msg.Snippet != "" {
			fmt.Fprintf(&b, "   Snippet: %s\n", msg.Snippet)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatMessage(msg *gmail_v1.Message, parsed *gmail.ParsedEmail, bodyLimit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Message ID: %s\n", msg.Id)
	fmt.Fprintf(&b, "Thread ID: %s\n", msg.ThreadId)
	for _, name := range []string{"From", "To", "Cc", "Date", "Subject"} {
		if v := gmail.HeaderValue(msg, name); v != "" {
			fmt.Fprintf(&b, "%s: %s\n", name, v)
		}
	}
	if len(parsed.Attachments) > 0 {
		fmt.Fprintf(&b, "Attachments: %d\n", len(parsed.Attachments))
	}
	b.WriteString("\n")
	b.WriteString(format.Truncate(parsed.ReadableBody(), bodyLimit))
	return b.String()
}
