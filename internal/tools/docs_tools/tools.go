package docs_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/obe711/google-workspace-mcp/internal/docs"
	"github.com/obe711/google-workspace-mcp/internal/format"
	"github.com/obe711/google-workspace-mcp/internal/instrumentation"
	"github.com/obe711/google-workspace-mcp/internal/server"
	"github.com/obe711/google-workspace-mcp/internal/tools/common"
)

// RegisterDocsTools registers all Docs-related tools with the MCP server
func RegisterDocsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getDocumentTextTool := mcp.NewTool("docs_get_document_text",
		mcp.WithDescription("Get the full text of a Google Doc: paragraphs, tables, and inline object markers"),
		common.UserOption(),
		mcp.WithString("documentId",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
	)

	s.AddTool(getDocumentTextTool, common.InstrumentedToolHandlerWithService(
		"docs_get_document_text", instrumentation.ServiceDocs, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetDocumentText(ctx, request, sc)
		}))

	getDocumentOutlineTool := mcp.NewTool("docs_get_document_outline",
		mcp.WithDescription("Get the heading outline of a Google Doc"),
		common.UserOption(),
		mcp.WithString("documentId",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
	)

	s.AddTool(getDocumentOutlineTool, common.InstrumentedToolHandlerWithService(
		"docs_get_document_outline", instrumentation.ServiceDocs, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetDocumentOutline(ctx, request, sc)
		}))

	return nil
}

// docsClient resolves the identity for this call and builds a Docs client
// impersonating it
func docsClient(ctx context.Context, sc *server.ServerContext, args map[string]interface{}) (*docs.Client, error) {
	httpClient, identity, err := common.DelegatedClient(ctx, sc, args)
	if err != nil {
		return nil, err
	}
	return docs.NewClient(ctx, httpClient, identity)
}

func handleGetDocumentText(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	documentID, ok := args["documentId"].(string)
	if !ok || documentID == "" {
		return mcp.NewToolResultError("documentId is required"), nil
	}

	client, err := docsClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := client.GetDocument(documentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting document: %v", err)), nil
	}

	result := fmt.Sprintf("Document: %s\n\n%s", doc.Title, docs.ExtractText(doc.Body))
	return mcp.NewToolResultText(format.Truncate(result, sc.Config().Limits.BulkLimit)), nil
}

func handleGetDocumentOutline(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	documentID, ok := args["documentId"].(string)
	if !ok || documentID == "" {
		return mcp.NewToolResultError("documentId is required"), nil
	}

	client, err := docsClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := client.GetDocument(documentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting document: %v", err)), nil
	}

	return mcp.NewToolResultText(formatOutline(doc.Title, docs.ExtractHeadings(doc.Body))), nil
}

func formatOutline(title string, headings []docs.Heading) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Document: %s\n", title)
	if len(headings) == 0 {
		b.WriteString("\n(no headings)\n")
		return b.String()
	}
	fmt.Fprintf(&b, "\nOutline (%d heading(s)):\n", len(headings))
	for _, h := range headings {
		// Indent two spaces per level below H1
		fmt.Fprintf(&b, "%sH%d: %s\n", strings.Repeat("  ", h.Level-1), h.Level, h.Text)
	}
	return b.String()
}
