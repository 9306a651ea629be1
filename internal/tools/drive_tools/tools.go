package drive_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/obe711/google-workspace-mcp/internal/drive"
	"github.com/obe711/google-workspace-mcp/internal/format"
	"github.com/obe711/google-workspace-mcp/internal/instrumentation"
	"github.com/obe711/google-workspace-mcp/internal/server"
	"github.com/obe711/google-workspace-mcp/internal/tools/common"
)

// RegisterDriveTools registers all Drive-related tools with the MCP server
func RegisterDriveTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchFilesTool := mcp.NewTool("drive_search_files",
		mcp.WithDescription("Search Google Drive files matching a query"),
		common.UserOption(),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Drive search query (e.g., \"name contains 'report'\", \"mimeType = 'application/pdf'\")"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of results to return, 1-100 (default: 10)"),
		),
	)

	s.AddTool(searchFilesTool, common.InstrumentedToolHandlerWithService(
		"drive_search_files", instrumentation.ServiceDrive, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchFiles(ctx, request, sc)
		}))

	getFileMetadataTool := mcp.NewTool("drive_get_file_metadata",
		mcp.WithDescription("Get metadata for a Google Drive file"),
		common.UserOption(),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("The ID of the Drive file"),
		),
	)

	s.AddTool(getFileMetadataTool, common.InstrumentedToolHandlerWithService(
		"drive_get_file_metadata", instrumentation.ServiceDrive, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetFileMetadata(ctx, request, sc)
		}))

	getFileContentTool := mcp.NewTool("drive_get_file_content",
		mcp.WithDescription("Get the content of a Google Drive file; native Google types are exported as text"),
		common.UserOption(),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("The ID of the Drive file"),
		),
	)

	s.AddTool(getFileContentTool, common.InstrumentedToolHandlerWithService(
		"drive_get_file_content", instrumentation.ServiceDrive, instrumentation.OperationExport, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetFileContent(ctx, request, sc)
		}))

	return nil
}

// driveClient resolves the identity for this call and builds a Drive client
// impersonating it
func driveClient(ctx context.Context, sc *server.ServerContext, args map[string]interface{}) (*drive.Client, error) {
	httpClient, identity, err := common.DelegatedClient(ctx, sc, args)
	if err != nil {
		return nil, err
	}
	return drive.NewClient(ctx, httpClient, identity)
}

func handleSearchFiles(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	maxResults := int64(10)
	if v, ok := args["maxResults"].(float64); ok {
		maxResults = int64(v)
	}

	client, err := driveClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	files, err := client.SearchFiles(ctx, query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error searching files: %v", err)), nil
	}

	return mcp.NewToolResultText(formatFileList(files)), nil
}

func handleGetFileMetadata(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	fileID, ok := args["fileId"].(string)
	if !ok || fileID == "" {
		return mcp.NewToolResultError("fileId is required"), nil
	}

	client, err := driveClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	info, err := client.GetFile(ctx, fileID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting file metadata: %v", err)), nil
	}

	return mcp.NewToolResultText(formatFileInfo(info)), nil
}

func handleGetFileContent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	fileID, ok := args["fileId"].(string)
	if !ok || fileID == "" {
		return mcp.NewToolResultError("fileId is required"), nil
	}

	client, err := driveClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	content, err := client.GetFileContent(ctx, fileID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting file content: %v", err)), nil
	}

	return mcp.NewToolResultText(formatFileContent(content, sc.Config().Limits.BulkLimit)), nil
}

func formatFileList(files []*drive.FileInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d file(s):\n\n", len(files))
	for i, f := range files {
		fmt.Fprintf(&b, "%d. %s\n", i+1, f.Name)
		fmt.Fprintf(&b, "   ID: %s\n", f.ID)
		fmt.Fprintf(&b, "   Type: %s\n", f.MimeType)
		if f.Size > 0 {
			fmt.Fprintf(&b, "   Size: %s\n", format.HumanSize(f.Size))
		}
		if !f.ModifiedTime.IsZero() {
			fmt.Fprintf(&b, "   Modified: %s\n", f.ModifiedTime.Format("2006-01-02 15:04"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatFileInfo(f *drive.FileInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "File: %s\n", f.Name)
	fmt.Fprintf(&b, "ID: %s\n", f.ID)
	fmt.Fprintf(&b, "Type: %s\n", f.MimeType)
	if f.MimeType != drive.FolderMimeType {
		if f.Size > 0 {
			fmt.Fprintf(&b, "Size: %s\n", format.HumanSize(f.Size))
		} else {
			fmt.Fprintf(&b, "Size: %s\n", format.UnknownSize)
		}
	}
	if !f.CreatedTime.IsZero() {
		fmt.Fprintf(&b, "Created: %s\n", f.CreatedTime.Format("2006-01-02 15:04"))
	}
	if !f.ModifiedTime.IsZero() {
		fmt.Fprintf(&b, "Modified: %s\n", f.ModifiedTime.Format("2006-01-02 15:04"))
	}
	for _, owner := range f.Owners {
		fmt.Fprintf(&b, "Owner: %s <%s>\n", owner.DisplayName, owner.EmailAddress)
	}
	if f.Shared {
		b.WriteString("Shared: yes\n")
	}
	if f.Trashed {
		b.WriteString("Trashed: yes\n")
	}
	if f.WebViewLink != "" {
		fmt.Fprintf(&b, "Link: %s\n", f.WebViewLink)
	}
	return b.String()
}

func formatFileContent(content *drive.FileContent, bulkLimit int) string {
	info := content.Info

	if content.TooLarge {
		result := fmt.Sprintf("File %q is too large to export (over %s).", info.Name, format.HumanSize(drive.ExportSizeLimit))
		if info.WebViewLink != "" {
			result += fmt.Sprintf(" Open it directly instead: %s", info.WebViewLink)
		}
		return result
	}

	var b strings.Builder
	fmt.Fprintf(&b, "File: %s (%s)\n", info.Name, info.MimeType)
	if content.Exported {
		fmt.Fprintf(&b, "Exported as: %s\n", content.ExportMimeType)
	}
	fmt.Fprintf(&b, "Size: %s\n\n", format.HumanSize(int64(len(content.Data))))
	b.Write(content.Data)
	return format.Truncate(b.String(), bulkLimit)
}
