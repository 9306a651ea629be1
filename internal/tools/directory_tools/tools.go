package directory_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/obe711/google-workspace-mcp/internal/directory"
	"github.com/obe711/google-workspace-mcp/internal/instrumentation"
	"github.com/obe711/google-workspace-mcp/internal/server"
	"github.com/obe711/google-workspace-mcp/internal/tools/common"
)

// RegisterDirectoryTools registers all Directory-related tools with the MCP
// server
func RegisterDirectoryTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listUsersTool := mcp.NewTool("directory_list_users",
		mcp.WithDescription("List users in the Workspace domain; the impersonated user must be an admin"),
		common.UserOption(),
		mcp.WithString("query",
			mcp.Description("Directory search query (e.g., 'email:alice*', 'name:Smith')"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of users to return, 1-500 (default: 100)"),
		),
	)

	s.AddTool(listUsersTool, common.InstrumentedToolHandlerWithService(
		"directory_list_users", instrumentation.ServiceDirectory, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListUsers(ctx, request, sc)
		}))

	return nil
}

// directoryClient resolves the identity for this call and builds a Directory
// client impersonating it
func directoryClient(ctx context.Context, sc *server.ServerContext, args map[string]interface{}) (*directory.Client, error) {
	httpClient, identity, err := common.DelegatedClient(ctx, sc, args)
	if err != nil {
		return nil, err
	}
	return directory.NewClient(ctx, httpClient, identity)
}

func handleListUsers(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query := ""
	if v, ok := args["query"].(string); ok {
		query = v
	}

	maxResults := int64(0)
	if v, ok := args["maxResults"].(float64); ok {
		maxResults = int64(v)
	}

	client, err := directoryClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	users, err := client.ListUsers(ctx, query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error listing users: %v", err)), nil
	}

	return mcp.NewToolResultText(formatUserList(users)), nil
}

func formatUserList(users []directory.UserInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d user(s):\n\n", len(users))
	for i, user := range users {
		fmt.Fprintf(&b, "%d. %s", i+1, user.PrimaryEmail)
		if user.FullName != "" {
			fmt.Fprintf(&b, " (%s)", user.FullName)
		}
		b.WriteString("\n")
		if user.OrgUnitPath != "" {
			fmt.Fprintf(&b, "   Org Unit: %s\n", user.OrgUnitPath)
		}
		if user.IsAdmin {
			b.WriteString("   [ADMIN]\n")
		}
		if user.Suspended {
			b.WriteString("   [SUSPENDED]\n")
		}
	}
	return b.String()
}
