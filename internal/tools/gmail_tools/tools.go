package gmail_tools

import (
	"context"
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/obe711/google-workspace-mcp/internal/gmail"
	"github.com/obe711/google-workspace-mcp/internal/server"
	"github.com/obe711/google-workspace-mcp/internal/tools/common"
)

// RegisterGmailTools registers all Gmail-related tools with the MCP server
func RegisterGmailTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := RegisterMessageTools(s, sc); err != nil {
		return fmt.Errorf("failed to register message tools: %w", err)
	}

	if err := RegisterLabelTools(s, sc); err != nil {
		return fmt.Errorf("failed to register label tools: %w", err)
	}

	if err := RegisterAttachmentTools(s, sc); err != nil {
		return fmt.Errorf("failed to register attachment tools: %w", err)
	}

	return nil
}

// gmailClient resolves the identity for this call and builds a Gmail client
// impersonating it
func gmailClient(ctx context.Context, sc *server.ServerContext, args map[string]interface{}) (*gmail.Client, error) {
	httpClient, identity, err := common.DelegatedClient(ctx, sc, args)
	if err != nil {
		return nil, err
	}
	return gmail.NewClient(ctx, httpClient, identity)
}
