package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/obe711/google-workspace-mcp/internal/logging"
	"github.com/obe711/google-workspace-mcp/internal/server"
)

// RegisterServerResources registers resources describing the running server:
// the configured default identity (anonymized) and the active output limits.
func RegisterServerResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	configResource := mcp.NewResource(
		"workspace://config",
		"Server Configuration",
		mcp.WithResourceDescription("Active output limits and the configured default identity"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(configResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleConfigResource(ctx, request, sc)
	})

	return nil
}

// serverConfig is the JSON shape of the workspace://config resource. The
// default user is anonymized; full addresses never leave the server through
// this resource.
type serverConfig struct {
	DefaultIdentity string `json:"defaultIdentity,omitempty"`
	BodyLimit       int    `json:"bodyLimit"`
	BulkLimit       int    `json:"bulkLimit"`
}

func handleConfigResource(_ context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	cfg := sc.Config()

	payload := serverConfig{
		BodyLimit: cfg.Limits.BodyLimit,
		BulkLimit: cfg.Limits.BulkLimit,
	}
	if cfg.Workspace.DefaultUser != "" {
		payload.DefaultIdentity = logging.AnonymizeEmail(cfg.Workspace.DefaultUser)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal server configuration: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
