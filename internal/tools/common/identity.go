package common

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/obe711/google-workspace-mcp/internal/google"
	"github.com/obe711/google-workspace-mcp/internal/instrumentation"
	"github.com/obe711/google-workspace-mcp/internal/logging"
	"github.com/obe711/google-workspace-mcp/internal/server"
)

// UserOption declares the optional "user" parameter every tool accepts: the
// email address of the Workspace user to impersonate for this call.
func UserOption() mcp.ToolOption {
	return mcp.WithString("user",
		mcp.Description("Email address of the Workspace user to impersonate (default: the configured default user)"),
	)
}

// IdentityFromArgs resolves the Workspace user to impersonate for a tool call.
//
// Priority order:
//  1. Explicit "user" argument in the request
//  2. The configured default user (workspace.default_user or
//     GOOGLE_WORKSPACE_DEFAULT_USER)
//
// Returns an error when neither is set; a delegated call has no meaning
// without a user to impersonate.
func IdentityFromArgs(sc *server.ServerContext, args map[string]interface{}) (string, error) {
	explicit, _ := args["user"].(string)
	return google.ResolveIdentity(explicit, sc.Config().Workspace.DefaultUser)
}

// DelegatedClient resolves the identity for a tool call and mints an HTTP
// client impersonating it. The client is scoped to this single invocation.
func DelegatedClient(ctx context.Context, sc *server.ServerContext, args map[string]interface{}) (*http.Client, string, error) {
	identity, err := IdentityFromArgs(sc, args)
	if err != nil {
		return nil, "", err
	}

	client, err := sc.Factory().ClientFor(ctx, identity)
	if err != nil {
		if metrics := sc.Metrics(); metrics != nil {
			metrics.RecordDelegatedClient(ctx, instrumentation.StatusError)
		}
		slog.Warn("failed to create delegated client",
			logging.UserHash(identity), logging.Err(err))
		return nil, "", err
	}

	if metrics := sc.Metrics(); metrics != nil {
		metrics.RecordDelegatedClient(ctx, instrumentation.StatusSuccess)
	}
	slog.Debug("created delegated client", logging.UserHash(identity))
	return client, identity, nil
}
