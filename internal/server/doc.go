// Package server provides the MCP server context, the standalone metrics
// server, and health check endpoints for the Google Workspace MCP server.
//
// ServerContext carries the pieces every tool handler needs: the loaded
// configuration, the delegated credential factory used to mint per-identity
// HTTP clients, and the instrumentation provider and audit logger. It also
// owns the server lifecycle via a cancellable context and a shutdown flag.
//
// MetricsServer exposes Prometheus metrics on a dedicated port so that
// operational metrics stay isolated from MCP traffic. HealthChecker provides
// Kubernetes-style liveness and readiness handlers.
package server
