package server

import (
	"context"
	"sync"

	"github.com/obe711/google-workspace-mcp/internal/config"
	"github.com/obe711/google-workspace-mcp/internal/google"
	"github.com/obe711/google-workspace-mcp/internal/instrumentation"
)

// ServerContext holds the shared state for the MCP server: configuration,
// the delegated credential factory, and instrumentation.
type ServerContext struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.Config
	factory  *google.Factory
	provider *instrumentation.Provider
	metrics  *instrumentation.Metrics
	audit    *instrumentation.AuditLogger
	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context. The instrumentation provider
// and audit logger may be nil when observability is disabled.
func NewServerContext(ctx context.Context, cfg *config.Config, provider *instrumentation.Provider, audit *instrumentation.AuditLogger) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	factory := google.NewFactory(cfg.Workspace.CredentialsFile)

	return &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		cfg:      cfg,
		factory:  factory,
		provider: provider,
		audit:    audit,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the server configuration
func (sc *ServerContext) Config() *config.Config {
	return sc.cfg
}

// Factory returns the delegated credential factory. Callers obtain a fresh
// per-identity HTTP client from it for every tool invocation; clients are
// never shared across identities.
func (sc *ServerContext) Factory() *google.Factory {
	return sc.factory
}

// Provider returns the instrumentation provider, or nil when disabled
func (sc *ServerContext) Provider() *instrumentation.Provider {
	return sc.provider
}

// Metrics returns the metrics recorder, or nil when instrumentation is disabled
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	if sc.metrics != nil {
		return sc.metrics
	}
	if sc.provider == nil {
		return nil
	}
	return sc.provider.Metrics()
}

// SetMetrics overrides the metrics recorder. Used by tests to inject a
// recorder backed by a noop meter.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// Audit returns the audit logger, or nil when audit logging is disabled
func (sc *ServerContext) Audit() *instrumentation.AuditLogger {
	return sc.audit
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
