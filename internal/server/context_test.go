package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/obe711/google-workspace-mcp/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Workspace: config.WorkspaceConfig{
			CredentialsFile: "/etc/workspace/sa.json",
			DefaultUser:     "ops@example.com",
		},
	}
}

func TestNewServerContext(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testConfig(), nil, nil)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if sc.Config() == nil {
		t.Error("Config() returned nil")
	}
	if sc.Config().Workspace.DefaultUser != "ops@example.com" {
		t.Errorf("Config().Workspace.DefaultUser = %q, want %q", sc.Config().Workspace.DefaultUser, "ops@example.com")
	}
	if sc.Factory() == nil {
		t.Error("Factory() returned nil")
	}
	if sc.Metrics() != nil {
		t.Error("Metrics() should be nil when instrumentation is disabled")
	}
	if sc.Audit() != nil {
		t.Error("Audit() should be nil when audit logging is disabled")
	}
	if sc.IsShutdown() {
		t.Error("new server context should not be shut down")
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testConfig(), nil, nil)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("IsShutdown() = false after Shutdown()")
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("server context should be cancelled after Shutdown()")
	}

	// Second shutdown is a no-op
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}

func TestHealthChecker_Readiness(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testConfig(), nil, nil)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	h := NewHealthChecker(sc)

	rec := httptest.NewRecorder()
	h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("ReadinessHandler() status = %d, want %d", rec.Code, http.StatusOK)
	}

	if err := sc.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	rec = httptest.NewRecorder()
	h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("ReadinessHandler() after shutdown status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestHealthChecker_Readiness_NoCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.Workspace.CredentialsFile = ""

	sc, err := NewServerContext(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })

	h := NewHealthChecker(sc)

	rec := httptest.NewRecorder()
	h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("ReadinessHandler() without credentials status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}
