package google

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

// EnvCredentialsFile is the environment variable naming the service account
// key file when no path is configured.
const EnvCredentialsFile = "GOOGLE_WORKSPACE_CREDENTIALS"

// Factory builds per-identity HTTP clients from a domain-wide delegated
// service account key. The key material is read once and is read-only
// afterwards; it is the only cross-call shared state in the package.
type Factory struct {
	keyPath string

	once    sync.Once
	keyData []byte
	keyErr  error
}

// NewFactory creates a Factory reading the service account key from keyPath.
// An empty keyPath falls back to the EnvCredentialsFile environment variable.
// The key file is not touched until the first client is requested.
func NewFactory(keyPath string) *Factory {
	return &Factory{keyPath: keyPath}
}

// KeyPath returns the effective key file path.
func (f *Factory) KeyPath() string {
	if f.keyPath != "" {
		return f.keyPath
	}
	return os.Getenv(EnvCredentialsFile)
}

// loadKey reads the key file exactly once. Concurrent first use is guarded so
// the file is never double-read.
func (f *Factory) loadKey() ([]byte, error) {
	f.once.Do(func() {
		path := f.KeyPath()
		if path == "" {
			f.keyErr = fmt.Errorf("service account key not configured: set workspace.credentials_file or %s", EnvCredentialsFile)
			return
		}
		data, err := os.ReadFile(path)
		if err != nil {
			f.keyErr = fmt.Errorf("failed to read service account key %s: %w", path, err)
			return
		}
		f.keyData = data
	})
	return f.keyData, f.keyErr
}

// config builds a JWT config impersonating the given identity. The Subject
// binding is fixed at construction; a config for one identity must never be
// reused for another.
func (f *Factory) config(identity string) (*jwt.Config, error) {
	if identity == "" {
		return nil, fmt.Errorf("identity is required")
	}

	key, err := f.loadKey()
	if err != nil {
		return nil, err
	}

	conf, err := google.JWTConfigFromJSON(key, ReadOnlyScopes...)
	if err != nil {
		return nil, fmt.Errorf("invalid service account key: %w", err)
	}
	conf.Subject = identity

	return conf, nil
}

// ClientFor returns an authenticated HTTP client acting as the given user.
// A fresh client is constructed per call; only the key bytes are memoized.
func (f *Factory) ClientFor(ctx context.Context, identity string) (*http.Client, error) {
	conf, err := f.config(identity)
	if err != nil {
		return nil, err
	}
	return conf.Client(ctx), nil
}
