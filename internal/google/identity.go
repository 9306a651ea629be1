package google

import (
	"fmt"
	"os"
	"strings"
)

// EnvDefaultUser is the environment variable naming the default user to
// impersonate when a tool call does not supply one.
const EnvDefaultUser = "GOOGLE_WORKSPACE_DEFAULT_USER"

// ResolveIdentity determines which user a call impersonates. An explicit
// parameter wins, then the configured default, then the environment. Every
// tool resolves exactly one identity before touching a backend API.
func ResolveIdentity(explicit, configured string) (string, error) {
	if v := strings.TrimSpace(explicit); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(configured); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(os.Getenv(EnvDefaultUser)); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("no user to impersonate: pass a user parameter, set workspace.default_user in the config file, or set %s", EnvDefaultUser)
}
