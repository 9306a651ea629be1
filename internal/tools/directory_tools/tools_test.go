package directory_tools

import (
	"strings"
	"testing"

	"github.com/obe711/google-workspace-mcp/internal/directory"
)

func TestFormatUserList(t *testing.T) {
	users := []directory.UserInfo{
		{
			PrimaryEmail: "alice@example.com",
			FullName:     "Alice Smith",
			OrgUnitPath:  "/Engineering",
			IsAdmin:      true,
		},
		{
			PrimaryEmail: "bob@example.com",
			Suspended:    true,
		},
	}

	got := formatUserList(users)

	for _, want := range []string{
		"Found 2 user(s)",
		"1. alice@example.com (Alice Smith)",
		"Org Unit: /Engineering",
		"[ADMIN]",
		"2. bob@example.com",
		"[SUSPENDED]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatUserList() missing %q in %q", want, got)
		}
	}
}

func TestFormatUserList_Empty(t *testing.T) {
	got := formatUserList(nil)

	if !strings.Contains(got, "Found 0 user(s)") {
		t.Errorf("formatUserList() = %q, want empty listing header", got)
	}
}
