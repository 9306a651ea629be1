package gmail_tools

import (
	"context"
	"strings"
	"testing"

	gmail_v1 "google.golang.org/api/gmail/v1"
)

func TestFormatLabelList(t *testing.T) {
	labels := []*gmail_v1.Label{
		{Id: "INBOX", Name: "INBOX", Type: "SYSTEM"},
		{Id: "Label_42", Name: "projects/atlas", Type: "USER"},
	}

	got := formatLabelList(labels)

	if !strings.Contains(got, "Found 2 label(s)") {
		t.Errorf("missing header in %q", got)
	}
	if !strings.Contains(got, "1. INBOX (ID: INBOX, type: system)") {
		t.Errorf("missing system label in %q", got)
	}
	if !strings.Contains(got, "2. projects/atlas (ID: Label_42, type: user)") {
		t.Errorf("missing user label in %q", got)
	}
}

func TestFormatLabel(t *testing.T) {
	label := &gmail_v1.Label{
		Id:             "Label_42",
		Name:           "projects/atlas",
		Type:           "USER",
		MessagesTotal:  120,
		MessagesUnread: 3,
		ThreadsTotal:   40,
		ThreadsUnread:  2,
	}

	got := formatLabel(label)

	for _, want := range []string{
		"Label: projects/atlas",
		"ID: Label_42",
		"Type: user",
		"Messages: 120 (3 unread)",
		"Threads: 40 (2 unread)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatLabel() missing %q in %q", want, got)
		}
	}
}

func TestHandleGetLabel_LabelIDRequired(t *testing.T) {
	sc := newTestServerContext(t, "ops@example.com")

	result, err := handleGetLabel(context.Background(), callToolRequest(map[string]interface{}{}), sc)
	if err != nil {
		t.Fatalf("handleGetLabel() error = %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for missing labelId")
	}
}
