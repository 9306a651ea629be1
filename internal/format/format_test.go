package format

import (
	"strings"
	"testing"
)

func TestTruncateIdentityBelowLimit(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		limit int
	}{
		{name: "shorter than limit", s: "hello", limit: 10},
		{name: "exactly at limit", s: "hello", limit: 5},
		{name: "empty string", s: "", limit: 5},
		{name: "zero limit disables truncation", s: "hello world", limit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.limit); got != tt.s {
				t.Errorf("Truncate(%q, %d) = %q, want unchanged", tt.s, tt.limit, got)
			}
		})
	}
}

func TestTruncateAboveLimit(t *testing.T) {
	s := strings.Repeat("a", 100)
	got := Truncate(s, 10)

	if !strings.HasPrefix(got, strings.Repeat("a", 10)) {
		t.Errorf("truncated output should start with the first 10 characters, got %q", got)
	}
	if !strings.Contains(got, "[Output truncated at 10 characters]") {
		t.Errorf("truncated output must carry the marker, got %q", got)
	}
}

func TestTruncateIdempotent(t *testing.T) {
	s := strings.Repeat("x", 500)
	once := Truncate(s, 100)
	twice := Truncate(once, 100)
	if once != twice {
		t.Errorf("Truncate is not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestTruncateCountsRunes(t *testing.T) {
	s := strings.Repeat("ä", 20)
	got := Truncate(s, 10)
	if !strings.HasPrefix(got, strings.Repeat("ä", 10)) {
		t.Errorf("Truncate should cut on rune boundaries, got %q", got)
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
		{-1, UnknownSize},
	}

	for _, tt := range tests {
		if got := HumanSize(tt.n); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestHumanSizeString(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"2048", "2.0 KB"},
		{" 0 ", "0 B"},
		{"", UnknownSize},
		{"not-a-number", UnknownSize},
	}

	for _, tt := range tests {
		if got := HumanSizeString(tt.s); got != tt.want {
			t.Errorf("HumanSizeString(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}
