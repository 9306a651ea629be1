// Package format holds output shaping helpers shared by all tools: bounded
// truncation with an explicit marker, and human readable byte sizes.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultBodyLimit bounds free-text output such as message bodies.
	DefaultBodyLimit = 50000

	// DefaultBulkLimit bounds bulk dumps (spreadsheet ranges, full document
	// text, slide content). Larger than the body limit on purpose.
	DefaultBulkLimit = 200000

	// UnknownSize is rendered whenever a byte count cannot be determined.
	UnknownSize = "unknown size"
)

// Truncate caps s at limit runes. Text at or under the limit is returned
// unchanged; longer text is cut and always carries a marker so truncation is
// never silent. Truncating already-truncated text yields the same result.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + fmt.Sprintf("\n\n[Output truncated at %d characters]", limit)
}

// HumanSize renders a byte count using the largest unit among B/KB/MB/GB for
// which the value stays under 1024, with one decimal place above bytes.
// Negative counts render as UnknownSize.
func HumanSize(n int64) string {
	if n < 0 {
		return UnknownSize
	}
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	v := float64(n) / 1024
	for _, unit := range []string{"KB", "MB"} {
		if v < 1024 {
			return fmt.Sprintf("%.1f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.1f GB", v)
}

// HumanSizeString parses a decimal byte count and renders it via HumanSize.
// Empty or unparseable input renders as UnknownSize.
func HumanSizeString(s string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return UnknownSize
	}
	return HumanSize(n)
}
