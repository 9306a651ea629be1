package gmail

import (
	"regexp"
	"strings"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script.*?</script>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style.*?</style>`)
	lineBreakRe   = regexp.MustCompile(`(?i)<br\s*/?>|</(p|div|li|tr|table|h[1-6]|ul|ol|blockquote)>`)
	listItemRe    = regexp.MustCompile(`(?i)<li[^>]*>`)
	anyTagRe      = regexp.MustCompile(`<[^>]*>`)
	manyNewlines  = regexp.MustCompile(`\n{3,}`)
)

// entities covers the named entities that actually show up in mail bodies.
// Anything else is left as-is rather than pulling in a full HTML parser.
var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
	"&amp;", "&",
)

// HTMLToText converts an HTML mail body into readable plain text. Script and
// style blocks are dropped wholesale, block boundaries become newlines, list
// items become "- " bullets, all remaining tags are stripped and runs of
// blank lines are collapsed to a single blank line.
func HTMLToText(html string) string {
	text := scriptBlockRe.ReplaceAllString(html, "")
	text = styleBlockRe.ReplaceAllString(text, "")
	text = lineBreakRe.ReplaceAllString(text, "\n")
	text = listItemRe.ReplaceAllString(text, "- ")
	text = anyTagRe.ReplaceAllString(text, "")
	text = entityReplacer.Replace(text)
	text = manyNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
