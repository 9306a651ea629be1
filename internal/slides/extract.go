package slides

import (
	"fmt"
	"strings"

	slides "google.golang.org/api/slides/v1"
)

// Placeholder roles used when locating titles, subtitles and notes bodies.
const (
	placeholderTitle         = "TITLE"
	placeholderCenteredTitle = "CENTERED_TITLE"
	placeholderSubtitle      = "SUBTITLE"
	placeholderBody          = "BODY"
)

// maxGroupDepth bounds recursion into element groups. Presentations are
// acyclic by convention, not by contract, and arrive from an external API.
const maxGroupDepth = 20

// PageElementText flattens one page element into plain text. Shapes yield
// their trimmed text runs, tables a "[Table]"-prefixed tab/newline grid,
// groups the newline-joined text of their children, word art its rendered
// text. Anything else yields the empty string.
func PageElementText(el *slides.PageElement) string {
	return pageElementText(el, 0)
}

func pageElementText(el *slides.PageElement, depth int) string {
	if el == nil || depth > maxGroupDepth {
		return ""
	}

	switch {
	case el.Shape != nil:
		return strings.TrimSpace(textContent(el.Shape.Text))
	case el.Table != nil:
		return tableText(el.Table)
	case el.ElementGroup != nil:
		var parts []string
		for _, child := range el.ElementGroup.Children {
			if s := pageElementText(child, depth+1); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	case el.WordArt != nil:
		return el.WordArt.RenderedText
	}
	return ""
}

// textContent concatenates the literal text runs of a shape or table cell.
func textContent(text *slides.TextContent) string {
	if text == nil {
		return ""
	}
	var b strings.Builder
	for _, te := range text.TextElements {
		if te.TextRun != nil {
			b.WriteString(te.TextRun.Content)
		}
	}
	return b.String()
}

func tableText(table *slides.Table) string {
	var rows []string
	for _, row := range table.TableRows {
		cells := make([]string, 0, len(row.TableCells))
		for _, cell := range row.TableCells {
			cells = append(cells, strings.TrimSpace(textContent(cell.Text)))
		}
		rows = append(rows, strings.Join(cells, "\t"))
	}
	grid := strings.TrimSpace(strings.Join(rows, "\n"))
	if grid == "" {
		return ""
	}
	return "[Table]\n" + grid
}

// SlideText flattens a whole slide: each top-level element's text, non-empty
// results joined by blank lines.
func SlideText(slide *slides.Page) string {
	if slide == nil {
		return ""
	}
	var parts []string
	for _, el := range slide.PageElements {
		if s := PageElementText(el); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

// SpeakerNotes returns the text of the first BODY placeholder on the slide's
// notes page, or empty when the slide has no notes.
func SpeakerNotes(slide *slides.Page) string {
	if slide == nil || slide.SlideProperties == nil || slide.SlideProperties.NotesPage == nil {
		return ""
	}
	for _, el := range slide.SlideProperties.NotesPage.PageElements {
		if placeholderRole(el) == placeholderBody {
			return PageElementText(el)
		}
	}
	return ""
}

func placeholderRole(el *slides.PageElement) string {
	if el == nil || el.Shape == nil || el.Shape.Placeholder == nil {
		return ""
	}
	return el.Shape.Placeholder.Type
}

// SummarizeSlide renders the one-line listing entry for a slide:
//
//	Slide {n} (ID: {id})[: {title}][ — {subtitle}][ [has notes]]
//
// with a 1-based index; each optional segment appears only when the
// corresponding value is non-empty.
func SummarizeSlide(slide *slides.Page, index int) string {
	if slide == nil {
		return ""
	}

	var title, subtitle string
	for _, el := range slide.PageElements {
		switch placeholderRole(el) {
		case placeholderTitle, placeholderCenteredTitle:
			if title == "" {
				title = PageElementText(el)
			}
		case placeholderSubtitle:
			if subtitle == "" {
				subtitle = PageElementText(el)
			}
		}
	}

	summary := fmt.Sprintf("Slide %d (ID: %s)", index+1, slide.ObjectId)
	if title != "" {
		summary += ": " + title
	}
	if subtitle != "" {
		summary += " — " + subtitle
	}
	if SpeakerNotes(slide) != "" {
		summary += " [has notes]"
	}
	return summary
}
