package docs

import (
	"strconv"
	"strings"

	docs "google.golang.org/api/docs/v1"
)

const headingStylePrefix = "HEADING_"

// Heading is one outline entry: the numeric level from the paragraph's named
// style and the trimmed paragraph text.
type Heading struct {
	Level int
	Text  string
}

// ExtractText flattens a document body into plain text in document order.
// Paragraph runs concatenate literally, inline objects become an "[image]"
// marker, horizontal rules become a newline-wrapped "---". Table rows join
// their cells with tabs and each other with newlines; section breaks emit a
// bare newline.
func ExtractText(body *docs.Body) string {
	if body == nil {
		return ""
	}

	var text strings.Builder
	for _, element := range body.Content {
		writeStructuralElement(&text, element)
	}
	return text.String()
}

func writeStructuralElement(text *strings.Builder, element *docs.StructuralElement) {
	if element == nil {
		return
	}
	switch {
	case element.Paragraph != nil:
		writeParagraph(text, element.Paragraph)
	case element.Table != nil:
		writeTable(text, element.Table)
	case element.SectionBreak != nil:
		text.WriteString("\n")
	}
}

func writeParagraph(text *strings.Builder, para *docs.Paragraph) {
	for _, elem := range para.Elements {
		switch {
		case elem.TextRun != nil:
			text.WriteString(elem.TextRun.Content)
		case elem.InlineObjectElement != nil:
			text.WriteString("[image]")
		case elem.HorizontalRule != nil:
			text.WriteString("\n---\n")
		}
	}
}

func writeTable(text *strings.Builder, table *docs.Table) {
	for _, row := range table.TableRows {
		cells := make([]string, 0, len(row.TableCells))
		for _, cell := range row.TableCells {
			cells = append(cells, cellText(cell))
		}
		text.WriteString(strings.Join(cells, "\t"))
		text.WriteString("\n")
	}
}

// cellText flattens one table cell: each contained paragraph's text trimmed,
// the paragraphs joined by single spaces.
func cellText(cell *docs.TableCell) string {
	if cell == nil {
		return ""
	}
	var parts []string
	for _, element := range cell.Content {
		if element.Paragraph == nil {
			continue
		}
		var para strings.Builder
		writeParagraph(&para, element.Paragraph)
		if s := strings.TrimSpace(para.String()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// ExtractHeadings scans top-level paragraphs for HEADING_<n> named styles and
// returns the outline in document order. Paragraphs inside tables are not
// considered. Styles without a numeric suffix and headings whose text trims
// to empty are skipped.
func ExtractHeadings(body *docs.Body) []Heading {
	if body == nil {
		return nil
	}

	var headings []Heading
	for _, element := range body.Content {
		para := element.Paragraph
		if para == nil || para.ParagraphStyle == nil {
			continue
		}
		style := para.ParagraphStyle.NamedStyleType
		if !strings.HasPrefix(style, headingStylePrefix) {
			continue
		}
		level, err := strconv.Atoi(strings.TrimPrefix(style, headingStylePrefix))
		if err != nil || level <= 0 {
			continue
		}

		var text strings.Builder
		writeParagraph(&text, para)
		title := strings.TrimSpace(text.String())
		if title == "" {
			continue
		}
		headings = append(headings, Heading{Level: level, Text: title})
	}
	return headings
}
