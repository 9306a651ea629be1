package docs

import (
	"testing"

	docs "google.golang.org/api/docs/v1"
)

func paragraph(runs ...*docs.ParagraphElement) *docs.StructuralElement {
	return &docs.StructuralElement{Paragraph: &docs.Paragraph{Elements: runs}}
}

func textRun(s string) *docs.ParagraphElement {
	return &docs.ParagraphElement{TextRun: &docs.TextRun{Content: s}}
}

func inlineObject(id string) *docs.ParagraphElement {
	return &docs.ParagraphElement{InlineObjectElement: &docs.InlineObjectElement{InlineObjectId: id}}
}

func horizontalRule() *docs.ParagraphElement {
	return &docs.ParagraphElement{HorizontalRule: &docs.HorizontalRule{}}
}

func styledParagraph(style, text string) *docs.StructuralElement {
	return &docs.StructuralElement{
		Paragraph: &docs.Paragraph{
			ParagraphStyle: &docs.ParagraphStyle{NamedStyleType: style},
			Elements:       []*docs.ParagraphElement{textRun(text)},
		},
	}
}

func TestExtractTextParagraphs(t *testing.T) {
	body := &docs.Body{Content: []*docs.StructuralElement{
		paragraph(textRun("Hello "), textRun("world\n")),
		paragraph(textRun("before "), inlineObject("obj1"), textRun(" after\n")),
		paragraph(horizontalRule()),
	}}

	got := ExtractText(body)
	want := "Hello world\nbefore [image] after\n\n---\n"
	if got != want {
		t.Errorf("ExtractText() = %q, want %q", got, want)
	}
}

func TestExtractTextTable(t *testing.T) {
	cell := func(texts ...string) *docs.TableCell {
		c := &docs.TableCell{}
		for _, s := range texts {
			c.Content = append(c.Content, paragraph(textRun(s)))
		}
		return c
	}

	body := &docs.Body{Content: []*docs.StructuralElement{
		{Table: &docs.Table{TableRows: []*docs.TableRow{
			{TableCells: []*docs.TableCell{cell("a\n"), cell("b\n")}},
			{TableCells: []*docs.TableCell{cell("first\n", "second\n"), cell("d\n")}},
		}}},
	}}

	got := ExtractText(body)
	// cells tab-joined, rows newline-joined, trailing newline after the
	// table; a multi-paragraph cell joins its paragraphs with one space
	want := "a\tb\nfirst second\td\n"
	if got != want {
		t.Errorf("ExtractText() = %q, want %q", got, want)
	}
}

func TestExtractTextSectionBreak(t *testing.T) {
	body := &docs.Body{Content: []*docs.StructuralElement{
		paragraph(textRun("one\n")),
		{SectionBreak: &docs.SectionBreak{}},
		paragraph(textRun("two\n")),
	}}

	if got := ExtractText(body); got != "one\n\ntwo\n" {
		t.Errorf("ExtractText() = %q", got)
	}
}

func TestExtractHeadings(t *testing.T) {
	body := &docs.Body{Content: []*docs.StructuralElement{
		styledParagraph("HEADING_1", "Title\n"),
		styledParagraph("NORMAL_TEXT", "prose\n"),
		styledParagraph("HEADING_2", "Scope\n"),
		styledParagraph("HEADING_X", "not a level\n"),
		styledParagraph("HEADING_3", "   \n"),
		styledParagraph("TITLE", "doc title\n"),
	}}

	got := ExtractHeadings(body)
	want := []Heading{
		{Level: 1, Text: "Title"},
		{Level: 2, Text: "Scope"},
	}

	if len(got) != len(want) {
		t.Fatalf("ExtractHeadings() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("heading %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestExtractHeadingsEmptyDocument(t *testing.T) {
	if got := ExtractHeadings(&docs.Body{}); len(got) != 0 {
		t.Errorf("ExtractHeadings(empty) = %v, want empty", got)
	}
	if got := ExtractHeadings(nil); got != nil {
		t.Errorf("ExtractHeadings(nil) = %v, want nil", got)
	}
}

func TestExtractHeadingsIgnoresTables(t *testing.T) {
	body := &docs.Body{Content: []*docs.StructuralElement{
		{Table: &docs.Table{TableRows: []*docs.TableRow{
			{TableCells: []*docs.TableCell{{Content: []*docs.StructuralElement{
				styledParagraph("HEADING_1", "inside table\n"),
			}}}},
		}}},
	}}

	if got := ExtractHeadings(body); len(got) != 0 {
		t.Errorf("headings inside tables should be skipped, got %v", got)
	}
}
