package slides

import (
	"strings"
	"testing"

	slides "google.golang.org/api/slides/v1"
)

func shape(placeholder, text string) *slides.PageElement {
	s := &slides.Shape{
		Text: &slides.TextContent{
			TextElements: []*slides.TextElement{
				{TextRun: &slides.TextRun{Content: text}},
			},
		},
	}
	if placeholder != "" {
		s.Placeholder = &slides.Placeholder{Type: placeholder}
	}
	return &slides.PageElement{Shape: s}
}

func TestPageElementTextShape(t *testing.T) {
	el := shape("", "  hello world \n")
	if got := PageElementText(el); got != "hello world" {
		t.Errorf("PageElementText(shape) = %q", got)
	}
}

func TestPageElementTextTable(t *testing.T) {
	el := &slides.PageElement{Table: &slides.Table{
		TableRows: []*slides.TableRow{
			{TableCells: []*slides.TableCell{
				{Text: &slides.TextContent{TextElements: []*slides.TextElement{{TextRun: &slides.TextRun{Content: "a\n"}}}}},
				{Text: &slides.TextContent{TextElements: []*slides.TextElement{{TextRun: &slides.TextRun{Content: "b\n"}}}}},
			}},
		},
	}}

	got := PageElementText(el)
	if got != "[Table]\na\tb" {
		t.Errorf("PageElementText(table) = %q", got)
	}
}

func TestPageElementTextEmptyTable(t *testing.T) {
	el := &slides.PageElement{Table: &slides.Table{
		TableRows: []*slides.TableRow{
			{TableCells: []*slides.TableCell{{}, {}}},
		},
	}}

	if got := PageElementText(el); got != "" {
		t.Errorf("empty table should yield empty string, got %q", got)
	}
}

func TestPageElementTextGroup(t *testing.T) {
	el := &slides.PageElement{ElementGroup: &slides.Group{
		Children: []*slides.PageElement{
			shape("", "first"),
			shape("", ""),
			{ElementGroup: &slides.Group{Children: []*slides.PageElement{
				shape("", "nested"),
			}}},
		},
	}}

	if got := PageElementText(el); got != "first\nnested" {
		t.Errorf("PageElementText(group) = %q", got)
	}
}

func TestPageElementTextGroupAllEmpty(t *testing.T) {
	el := &slides.PageElement{ElementGroup: &slides.Group{
		Children: []*slides.PageElement{
			shape("", ""),
			shape("", "   "),
		},
	}}

	if got := PageElementText(el); got != "" {
		t.Errorf("group of empty children should yield empty string, got %q", got)
	}
}

func TestPageElementTextGroupDepthGuard(t *testing.T) {
	// Build a group chain deeper than the guard; the walk must terminate
	// and simply drop content beyond the bound.
	leaf := shape("", "deep")
	el := leaf
	for i := 0; i < maxGroupDepth+5; i++ {
		el = &slides.PageElement{ElementGroup: &slides.Group{Children: []*slides.PageElement{el}}}
	}

	if got := PageElementText(el); got != "" {
		t.Errorf("content beyond the depth guard should be dropped, got %q", got)
	}
}

func TestPageElementTextWordArt(t *testing.T) {
	el := &slides.PageElement{WordArt: &slides.WordArt{RenderedText: "BIG TEXT"}}
	if got := PageElementText(el); got != "BIG TEXT" {
		t.Errorf("PageElementText(wordArt) = %q", got)
	}
}

func TestPageElementTextUnknown(t *testing.T) {
	if got := PageElementText(&slides.PageElement{}); got != "" {
		t.Errorf("unknown element kind should yield empty string, got %q", got)
	}
	if got := PageElementText(nil); got != "" {
		t.Errorf("nil element should yield empty string, got %q", got)
	}
}

func notesSlide(id, title, notes string) *slides.Page {
	slide := &slides.Page{ObjectId: id}
	if title != "" {
		slide.PageElements = append(slide.PageElements, shape("TITLE", title))
	}
	if notes != "" {
		slide.SlideProperties = &slides.SlideProperties{
			NotesPage: &slides.Page{
				PageElements: []*slides.PageElement{
					shape("SLIDE_IMAGE", "thumbnail"),
					shape("BODY", notes),
				},
			},
		}
	}
	return slide
}

func TestSpeakerNotes(t *testing.T) {
	slide := notesSlide("p1", "Intro", "talk slowly")
	if got := SpeakerNotes(slide); got != "talk slowly" {
		t.Errorf("SpeakerNotes() = %q", got)
	}

	if got := SpeakerNotes(notesSlide("p2", "Intro", "")); got != "" {
		t.Errorf("SpeakerNotes() without notes page = %q, want empty", got)
	}
}

func TestSummarizeSlide(t *testing.T) {
	tests := []struct {
		name  string
		slide *slides.Page
		index int
		want  string
	}{
		{
			name:  "title and notes",
			slide: notesSlide("p1", "Intro", "talk slowly"),
			index: 0,
			want:  "Slide 1 (ID: p1): Intro [has notes]",
		},
		{
			name:  "bare slide",
			slide: &slides.Page{ObjectId: "p7"},
			index: 6,
			want:  "Slide 7 (ID: p7)",
		},
		{
			name: "title and subtitle",
			slide: &slides.Page{
				ObjectId: "p2",
				PageElements: []*slides.PageElement{
					shape("CENTERED_TITLE", "Launch"),
					shape("SUBTITLE", "Q3 plan"),
				},
			},
			index: 1,
			want:  "Slide 2 (ID: p2): Launch — Q3 plan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummarizeSlide(tt.slide, tt.index); got != tt.want {
				t.Errorf("SummarizeSlide() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSlideText(t *testing.T) {
	slide := &slides.Page{
		ObjectId: "p1",
		PageElements: []*slides.PageElement{
			shape("TITLE", "Header"),
			shape("", ""),
			shape("BODY", "content"),
		},
	}

	got := SlideText(slide)
	if !strings.Contains(got, "Header") || !strings.Contains(got, "content") {
		t.Errorf("SlideText() = %q", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("empty elements should not produce blank runs: %q", got)
	}
}
