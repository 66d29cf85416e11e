package markdown

import (
	"reflect"
	"strings"
	"testing"

	"github.com/calliri/go-devlog/content"
)

func TestParse_HeadingLevels(t *testing.T) {
	blocks := Parse("# Title\n## Section\n### Detail\n#### Deeper")

	want := content.Blocks{
		content.Hero{Content: "Title"},
		content.Heading{Content: "Section"},
		content.Subheading{Content: "Detail"},
		content.Subheading{Content: "Deeper"},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Fatalf("heading mapping mismatch: %#v", blocks)
	}
}

func TestParse_DropsEmptyParagraphs(t *testing.T) {
	blocks := Parse("# Title\n\n\n## Section\n")

	if len(blocks) != 2 {
		t.Fatalf("expected exactly 2 blocks, got %d: %#v", len(blocks), blocks)
	}
	if _, ok := blocks[0].(content.Hero); !ok {
		t.Fatalf("expected hero first, got %#v", blocks[0])
	}
	if _, ok := blocks[1].(content.Heading); !ok {
		t.Fatalf("expected heading second, got %#v", blocks[1])
	}
}

func TestParse_ParagraphJoining(t *testing.T) {
	blocks := Parse("line one\nline two\n\nline three")

	want := content.Blocks{
		content.Text{Content: "line one line two"},
		content.Text{Content: "line three"},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Fatalf("paragraph joining mismatch: %#v", blocks)
	}
}

func TestParse_CodeFenceWithOptions(t *testing.T) {
	src := "```typescript [file:a.ts,highlight:1,3-5]\nconst x = 1\n```"
	blocks := Parse(src)

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	code, ok := blocks[0].(content.Code)
	if !ok {
		t.Fatalf("expected code block, got %#v", blocks[0])
	}
	if code.Language != "typescript" {
		t.Fatalf("language mismatch: %q", code.Language)
	}
	if code.FileName != "a.ts" {
		t.Fatalf("file name mismatch: %q", code.FileName)
	}
	if !reflect.DeepEqual(code.HighlightLines, []int{1, 3, 4, 5}) {
		t.Fatalf("highlight lines mismatch: %#v", code.HighlightLines)
	}
	if code.Content != "const x = 1" {
		t.Fatalf("content mismatch: %q", code.Content)
	}
}

func TestParse_BareCodeFenceDefaultsLanguage(t *testing.T) {
	blocks := Parse("```\nplain\n```")

	code, ok := blocks[0].(content.Code)
	if !ok {
		t.Fatalf("expected code block, got %#v", blocks[0])
	}
	if code.Language != "text" {
		t.Fatalf("expected default language text, got %q", code.Language)
	}
}

func TestParse_UnterminatedFenceConsumesToEnd(t *testing.T) {
	parser := New(Options{Strict: true})
	blocks, diags := parser.Parse("```go\nfunc main() {}\nmore")

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d: %#v", len(blocks), blocks)
	}
	code := blocks[0].(content.Code)
	if !strings.Contains(code.Content, "more") {
		t.Fatalf("expected fence to consume trailing lines, got %q", code.Content)
	}
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "unterminated") {
		t.Fatalf("expected unterminated fence diagnostic, got %#v", diags)
	}
}

func TestParse_CalloutVariants(t *testing.T) {
	cases := []struct {
		src     string
		variant content.CalloutVariant
	}{
		{"> [!INFO] Heads up", content.CalloutInfo},
		{"> [!WARNING] Be careful", content.CalloutWarning},
		{"> [!SUCCESS] It worked", content.CalloutSuccess},
		{"> [!DANGER] Stop", content.CalloutDanger},
	}

	for _, tc := range cases {
		blocks := Parse(tc.src)
		if len(blocks) != 1 {
			t.Fatalf("%q: expected 1 block, got %#v", tc.src, blocks)
		}
		callout, ok := blocks[0].(content.Callout)
		if !ok {
			t.Fatalf("%q: expected callout, got %#v", tc.src, blocks[0])
		}
		if callout.Variant != tc.variant {
			t.Fatalf("%q: variant mismatch, got %q", tc.src, callout.Variant)
		}
	}
}

func TestParse_WarningCalloutContent(t *testing.T) {
	blocks := Parse("> [!WARNING] Be careful")

	callout, ok := blocks[0].(content.Callout)
	if !ok {
		t.Fatalf("expected callout, got %#v", blocks[0])
	}
	if callout.Content != "Be careful" {
		t.Fatalf("content mismatch: %q", callout.Content)
	}
}

func TestParse_CalloutTakesOnlyTagLineText(t *testing.T) {
	blocks := Parse("> [!INFO] This is an info callout\n> You can use these to highlight important information.")

	if len(blocks) != 2 {
		t.Fatalf("expected callout and text, got %#v", blocks)
	}
	callout := blocks[0].(content.Callout)
	if callout.Content != "This is an info callout" {
		t.Fatalf("callout content mismatch: %q", callout.Content)
	}
	text, ok := blocks[1].(content.Text)
	if !ok {
		t.Fatalf("expected quoted line as text, got %#v", blocks[1])
	}
	if text.Content != "> You can use these to highlight important information." {
		t.Fatalf("quoted line mismatch: %q", text.Content)
	}
}

func TestParse_UnknownCalloutTagFallsThrough(t *testing.T) {
	parser := New(Options{Strict: true})
	blocks, diags := parser.Parse("> [!NOTE] just a note")

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %#v", blocks)
	}
	text, ok := blocks[0].(content.Text)
	if !ok {
		t.Fatalf("expected text fallback, got %#v", blocks[0])
	}
	if !strings.Contains(text.Content, "[!NOTE]") {
		t.Fatalf("expected raw line preserved, got %q", text.Content)
	}
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "NOTE") {
		t.Fatalf("expected unknown tag diagnostic, got %#v", diags)
	}
}

func TestParse_Lists(t *testing.T) {
	blocks := Parse("- one\n- two\n\n1. first\n2. second")

	want := content.Blocks{
		content.List{Items: []string{"one", "two"}, Ordered: false},
		content.List{Items: []string{"first", "second"}, Ordered: true},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Fatalf("list mismatch: %#v", blocks)
	}
}

func TestParse_MixedListMarkersSplitRun(t *testing.T) {
	parser := New(Options{Strict: true})
	blocks, diags := parser.Parse("- one\n1. two")

	want := content.Blocks{
		content.List{Items: []string{"one"}, Ordered: false},
		content.List{Items: []string{"two"}, Ordered: true},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Fatalf("expected two adjacent list blocks, got %#v", blocks)
	}
	if len(diags) != 1 {
		t.Fatalf("expected mixed marker diagnostic, got %#v", diags)
	}
}

func TestParse_Table(t *testing.T) {
	src := "| Name | Value |\n|------|-------|\n| a | 1 |\n| b | 2 |"
	blocks := Parse(src)

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %#v", blocks)
	}
	table, ok := blocks[0].(content.Table)
	if !ok {
		t.Fatalf("expected table, got %#v", blocks[0])
	}
	if !reflect.DeepEqual(table.Headers, []string{"Name", "Value"}) {
		t.Fatalf("headers mismatch: %#v", table.Headers)
	}
	if !reflect.DeepEqual(table.Rows, [][]string{{"a", "1"}, {"b", "2"}}) {
		t.Fatalf("rows mismatch: %#v", table.Rows)
	}
}

func TestParse_TableWithoutBodyIsText(t *testing.T) {
	blocks := Parse("| Name |\n|------|")

	for _, block := range blocks {
		if _, ok := block.(content.Table); ok {
			t.Fatalf("expected no table without a body row, got %#v", blocks)
		}
	}
}

func TestParse_RaggedTableRowDiagnostic(t *testing.T) {
	parser := New(Options{Strict: true})
	src := "| A | B |\n|---|---|\n| only |"
	blocks, diags := parser.Parse(src)

	table := blocks[0].(content.Table)
	if !reflect.DeepEqual(table.Rows, [][]string{{"only"}}) {
		t.Fatalf("expected ragged row preserved, got %#v", table.Rows)
	}
	if len(diags) != 1 {
		t.Fatalf("expected ragged row diagnostic, got %#v", diags)
	}
}

func TestParse_Timeline(t *testing.T) {
	src := "> [!TIMELINE]\n> 09:00 | Kickoff | Plan the day\n> 17:00 | Wrap | Ship it"
	blocks := Parse(src)

	timeline, ok := blocks[0].(content.Timeline)
	if !ok {
		t.Fatalf("expected timeline, got %#v", blocks[0])
	}
	want := []content.TimelineItem{
		{Time: "09:00", Title: "Kickoff", Description: "Plan the day"},
		{Time: "17:00", Title: "Wrap", Description: "Ship it"},
	}
	if !reflect.DeepEqual(timeline.Items, want) {
		t.Fatalf("timeline items mismatch: %#v", timeline.Items)
	}
}

func TestParse_Metrics(t *testing.T) {
	src := "> [!METRICS]\n> Requests | 1200 | +20% | up\n> Errors | 3"
	blocks := Parse(src)

	metrics, ok := blocks[0].(content.Metrics)
	if !ok {
		t.Fatalf("expected metrics, got %#v", blocks[0])
	}
	want := []content.MetricItem{
		{Label: "Requests", Value: "1200", Change: "+20%", Trend: content.TrendUp},
		{Label: "Errors", Value: "3"},
	}
	if !reflect.DeepEqual(metrics.Items, want) {
		t.Fatalf("metrics items mismatch: %#v", metrics.Items)
	}
}

func TestParse_MalformedTimelineRowSkippedWithDiagnostic(t *testing.T) {
	parser := New(Options{Strict: true})
	src := "> [!TIMELINE]\n> only-two | segments\n> 09:00 | Kickoff | Plan the day"
	blocks, diags := parser.Parse(src)

	timeline, ok := blocks[0].(content.Timeline)
	if !ok {
		t.Fatalf("expected timeline, got %#v", blocks[0])
	}
	want := []content.TimelineItem{{Time: "09:00", Title: "Kickoff", Description: "Plan the day"}}
	if !reflect.DeepEqual(timeline.Items, want) {
		t.Fatalf("expected malformed row skipped, got %#v", timeline.Items)
	}
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "timeline row") {
		t.Fatalf("expected timeline row diagnostic, got %#v", diags)
	}
}

func TestParse_MalformedMetricsRowSkippedWithDiagnostic(t *testing.T) {
	parser := New(Options{Strict: true})
	src := "> [!METRICS]\n> just-a-label\n> Requests | 1200"
	blocks, diags := parser.Parse(src)

	metrics, ok := blocks[0].(content.Metrics)
	if !ok {
		t.Fatalf("expected metrics, got %#v", blocks[0])
	}
	want := []content.MetricItem{{Label: "Requests", Value: "1200"}}
	if !reflect.DeepEqual(metrics.Items, want) {
		t.Fatalf("expected malformed row skipped, got %#v", metrics.Items)
	}
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "metrics row") {
		t.Fatalf("expected metrics row diagnostic, got %#v", diags)
	}
}

func TestParse_InlineImage(t *testing.T) {
	blocks := Parse("before ![diagram](https://example.com/d.png \"The diagram\") after")

	if len(blocks) != 2 {
		t.Fatalf("expected image and text, got %#v", blocks)
	}
	img, ok := blocks[0].(content.Image)
	if !ok {
		t.Fatalf("expected image first, got %#v", blocks[0])
	}
	if img.Alt != "diagram" || img.Src != "https://example.com/d.png" || img.Caption != "The diagram" {
		t.Fatalf("image fields mismatch: %#v", img)
	}
	text := blocks[1].(content.Text)
	if text.Content != "before  after" && text.Content != "before after" {
		t.Fatalf("remainder text mismatch: %q", text.Content)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	blocks := Parse("")
	if len(blocks) != 0 {
		t.Fatalf("expected no blocks for empty input, got %#v", blocks)
	}
}

func TestParse_MatchesBuilderOutput(t *testing.T) {
	parsed := Parse("## H\n\nT")
	built := content.NewBuilder().Heading("H").Text("T").Build()

	if !reflect.DeepEqual(parsed, built) {
		t.Fatalf("parser and builder disagree:\nparsed: %#v\nbuilt:  %#v", parsed, built)
	}
}

func TestExpandHighlightRanges(t *testing.T) {
	cases := []struct {
		input string
		want  []int
	}{
		{"1", []int{1}},
		{"1,3-5,7", []int{1, 3, 4, 5, 7}},
		{"5-3", nil},
		{"a,2", []int{2}},
		{"", nil},
	}

	for _, tc := range cases {
		got := expandHighlightRanges(tc.input)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("expandHighlightRanges(%q) = %#v, want %#v", tc.input, got, tc.want)
		}
	}
}
