package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/calliri/go-devlog/content"
)

// Options controls parser behaviour. The zero value is the lenient default:
// malformed special syntax degrades to plain paragraph text and no
// diagnostics are reported.
type Options struct {
	// Strict surfaces malformed-input diagnostics (unterminated fences,
	// unknown callout tags, mixed list markers, ragged table rows) instead
	// of degrading silently. Block output is identical in both modes.
	Strict bool
}

// Diagnostic describes one malformed construct found during a strict parse.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// Parser is a reusable, stateless block parser. A single instance is safe
// for concurrent use; every Parse call operates on its own scan state.
type Parser struct {
	opts Options
}

// New constructs a parser with the supplied options.
func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Parse converts raw text into a block sequence using the lenient defaults.
// It is total: no input makes it fail.
func Parse(src string) content.Blocks {
	blocks, _ := New(Options{}).Parse(src)
	return blocks
}

// Parse converts raw text into a block sequence. Diagnostics are collected
// only when the parser was built with Strict; the lenient mode returns nil.
func (p *Parser) Parse(src string) (content.Blocks, []Diagnostic) {
	s := &scan{
		lines:  strings.Split(src, "\n"),
		strict: p.opts.Strict,
	}
	s.run()
	if s.out == nil {
		s.out = content.Blocks{}
	}
	return s.out, s.diags
}

var (
	headingRe    = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	bulletItemRe = regexp.MustCompile(`^[-*+]\s+(.+)$`)
	numberItemRe = regexp.MustCompile(`^\d+\.\s+(.+)$`)
	calloutRe    = regexp.MustCompile(`^>\s*\[!([A-Z]+)\]\s*(.*)$`)
	quoteMarkRe  = regexp.MustCompile(`^>\s?`)
	imageRe      = regexp.MustCompile(`!\[([^\]]*)\]\(\s*([^)\s]+)(?:\s+"([^"]*)")?\s*\)`)
	fenceInfoRe  = regexp.MustCompile(`^(\w+)?\s*(?:\[([^\]]*)\])?\s*$`)
	tableSepRe   = regexp.MustCompile(`^\|[-\s|:]+\|?$`)
)

var calloutVariants = map[string]content.CalloutVariant{
	"INFO":    content.CalloutInfo,
	"WARNING": content.CalloutWarning,
	"SUCCESS": content.CalloutSuccess,
	"DANGER":  content.CalloutDanger,
}

// scan holds the per-call state of the forward pass: the output sequence,
// an open paragraph buffer, and an open list run.
type scan struct {
	lines  []string
	strict bool

	out         content.Blocks
	para        []string
	listItems   []string
	listOrdered bool
	diags       []Diagnostic
}

func (s *scan) run() {
	for i := 0; i < len(s.lines); i++ {
		line := strings.TrimSpace(s.lines[i])

		switch {
		case line == "":
			s.flushPara()
			s.flushList()

		case strings.HasPrefix(line, "```"):
			i = s.scanFence(i, line)

		case strings.HasPrefix(line, ">"):
			i = s.scanQuote(i, line)

		case headingRe.MatchString(line):
			s.emitHeading(line)

		case bulletItemRe.MatchString(line) || numberItemRe.MatchString(line):
			s.appendListItem(i, line)

		case s.isTableStart(i, line):
			i = s.scanTable(i, line)

		default:
			s.appendText(line)
		}
	}

	s.flushPara()
	s.flushList()
}

// scanFence consumes a fenced code block starting at line i and returns the
// index of the closing fence (or the last line when the fence never closes).
// An opener whose info string does not match the language[options] grammar is
// not a fence at all and joins the open paragraph.
func (s *scan) scanFence(i int, line string) int {
	info := strings.TrimPrefix(line, "```")
	m := fenceInfoRe.FindStringSubmatch(info)
	if m == nil {
		s.report(i, "malformed code fence info string")
		s.appendText(line)
		return i
	}

	s.flushPara()
	s.flushList()

	language := m[1]
	if language == "" {
		language = "text"
	}
	fileName, highlights := parseFenceOptions(m[2])

	var body []string
	closed := false
	j := i + 1
	for ; j < len(s.lines); j++ {
		if strings.TrimSpace(s.lines[j]) == "```" {
			closed = true
			break
		}
		body = append(body, s.lines[j])
	}
	if !closed {
		s.report(i, "unterminated code fence")
		j = len(s.lines) - 1
	}

	s.emit(content.Code{
		Content:        strings.TrimSpace(strings.Join(body, "\n")),
		Language:       language,
		FileName:       fileName,
		HighlightLines: highlights,
	})
	return j
}

// scanQuote dispatches a ">"-prefixed line: tagged callouts, timeline and
// metrics runs, or plain quoted text that joins the paragraph as-is.
func (s *scan) scanQuote(i int, line string) int {
	m := calloutRe.FindStringSubmatch(line)
	if m == nil {
		// A bare blockquote has no special meaning in this grammar.
		s.appendText(line)
		return i
	}

	tag, rest := m[1], strings.TrimSpace(m[2])

	switch tag {
	case "TIMELINE":
		if rest != "" {
			s.report(i, "timeline opener carries trailing text")
			s.appendText(line)
			return i
		}
		return s.scanTimeline(i)
	case "METRICS":
		if rest != "" {
			s.report(i, "metrics opener carries trailing text")
			s.appendText(line)
			return i
		}
		return s.scanMetrics(i)
	}

	variant, ok := calloutVariants[tag]
	if !ok {
		// Tags are case-sensitive and closed; anything else is plain text.
		s.report(i, fmt.Sprintf("unknown callout tag %q", tag))
		s.appendText(line)
		return i
	}

	s.flushPara()
	s.flushList()

	// Only the trailing text on the tag line belongs to the callout.
	// Quoted lines that follow carry no special meaning and fall through
	// to the paragraph pass on the next iteration.
	s.emit(content.Callout{
		Variant: variant,
		Content: rest,
	})
	return i
}

// scanTimeline reads "time | title | description" rows until a blank line.
func (s *scan) scanTimeline(i int) int {
	s.flushPara()
	s.flushList()

	var items []content.TimelineItem
	j := i + 1
	for ; j < len(s.lines); j++ {
		line := strings.TrimSpace(s.lines[j])
		if line == "" {
			break
		}
		row := strings.TrimSpace(quoteMarkRe.ReplaceAllString(line, ""))
		segments := splitPipe(row)
		if len(segments) != 3 {
			s.report(j, "timeline row is not time | title | description")
			continue
		}
		items = append(items, content.TimelineItem{
			Time:        segments[0],
			Title:       segments[1],
			Description: segments[2],
		})
	}

	if len(items) > 0 {
		s.emit(content.Timeline{Items: items})
	}
	return j - 1
}

// scanMetrics reads "label | value | change? | trend?" rows until a blank
// line. A trailing segment is only treated as a trend when it is exactly
// up, down, or neutral.
func (s *scan) scanMetrics(i int) int {
	s.flushPara()
	s.flushList()

	var items []content.MetricItem
	j := i + 1
	for ; j < len(s.lines); j++ {
		line := strings.TrimSpace(s.lines[j])
		if line == "" {
			break
		}
		row := strings.TrimSpace(quoteMarkRe.ReplaceAllString(line, ""))
		segments := splitPipe(row)
		if len(segments) < 2 {
			s.report(j, "metrics row is not label | value")
			continue
		}

		item := content.MetricItem{Label: segments[0], Value: segments[1]}
		extra := segments[2:]
		if len(extra) > 0 {
			if trend, ok := content.ParseTrend(extra[len(extra)-1]); ok {
				item.Trend = trend
				extra = extra[:len(extra)-1]
			}
			item.Change = strings.Join(extra, " | ")
		}
		items = append(items, item)
	}

	if len(items) > 0 {
		s.emit(content.Metrics{Items: items})
	}
	return j - 1
}

// isTableStart requires the full GFM minimum: header row, separator row,
// and at least one body row. Anything less renders as plain text.
func (s *scan) isTableStart(i int, line string) bool {
	if !strings.HasPrefix(line, "|") {
		return false
	}
	if i+2 >= len(s.lines) {
		return false
	}
	if !tableSepRe.MatchString(strings.TrimSpace(s.lines[i+1])) {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(s.lines[i+2]), "|")
}

func (s *scan) scanTable(i int, line string) int {
	s.flushPara()
	s.flushList()

	headers := splitTableRow(line)

	var rows [][]string
	j := i + 2
	for ; j < len(s.lines); j++ {
		row := strings.TrimSpace(s.lines[j])
		if !strings.HasPrefix(row, "|") {
			break
		}
		cells := splitTableRow(row)
		if s.strict && len(cells) != len(headers) {
			s.report(j, fmt.Sprintf("table row has %d cells, header has %d", len(cells), len(headers)))
		}
		rows = append(rows, cells)
	}

	s.emit(content.Table{Headers: headers, Rows: rows})
	return j - 1
}

func (s *scan) emitHeading(line string) {
	s.flushPara()
	s.flushList()

	m := headingRe.FindStringSubmatch(line)
	text := m[2]
	switch len(m[1]) {
	case 1:
		s.emit(content.Hero{Content: text})
	case 2:
		s.emit(content.Heading{Content: text})
	default:
		s.emit(content.Subheading{Content: text})
	}
}

// appendListItem grows the open list run. A change of marker syntax closes
// the run and starts a new one, so mixed bullet and numbered runs become
// two adjacent list blocks.
func (s *scan) appendListItem(i int, line string) {
	s.flushPara()

	item := ""
	ordered := false
	if m := bulletItemRe.FindStringSubmatch(line); m != nil {
		item = m[1]
	} else if m := numberItemRe.FindStringSubmatch(line); m != nil {
		item = m[1]
		ordered = true
	}

	if len(s.listItems) > 0 && s.listOrdered != ordered {
		s.report(i, "list run mixes bullet and numbered markers")
		s.flushList()
	}

	s.listOrdered = ordered
	s.listItems = append(s.listItems, item)
}

// appendText feeds a generic line into the paragraph buffer, extracting any
// inline images first. An image closes the open paragraph so blocks keep
// their source order.
func (s *scan) appendText(line string) {
	s.flushList()

	matches := imageRe.FindAllStringSubmatch(line, -1)
	if len(matches) > 0 {
		s.flushPara()
		for _, m := range matches {
			s.emit(content.Image{Alt: m[1], Src: m[2], Caption: m[3]})
		}
		line = strings.TrimSpace(imageRe.ReplaceAllString(line, ""))
		if line == "" {
			return
		}
	}

	s.para = append(s.para, line)
}

func (s *scan) emit(block content.Block) {
	s.out = append(s.out, block)
}

func (s *scan) flushPara() {
	if len(s.para) == 0 {
		return
	}
	text := strings.TrimSpace(strings.Join(s.para, " "))
	s.para = nil
	if text == "" {
		return
	}
	s.emit(content.Text{Content: text})
}

func (s *scan) flushList() {
	if len(s.listItems) == 0 {
		return
	}
	s.emit(content.List{Items: s.listItems, Ordered: s.listOrdered})
	s.listItems = nil
	s.listOrdered = false
}

func (s *scan) report(line int, message string) {
	if !s.strict {
		return
	}
	s.diags = append(s.diags, Diagnostic{Line: line + 1, Message: message})
}

// splitPipe splits a row on pipes and trims every segment, keeping empties
// out of timeline and metrics rows.
func splitPipe(row string) []string {
	parts := strings.Split(row, "|")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// splitTableRow trims cells and discards the empty leading/trailing
// segments produced by the surrounding pipes. Interior empty cells are kept
// so ragged rows stay observable.
func splitTableRow(row string) []string {
	parts := strings.Split(row, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}
