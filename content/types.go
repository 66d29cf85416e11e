package content

// BlockType discriminates the closed set of content block variants. A post
// body is an ordered sequence of blocks; position is identity, blocks carry
// no keys.
type BlockType string

const (
	TypeHero        BlockType = "hero"
	TypeHeading     BlockType = "heading"
	TypeSubheading  BlockType = "subheading"
	TypeText        BlockType = "text"
	TypeMarkdown    BlockType = "markdown"
	TypeCode        BlockType = "code"
	TypeCallout     BlockType = "callout"
	TypeList        BlockType = "list"
	TypeImage       BlockType = "image"
	TypeVideo       BlockType = "video"
	TypeQuote       BlockType = "quote"
	TypeTable       BlockType = "table"
	TypeTimeline    BlockType = "timeline"
	TypeMetrics     BlockType = "metrics"
	TypeSeparator   BlockType = "separator"
	TypeTwoColumn   BlockType = "two-column"
	TypeTabs        BlockType = "tabs"
	TypeAccordion   BlockType = "accordion"
	TypeEmbed       BlockType = "embed"
	TypeInteractive BlockType = "interactive"
)

// Valid reports whether the type names a known block variant.
func (t BlockType) Valid() bool {
	switch t {
	case TypeHero, TypeHeading, TypeSubheading, TypeText, TypeMarkdown,
		TypeCode, TypeCallout, TypeList, TypeImage, TypeVideo, TypeQuote,
		TypeTable, TypeTimeline, TypeMetrics, TypeSeparator, TypeTwoColumn,
		TypeTabs, TypeAccordion, TypeEmbed, TypeInteractive:
		return true
	}
	return false
}

// Block is the atomic unit of a post body. Implementations are value types
// and are never mutated after construction; producers replace whole
// sequences instead of editing blocks in place.
type Block interface {
	BlockType() BlockType
}

// Blocks is an ordered block sequence. The order is semantically
// significant: it defines reading order.
type Blocks []Block

// CalloutVariant selects the visual treatment of a callout block.
type CalloutVariant string

const (
	CalloutInfo    CalloutVariant = "info"
	CalloutWarning CalloutVariant = "warning"
	CalloutSuccess CalloutVariant = "success"
	CalloutDanger  CalloutVariant = "danger"
)

// OrInfo resolves unrecognized variants to info. Renderers use this fallback;
// the parser never produces an unknown variant in the first place.
func (v CalloutVariant) OrInfo() CalloutVariant {
	switch v {
	case CalloutInfo, CalloutWarning, CalloutSuccess, CalloutDanger:
		return v
	}
	return CalloutInfo
}

// Trend describes the direction of a metric.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// ParseTrend maps a raw token onto a Trend. Unknown tokens are rejected so
// metric rows keep trend unset rather than carrying junk values.
func ParseTrend(raw string) (Trend, bool) {
	switch Trend(raw) {
	case TrendUp, TrendDown, TrendNeutral:
		return Trend(raw), true
	}
	return "", false
}

// SeparatorStyle selects how a separator block renders.
type SeparatorStyle string

const (
	SeparatorLine     SeparatorStyle = "line"
	SeparatorDots     SeparatorStyle = "dots"
	SeparatorGradient SeparatorStyle = "gradient"
)

// TimelineItem is one entry of a timeline block.
type TimelineItem struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MetricItem is one entry of a metrics block. Change and Trend are optional.
type MetricItem struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
	Trend  Trend  `json:"trend,omitempty"`
}

// Tab pairs a label with a nested block sequence.
type Tab struct {
	Label   string `json:"label"`
	Content Blocks `json:"content"`
}

// AccordionItem pairs a title with a nested block sequence.
type AccordionItem struct {
	Title   string `json:"title"`
	Content Blocks `json:"content"`
}

// Hero is the level-1 heading banner of a post.
type Hero struct {
	Content string `json:"content"`
}

// Heading is a level-2 section heading.
type Heading struct {
	Content string `json:"content"`
}

// Subheading covers level-3 and deeper headings.
type Subheading struct {
	Content string `json:"content"`
}

// Text is a plain paragraph. Empty or whitespace-only text blocks are
// dropped during parsing.
type Text struct {
	Content string `json:"content"`
}

// Markdown is raw pass-through markup; it is not reprocessed by the parser.
type Markdown struct {
	Content string `json:"content"`
}

// Interactive carries an opaque payload interpreted by the rendering layer.
type Interactive struct {
	Content string `json:"content"`
}

// Code is a fenced code block with an optional file name and 1-based
// highlighted line numbers.
type Code struct {
	Content        string `json:"content"`
	Language       string `json:"language"`
	FileName       string `json:"fileName,omitempty"`
	HighlightLines []int  `json:"highlightLines,omitempty"`
}

// Callout highlights a short message with an info/warning/success/danger
// treatment.
type Callout struct {
	Variant CalloutVariant `json:"variant"`
	Content string         `json:"content"`
	Title   string         `json:"title,omitempty"`
}

// List is an ordered or unordered run of items, preserving source order.
type List struct {
	Items   []string `json:"items"`
	Ordered bool     `json:"ordered,omitempty"`
}

// Image references a picture with required alt text.
type Image struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

// Video references a playable clip.
type Video struct {
	Src     string `json:"src"`
	Poster  string `json:"poster,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Quote is an attributed citation.
type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
	Source  string `json:"source,omitempty"`
}

// Table holds a header row plus body rows. Row cell counts are preserved
// as written; ragged rows are not padded or truncated.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
	Caption string     `json:"caption,omitempty"`
}

// Timeline is a chronological run of time/title/description entries.
type Timeline struct {
	Items []TimelineItem `json:"items"`
}

// Metrics is a run of label/value figures with optional change and trend.
type Metrics struct {
	Items []MetricItem `json:"items"`
}

// Separator is a visual break between sections. An empty style renders as a
// plain line.
type Separator struct {
	Style SeparatorStyle `json:"style,omitempty"`
}

// TwoColumn lays out two nested block sequences side by side. It is the only
// variant besides tabs and accordions whose fields are block sequences.
type TwoColumn struct {
	Left  Blocks `json:"left"`
	Right Blocks `json:"right"`
}

// Tabs groups labelled block sequences behind a tab switcher.
type Tabs struct {
	Tabs []Tab `json:"tabs"`
}

// Accordion groups titled block sequences behind collapsible headers.
type Accordion struct {
	Items []AccordionItem `json:"items"`
}

// Embed references external content by URL.
type Embed struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Provider    string `json:"provider,omitempty"`
}

func (Hero) BlockType() BlockType        { return TypeHero }
func (Heading) BlockType() BlockType     { return TypeHeading }
func (Subheading) BlockType() BlockType  { return TypeSubheading }
func (Text) BlockType() BlockType        { return TypeText }
func (Markdown) BlockType() BlockType    { return TypeMarkdown }
func (Interactive) BlockType() BlockType { return TypeInteractive }
func (Code) BlockType() BlockType        { return TypeCode }
func (Callout) BlockType() BlockType     { return TypeCallout }
func (List) BlockType() BlockType        { return TypeList }
func (Image) BlockType() BlockType       { return TypeImage }
func (Video) BlockType() BlockType       { return TypeVideo }
func (Quote) BlockType() BlockType       { return TypeQuote }
func (Table) BlockType() BlockType       { return TypeTable }
func (Timeline) BlockType() BlockType    { return TypeTimeline }
func (Metrics) BlockType() BlockType     { return TypeMetrics }
func (Separator) BlockType() BlockType   { return TypeSeparator }
func (TwoColumn) BlockType() BlockType   { return TypeTwoColumn }
func (Tabs) BlockType() BlockType        { return TypeTabs }
func (Accordion) BlockType() BlockType   { return TypeAccordion }
func (Embed) BlockType() BlockType       { return TypeEmbed }
