package content

import "strings"

// Builder assembles a block sequence through chained calls. The internal
// accumulator is uniquely owned by the builder; Build returns a copy so a
// snapshot never aliases later appends.
type Builder struct {
	blocks Blocks
}

// NewBuilder returns an empty content builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends an already constructed block.
func (b *Builder) Add(block Block) *Builder {
	b.blocks = append(b.blocks, block)
	return b
}

func (b *Builder) Hero(content string) *Builder {
	return b.Add(Hero{Content: content})
}

func (b *Builder) Heading(content string) *Builder {
	return b.Add(Heading{Content: content})
}

func (b *Builder) Subheading(content string) *Builder {
	return b.Add(Subheading{Content: content})
}

func (b *Builder) Text(content string) *Builder {
	return b.Add(Text{Content: content})
}

func (b *Builder) Markdown(content string) *Builder {
	return b.Add(Markdown{Content: content})
}

func (b *Builder) Interactive(content string) *Builder {
	return b.Add(Interactive{Content: content})
}

// CodeOption customises a code block beyond its content and language.
type CodeOption func(*Code)

// WithFileName labels the code block with its source file name.
func WithFileName(name string) CodeOption {
	return func(c *Code) { c.FileName = name }
}

// WithHighlight marks 1-based line numbers to emphasise.
func WithHighlight(lines ...int) CodeOption {
	return func(c *Code) { c.HighlightLines = append([]int(nil), lines...) }
}

func (b *Builder) Code(content, language string, opts ...CodeOption) *Builder {
	if strings.TrimSpace(language) == "" {
		language = "text"
	}
	block := Code{Content: content, Language: language}
	for _, opt := range opts {
		opt(&block)
	}
	return b.Add(block)
}

func (b *Builder) List(items []string, ordered bool) *Builder {
	return b.Add(List{Items: append([]string(nil), items...), Ordered: ordered})
}

// Callout appends a callout with an explicit variant. Pass an empty title
// for untitled callouts.
func (b *Builder) Callout(content string, variant CalloutVariant, title string) *Builder {
	return b.Add(Callout{Variant: variant.OrInfo(), Content: content, Title: title})
}

func (b *Builder) Info(content, title string) *Builder {
	return b.Callout(content, CalloutInfo, title)
}

func (b *Builder) Warning(content, title string) *Builder {
	return b.Callout(content, CalloutWarning, title)
}

func (b *Builder) Success(content, title string) *Builder {
	return b.Callout(content, CalloutSuccess, title)
}

func (b *Builder) Danger(content, title string) *Builder {
	return b.Callout(content, CalloutDanger, title)
}

// ImageOption customises an image block beyond src and alt.
type ImageOption func(*Image)

// WithCaption attaches a caption to the image.
func WithCaption(caption string) ImageOption {
	return func(i *Image) { i.Caption = caption }
}

// WithDimensions sets the intrinsic width and height in pixels.
func WithDimensions(width, height int) ImageOption {
	return func(i *Image) {
		i.Width = width
		i.Height = height
	}
}

func (b *Builder) Image(src, alt string, opts ...ImageOption) *Builder {
	block := Image{Src: src, Alt: alt}
	for _, opt := range opts {
		opt(&block)
	}
	return b.Add(block)
}

// VideoOption customises a video block beyond its source.
type VideoOption func(*Video)

// WithPoster sets the still shown before playback.
func WithPoster(poster string) VideoOption {
	return func(v *Video) { v.Poster = poster }
}

// WithVideoCaption attaches a caption to the video.
func WithVideoCaption(caption string) VideoOption {
	return func(v *Video) { v.Caption = caption }
}

func (b *Builder) Video(src string, opts ...VideoOption) *Builder {
	block := Video{Src: src}
	for _, opt := range opts {
		opt(&block)
	}
	return b.Add(block)
}

func (b *Builder) Quote(content, author, source string) *Builder {
	return b.Add(Quote{Content: content, Author: author, Source: source})
}

func (b *Builder) Table(headers []string, rows [][]string, caption string) *Builder {
	copied := make([][]string, 0, len(rows))
	for _, row := range rows {
		copied = append(copied, append([]string(nil), row...))
	}
	return b.Add(Table{
		Headers: append([]string(nil), headers...),
		Rows:    copied,
		Caption: caption,
	})
}

func (b *Builder) Timeline(items []TimelineItem) *Builder {
	return b.Add(Timeline{Items: append([]TimelineItem(nil), items...)})
}

func (b *Builder) Metrics(items []MetricItem) *Builder {
	return b.Add(Metrics{Items: append([]MetricItem(nil), items...)})
}

func (b *Builder) Separator(style SeparatorStyle) *Builder {
	return b.Add(Separator{Style: style})
}

func (b *Builder) TwoColumn(left, right Blocks) *Builder {
	return b.Add(TwoColumn{
		Left:  append(Blocks(nil), left...),
		Right: append(Blocks(nil), right...),
	})
}

func (b *Builder) Tabs(tabs []Tab) *Builder {
	return b.Add(Tabs{Tabs: append([]Tab(nil), tabs...)})
}

func (b *Builder) Accordion(items []AccordionItem) *Builder {
	return b.Add(Accordion{Items: append([]AccordionItem(nil), items...)})
}

// EmbedOption customises an embed block beyond its URL.
type EmbedOption func(*Embed)

// WithEmbedTitle sets the display title for the embedded resource.
func WithEmbedTitle(title string) EmbedOption {
	return func(e *Embed) { e.Title = title }
}

// WithEmbedDescription sets the descriptive text for the embedded resource.
func WithEmbedDescription(description string) EmbedOption {
	return func(e *Embed) { e.Description = description }
}

// WithEmbedProvider names the service hosting the embedded resource.
func WithEmbedProvider(provider string) EmbedOption {
	return func(e *Embed) { e.Provider = provider }
}

func (b *Builder) Embed(url string, opts ...EmbedOption) *Builder {
	block := Embed{URL: url}
	for _, opt := range opts {
		opt(&block)
	}
	return b.Add(block)
}

// Build returns a snapshot of the accumulated sequence. Later builder calls
// do not mutate a previously returned snapshot.
func (b *Builder) Build() Blocks {
	return append(Blocks(nil), b.blocks...)
}

// Clear resets the accumulator so the builder can be reused.
func (b *Builder) Clear() *Builder {
	b.blocks = nil
	return b
}
