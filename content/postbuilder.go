package content

import "strings"

// PostBuilder composes post metadata with a built block sequence. Build
// fails when any of id, title, date, tags, or content is absent; the id
// must be positive, matching the posts metadata rules. Every other field
// falls back to a default.
type PostBuilder struct {
	id           int
	hasID        bool
	title        string
	excerpt      string
	date         string
	tags         []string
	readTime     string
	heroGradient string
	reactions    int
	slug         string
	author       Author
	cover        string
	summary      string
	updated      string
	content      Blocks
	hasContent   bool
}

// NewPostBuilder returns an empty post builder.
func NewPostBuilder() *PostBuilder {
	return &PostBuilder{}
}

func (b *PostBuilder) ID(id int) *PostBuilder {
	b.id = id
	b.hasID = true
	return b
}

func (b *PostBuilder) Title(title string) *PostBuilder {
	b.title = title
	return b
}

func (b *PostBuilder) Excerpt(excerpt string) *PostBuilder {
	b.excerpt = excerpt
	return b
}

func (b *PostBuilder) Date(date string) *PostBuilder {
	b.date = date
	return b
}

func (b *PostBuilder) Tags(tags []string) *PostBuilder {
	b.tags = append([]string(nil), tags...)
	return b
}

func (b *PostBuilder) ReadTime(readTime string) *PostBuilder {
	b.readTime = readTime
	return b
}

func (b *PostBuilder) HeroGradient(gradient string) *PostBuilder {
	b.heroGradient = gradient
	return b
}

func (b *PostBuilder) Reactions(reactions int) *PostBuilder {
	b.reactions = reactions
	return b
}

func (b *PostBuilder) Slug(slug string) *PostBuilder {
	b.slug = slug
	return b
}

func (b *PostBuilder) Author(author Author) *PostBuilder {
	b.author = author
	return b
}

func (b *PostBuilder) Cover(cover string) *PostBuilder {
	b.cover = cover
	return b
}

func (b *PostBuilder) Summary(summary string) *PostBuilder {
	b.summary = summary
	return b
}

func (b *PostBuilder) Updated(updated string) *PostBuilder {
	b.updated = updated
	return b
}

func (b *PostBuilder) Content(blocks Blocks) *PostBuilder {
	b.content = append(Blocks(nil), blocks...)
	b.hasContent = true
	return b
}

// Build assembles the post. A *MissingFieldsError names every absent
// required field rather than stopping at the first.
func (b *PostBuilder) Build() (Post, error) {
	var missing []string
	if !b.hasID || b.id <= 0 {
		missing = append(missing, "id")
	}
	if strings.TrimSpace(b.title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(b.date) == "" {
		missing = append(missing, "date")
	}
	if len(b.tags) == 0 {
		missing = append(missing, "tags")
	}
	if !b.hasContent || len(b.content) == 0 {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return Post{}, &MissingFieldsError{Fields: missing}
	}

	readTime := b.readTime
	if readTime == "" {
		readTime = DefaultReadTime
	}
	gradient := b.heroGradient
	if gradient == "" {
		gradient = DefaultHeroGradient
	}

	return Post{
		ID:           b.id,
		Title:        b.title,
		Excerpt:      b.excerpt,
		Date:         b.date,
		Tags:         append([]string(nil), b.tags...),
		Reactions:    b.reactions,
		ReadTime:     readTime,
		HeroGradient: gradient,
		Slug:         b.slug,
		Author:       b.author,
		Cover:        b.cover,
		Summary:      b.summary,
		Updated:      b.updated,
		Content:      append(Blocks(nil), b.content...),
	}, nil
}
