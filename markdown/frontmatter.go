package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/calliri/go-devlog/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured frontmatter, the Markdown
// body without delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content, and modification time. BodyHTML is intentionally left empty so
// callers can render lazily.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	frontmatter, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		FilePath:     path,
		FrontMatter:  frontmatter,
		Body:         body,
		LastModified: modified,
	}, nil
}

type frontMatterEnvelope struct {
	ID           int            `yaml:"id"`
	Title        string         `yaml:"title"`
	Excerpt      string         `yaml:"excerpt"`
	Date         string         `yaml:"date"`
	Tags         []string       `yaml:"tags"`
	Reactions    int            `yaml:"reactions"`
	ReadTime     string         `yaml:"read_time"`
	HeroGradient string         `yaml:"hero_gradient"`
	Slug         string         `yaml:"slug"`
	AuthorName   string         `yaml:"author"`
	AuthorURL    string         `yaml:"author_url"`
	Cover        string         `yaml:"cover"`
	Summary      string         `yaml:"summary"`
	Updated      string         `yaml:"updated"`
	Draft        bool           `yaml:"draft"`
	Custom       map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+12)
	for key, value := range env.Custom {
		raw[key] = value
	}

	if env.ID != 0 {
		raw["id"] = env.ID
	}
	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Excerpt != "" {
		raw["excerpt"] = env.Excerpt
	}
	if env.Date != "" {
		raw["date"] = env.Date
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if env.Reactions != 0 {
		raw["reactions"] = env.Reactions
	}
	if env.ReadTime != "" {
		raw["read_time"] = env.ReadTime
	}
	if env.HeroGradient != "" {
		raw["hero_gradient"] = env.HeroGradient
	}
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if env.AuthorName != "" {
		raw["author"] = env.AuthorName
	}
	if env.AuthorURL != "" {
		raw["author_url"] = env.AuthorURL
	}
	if env.Cover != "" {
		raw["cover"] = env.Cover
	}
	if env.Summary != "" {
		raw["summary"] = env.Summary
	}
	if env.Updated != "" {
		raw["updated"] = env.Updated
	}
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		ID:           env.ID,
		Title:        env.Title,
		Excerpt:      env.Excerpt,
		Date:         env.Date,
		Tags:         append([]string(nil), env.Tags...),
		Reactions:    env.Reactions,
		ReadTime:     env.ReadTime,
		HeroGradient: env.HeroGradient,
		Slug:         env.Slug,
		AuthorName:   env.AuthorName,
		AuthorURL:    env.AuthorURL,
		Cover:        env.Cover,
		Summary:      env.Summary,
		Updated:      env.Updated,
		Draft:        env.Draft,
		Custom:       cloneMap(env.Custom),
		Raw:          raw,
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
