package interfaces

import "time"

// Document represents a Markdown file with parsed metadata and content. The
// struct is shared between the interfaces package and internal implementations
// so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a digest of the original file content (typically SHA-256)
	// so import workflows can detect changes without re-reading unchanged files.
	Checksum []byte
}

// FrontMatter models post metadata extracted from Markdown files. The Custom
// map keeps unrecognised keys available for domain-specific values.
type FrontMatter struct {
	ID           int            `yaml:"id" json:"id"`
	Title        string         `yaml:"title" json:"title"`
	Excerpt      string         `yaml:"excerpt" json:"excerpt"`
	Date         string         `yaml:"date" json:"date"`
	Tags         []string       `yaml:"tags" json:"tags"`
	Reactions    int            `yaml:"reactions" json:"reactions"`
	ReadTime     string         `yaml:"read_time" json:"readTime"`
	HeroGradient string         `yaml:"hero_gradient" json:"heroGradient"`
	Slug         string         `yaml:"slug" json:"slug"`
	AuthorName   string         `yaml:"author" json:"author"`
	AuthorURL    string         `yaml:"author_url" json:"authorUrl"`
	Cover        string         `yaml:"cover" json:"cover"`
	Summary      string         `yaml:"summary" json:"summary"`
	Updated      string         `yaml:"updated" json:"updated"`
	Draft        bool           `yaml:"draft" json:"draft"`
	Custom       map[string]any `yaml:",inline" json:"custom"`
	Raw          map[string]any `yaml:"-" json:"raw"`
}
