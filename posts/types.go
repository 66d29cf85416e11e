package posts

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/calliri/go-devlog/content"
)

// dateLayout is the wire format for post dates.
const dateLayout = "2006-01-02"

// Metadata carries the post fields supplied alongside a markdown body when
// registering a post. Content is parsed separately.
type Metadata struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	Excerpt      string         `json:"excerpt,omitempty"`
	Date         string         `json:"date"`
	Tags         []string       `json:"tags"`
	Reactions    int            `json:"reactions,omitempty"`
	ReadTime     string         `json:"readTime,omitempty"`
	HeroGradient string         `json:"heroGradient,omitempty"`
	Slug         string         `json:"slug,omitempty"`
	Author       content.Author `json:"author,omitempty"`
	Cover        string         `json:"cover,omitempty"`
	Summary      string         `json:"summary,omitempty"`
	Updated      string         `json:"updated,omitempty"`
}

// Validate ensures the metadata carries the required post fields.
func (m Metadata) Validate() error {
	errs := validation.Errors{}
	if m.ID <= 0 {
		errs["id"] = validation.NewError("devlog.posts.id_required", "id must be a positive integer")
	}
	if strings.TrimSpace(m.Title) == "" {
		errs["title"] = validation.NewError("devlog.posts.title_required", "title is required")
	}
	if strings.TrimSpace(m.Date) == "" {
		errs["date"] = validation.NewError("devlog.posts.date_required", "date is required")
	} else if err := validation.Validate(m.Date, validation.Date(dateLayout)); err != nil {
		errs["date"] = validation.NewError("devlog.posts.date_invalid", "date must use the YYYY-MM-DD format")
	}
	if len(m.Tags) == 0 {
		errs["tags"] = validation.NewError("devlog.posts.tags_required", "at least one tag is required")
	}
	if m.Reactions < 0 {
		errs["reactions"] = validation.NewError("devlog.posts.reactions_invalid", "reactions cannot be negative")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Summary is the listing projection of a stored post.
type Summary struct {
	Slug      string   `json:"slug"`
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt,omitempty"`
	Date      string   `json:"date"`
	Tags      []string `json:"tags"`
	ReadTime  string   `json:"readTime"`
	Reactions int      `json:"reactions"`
}

// ExportEnvelope wraps a full collection export. ID is derived from the
// exported post IDs so identical collections produce identical envelopes.
type ExportEnvelope struct {
	ID          uuid.UUID               `json:"id"`
	GeneratedAt time.Time               `json:"generatedAt"`
	Posts       map[string]content.Post `json:"posts"`
}
