package content

// DefaultHeroGradient is applied when a post does not select its own banner
// gradient.
const DefaultHeroGradient = "from-blue-500 via-purple-500 to-cyan-500"

// DefaultReadTime is used when neither the author nor the stats pipeline
// supplied a read time.
const DefaultReadTime = "5 min"

// Author identifies the writer of a post.
type Author struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Post is a document's metadata plus its ordered body. ID is the internal
// numeric identifier; Slug is the external stable one. Uniqueness of both is
// enforced by the collection layer, not here.
type Post struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Excerpt      string   `json:"excerpt"`
	Date         string   `json:"date"`
	Tags         []string `json:"tags"`
	Reactions    int      `json:"reactions"`
	ReadTime     string   `json:"readTime"`
	HeroGradient string   `json:"heroGradient"`
	Slug         string   `json:"slug"`
	Author       Author   `json:"author"`
	Cover        string   `json:"cover,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Updated      string   `json:"updated,omitempty"`
	Content      Blocks   `json:"content"`
}
