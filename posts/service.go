package posts

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/calliri/go-devlog/content"
	"github.com/calliri/go-devlog/internal/identity"
	"github.com/calliri/go-devlog/internal/logging"
	"github.com/calliri/go-devlog/markdown"
	"github.com/calliri/go-devlog/pkg/interfaces"
)

// Service manages the in-memory post collection keyed by slug.
type Service interface {
	Add(ctx context.Context, slug string, post content.Post) (content.Post, error)
	Get(ctx context.Context, slug string) (content.Post, error)
	List(ctx context.Context) []Summary
	ByTag(ctx context.Context, tag string) []Summary
	Search(ctx context.Context, query string) []Summary
	Tags(ctx context.Context) []string
	AddFromMarkdown(ctx context.Context, slug string, meta Metadata, body string) (content.Post, error)
	ValidatePost(ctx context.Context, slug string) (content.ValidationResult, error)
	ExportJSON(ctx context.Context, slug string) ([]byte, error)
	ImportJSON(ctx context.Context, slug string, data []byte) (content.Post, error)
	Export(ctx context.Context) (ExportEnvelope, error)
}

// Config wires the service dependencies.
type Config struct {
	Logger interfaces.Logger
	Parser *markdown.Parser
}

type service struct {
	mu     sync.RWMutex
	store  map[string]content.Post
	parser *markdown.Parser
	logger interfaces.Logger
	now    func() time.Time
}

// NewService builds a post service with an empty collection.
func NewService(cfg Config) Service {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	parser := cfg.Parser
	if parser == nil {
		parser = markdown.New(markdown.Options{})
	}
	return &service{
		store:  make(map[string]content.Post),
		parser: parser,
		logger: logger,
		now:    time.Now,
	}
}

func (s *service) Add(_ context.Context, slug string, post content.Post) (content.Post, error) {
	key := content.CanonicalSlug(slug)
	if key == "" {
		key = content.CanonicalSlug(post.Slug)
	}
	if key == "" {
		return content.Post{}, ErrSlugRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store[key]; ok {
		return content.Post{}, ErrPostExists
	}

	post.Slug = key
	stored := clonePost(post)
	s.store[key] = stored

	s.logger.Debug("post added", "slug", key, "post_id", post.ID, "blocks", len(post.Content))
	return clonePost(stored), nil
}

func (s *service) Get(_ context.Context, slug string) (content.Post, error) {
	key := content.CanonicalSlug(slug)

	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.store[key]
	if !ok {
		return content.Post{}, &NotFoundError{Slug: slug}
	}
	return clonePost(post), nil
}

func (s *service) List(_ context.Context) []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]Summary, 0, len(s.store))
	for slug, post := range s.store {
		summaries = append(summaries, summarize(slug, post))
	}
	sortSummaries(summaries)
	return summaries
}

func (s *service) ByTag(_ context.Context, tag string) []Summary {
	want := strings.ToLower(strings.TrimSpace(tag))

	s.mu.RLock()
	defer s.mu.RUnlock()

	var summaries []Summary
	for slug, post := range s.store {
		for _, candidate := range post.Tags {
			if strings.ToLower(candidate) == want {
				summaries = append(summaries, summarize(slug, post))
				break
			}
		}
	}
	sortSummaries(summaries)
	return summaries
}

func (s *service) Search(_ context.Context, query string) []Summary {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var summaries []Summary
	for slug, post := range s.store {
		if matchesQuery(post, needle) {
			summaries = append(summaries, summarize(slug, post))
		}
	}
	sortSummaries(summaries)
	return summaries
}

func (s *service) Tags(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]struct{}{}
	var tags []string
	for _, post := range s.store {
		for _, tag := range post.Tags {
			key := strings.TrimSpace(tag)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			tags = append(tags, key)
		}
	}
	sort.Strings(tags)
	return tags
}

func (s *service) AddFromMarkdown(ctx context.Context, slug string, meta Metadata, body string) (content.Post, error) {
	if err := meta.Validate(); err != nil {
		return content.Post{}, goerrors.Wrap(err, goerrors.CategoryValidation, "post metadata invalid").
			WithTextCode("POST_METADATA_INVALID")
	}

	blocks, diags := s.parser.Parse(body)
	for _, diag := range diags {
		s.logger.Warn("markdown diagnostic", "slug", slug, "line", diag.Line, "message", diag.Message)
	}

	builder := content.NewPostBuilder().
		ID(meta.ID).
		Title(meta.Title).
		Date(meta.Date).
		Tags(meta.Tags).
		Content(blocks)

	if meta.Excerpt != "" {
		builder = builder.Excerpt(meta.Excerpt)
	}
	if meta.Reactions != 0 {
		builder = builder.Reactions(meta.Reactions)
	}
	if meta.ReadTime != "" {
		builder = builder.ReadTime(meta.ReadTime)
	}
	if meta.HeroGradient != "" {
		builder = builder.HeroGradient(meta.HeroGradient)
	}
	if meta.Slug != "" {
		builder = builder.Slug(meta.Slug)
	}
	if meta.Author.Name != "" || meta.Author.URL != "" {
		builder = builder.Author(meta.Author)
	}
	if meta.Cover != "" {
		builder = builder.Cover(meta.Cover)
	}
	if meta.Summary != "" {
		builder = builder.Summary(meta.Summary)
	}
	if meta.Updated != "" {
		builder = builder.Updated(meta.Updated)
	}

	post, err := builder.Build()
	if err != nil {
		return content.Post{}, goerrors.Wrap(err, goerrors.CategoryValidation, "post assembly failed").
			WithTextCode("POST_BUILD_FAILED")
	}

	return s.Add(ctx, slug, post)
}

func (s *service) ValidatePost(_ context.Context, slug string) (content.ValidationResult, error) {
	key := content.CanonicalSlug(slug)

	s.mu.RLock()
	post, ok := s.store[key]
	s.mu.RUnlock()

	if !ok {
		return content.ValidationResult{}, &NotFoundError{Slug: slug}
	}

	result := content.ValidateContent(post.Content)

	meta := metadataOf(post)
	if err := meta.Validate(); err != nil {
		result.IsValid = false
		result.Errors = append(result.Errors, err.Error())
	}
	return result, nil
}

func (s *service) ExportJSON(_ context.Context, slug string) ([]byte, error) {
	key := content.CanonicalSlug(slug)

	s.mu.RLock()
	post, ok := s.store[key]
	s.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{Slug: slug}
	}
	return json.MarshalIndent(post, "", "  ")
}

func (s *service) ImportJSON(ctx context.Context, slug string, data []byte) (content.Post, error) {
	if err := validatePostDocument(data); err != nil {
		return content.Post{}, err
	}

	var post content.Post
	if err := json.Unmarshal(data, &post); err != nil {
		return content.Post{}, goerrors.Wrap(err, goerrors.CategoryValidation, "decode post document").
			WithTextCode("POST_DECODE_FAILED")
	}

	return s.Add(ctx, slug, post)
}

func (s *service) Export(_ context.Context) (ExportEnvelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.store))
	out := make(map[string]content.Post, len(s.store))
	for slug, post := range s.store {
		ids = append(ids, post.ID)
		out[slug] = clonePost(post)
	}
	sort.Ints(ids)

	return ExportEnvelope{
		ID:          identity.ExportUUID(ids),
		GeneratedAt: s.now().UTC(),
		Posts:       out,
	}, nil
}

func summarize(slug string, post content.Post) Summary {
	return Summary{
		Slug:      slug,
		ID:        post.ID,
		Title:     post.Title,
		Excerpt:   post.Excerpt,
		Date:      post.Date,
		Tags:      append([]string(nil), post.Tags...),
		ReadTime:  post.ReadTime,
		Reactions: post.Reactions,
	}
}

func metadataOf(post content.Post) Metadata {
	return Metadata{
		ID:        post.ID,
		Title:     post.Title,
		Excerpt:   post.Excerpt,
		Date:      post.Date,
		Tags:      post.Tags,
		Reactions: post.Reactions,
	}
}

func matchesQuery(post content.Post, needle string) bool {
	if strings.Contains(strings.ToLower(post.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(post.Excerpt), needle) {
		return true
	}
	for _, tag := range post.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// sortSummaries orders by date descending, then slug ascending for stability.
func sortSummaries(summaries []Summary) {
	sort.Slice(summaries, func(i, j int) bool {
		di, errI := time.Parse(dateLayout, summaries[i].Date)
		dj, errJ := time.Parse(dateLayout, summaries[j].Date)
		if errI == nil && errJ == nil && !di.Equal(dj) {
			return di.After(dj)
		}
		if summaries[i].Date != summaries[j].Date {
			return summaries[i].Date > summaries[j].Date
		}
		return summaries[i].Slug < summaries[j].Slug
	})
}

func clonePost(post content.Post) content.Post {
	copied := post
	copied.Tags = append([]string(nil), post.Tags...)
	copied.Content = append(content.Blocks(nil), post.Content...)
	return copied
}
