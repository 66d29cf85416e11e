// Package devlog assembles the content engine: a markdown parser that emits
// typed content blocks, builders for hand-assembled posts, and an in-memory
// post collection with JSON import/export.
package devlog

import (
	"os"

	"github.com/calliri/go-devlog/internal/logging"
	"github.com/calliri/go-devlog/internal/logging/gologger"
	"github.com/calliri/go-devlog/markdown"
	"github.com/calliri/go-devlog/pkg/interfaces"
	"github.com/calliri/go-devlog/posts"
)

// PostService exports the post collection contract for consumers of the devlog package.
type PostService = posts.Service

// Module represents the top level devlog runtime façade.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	logger   interfaces.Logger
	parser   *markdown.Parser
	renderer *markdown.Renderer
	loader   *markdown.Loader
	posts    posts.Service
}

// New constructs a devlog module using the provided configuration.
func New(cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}

	if cfg.Features.Logger {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	m.logger = logging.ModuleLogger(m.provider, "devlog")
	m.parser = markdown.New(markdown.Options{Strict: cfg.Markdown.Strict})
	m.renderer = markdown.NewRenderer(markdown.RenderOptions{
		Extensions: cfg.Markdown.Renderer.Extensions,
		HardWraps:  cfg.Markdown.Renderer.HardWraps,
		SafeMode:   cfg.Markdown.Renderer.SafeMode,
	})

	if cfg.Markdown.Enabled {
		m.loader = markdown.NewLoader(os.DirFS(cfg.Markdown.ContentDir), markdown.LoaderConfig{
			BasePath:  cfg.Markdown.ContentDir,
			Pattern:   cfg.Markdown.Pattern,
			Recursive: cfg.Markdown.Recursive,
		})
	}

	m.posts = posts.NewService(posts.Config{
		Logger: logging.PostsLogger(m.provider),
		Parser: m.parser,
	})

	return m, nil
}

// Posts returns the configured post collection service.
func (m *Module) Posts() PostService {
	return m.posts
}

// Parser returns the markdown block parser.
func (m *Module) Parser() *markdown.Parser {
	return m.parser
}

// Renderer returns the markdown HTML renderer.
func (m *Module) Renderer() *markdown.Renderer {
	return m.renderer
}

// Loader returns the markdown document loader, or nil when markdown ingestion
// is disabled.
func (m *Module) Loader() *markdown.Loader {
	return m.loader
}

// Logger returns the module root logger.
func (m *Module) Logger() interfaces.Logger {
	return m.logger
}

// LoggerProvider exposes the configured provider so hosts can scope their own
// module loggers. Returns nil when the logger feature is disabled.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.provider
}
