package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMarkdownFeatureRequired = errors.New("devlog config: markdown feature must be enabled to configure markdown")
var ErrMarkdownContentDirRequired = errors.New("devlog config: markdown content directory is required when markdown is enabled")
var ErrLoggingProviderRequired = errors.New("devlog config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("devlog config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("devlog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("devlog config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the devlog module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Markdown MarkdownConfig
	Logging  LoggingConfig
	Features Features
}

// MarkdownConfig captures filesystem and parser behaviour for Markdown ingestion.
type MarkdownConfig struct {
	Enabled    bool
	ContentDir string
	Pattern    string
	Recursive  bool
	Strict     bool
	Renderer   RendererConfig
}

// RendererConfig mirrors markdown.RenderOptions for runtime configuration.
type RendererConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Markdown bool
	Logger   bool
}

// DefaultConfig returns opinionated defaults for embedding hosts.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Markdown: MarkdownConfig{
			ContentDir: "content",
			Pattern:    "*.md",
			Recursive:  true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{},
	}
}

func (cfg Config) Validate() error {
	if cfg.Markdown.Enabled {
		if !cfg.Features.Markdown {
			return ErrMarkdownFeatureRequired
		}
		if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
			return ErrMarkdownContentDirRequired
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
