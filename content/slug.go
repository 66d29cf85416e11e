package content

import (
	"strings"

	"github.com/goliatone/go-slug"
)

// SlugNormalizer exposes the slug normalizer interface.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the default slug normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// NormalizeSlug applies the default slug normalization rules.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

// CanonicalSlug normalizes a slug for use as a collection key. Values the
// normalizer rejects fall back to a trimmed lowercase form so lookups with
// the original string still resolve.
func CanonicalSlug(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	normalized, err := slug.Normalize(trimmed)
	if err != nil || normalized == "" {
		return strings.ToLower(trimmed)
	}
	return normalized
}
