// Package markdown converts hand-authored micro-markup into ordered content
// block sequences. It recognises a small fixed grammar of block-level forms
// (headings, paragraphs, lists, fenced code with options, callouts,
// timelines, metrics, tables, inline images) with a single forward-scanning
// line state machine. The package also loads frontmatter-annotated documents
// from a filesystem and renders pass-through markup with goldmark.
package markdown
