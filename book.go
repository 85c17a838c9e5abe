package bookseek

import (
	"strings"
	"unicode/utf8"
)

// MinTitleLen is the minimum trimmed title length for a parsed result.
// Shorter titles are page noise (icons, separators) rather than books.
const MinTitleLen = 3

// Book is the raw record recovered from one search result candidate.
// It is an intermediate shape: produced once per candidate by a Parser,
// consumed by Normalize, and never exposed to callers.
type Book struct {
	// ID is the unique per-item identifier embedded in the detail-page
	// URL. It is the deduplication key within one parse pass.
	ID string

	// Link is the detail-page URL, absolute or root-relative.
	Link string

	// Title is the best-effort display title, never empty for a valid book.
	Title string

	// Optional fields recovered from surrounding text. Empty when no
	// pattern matched.
	Author   string
	Format   string // lower-cased file extension, e.g. "epub"
	Size     string // size token, e.g. "2.5MB"
	Language string
}

// Validate returns an error if the book is not a well-formed raw record.
func (b *Book) Validate() error {
	if b.ID == "" {
		return Errorf(EINVALID, "book identifier required")
	}
	if b.Link == "" {
		return Errorf(EINVALID, "book link required")
	}
	if utf8.RuneCountInString(strings.TrimSpace(b.Title)) < MinTitleLen {
		return Errorf(EINVALID, "book title too short: %q", b.Title)
	}
	return nil
}
