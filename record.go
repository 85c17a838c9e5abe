package bookseek

import "time"

// Record is the standardized search result consumed by the downstream
// indexing pipeline. The field set, JSON keys, and default values reproduce
// the downstream contract exactly; changing any of them breaks consumers.
type Record struct {
	Link        string     `json:"link"`
	Title       string     `json:"title"` // composite: book title + author + format
	Description string     `json:"description"`
	GUID        string     `json:"guid"`     // equals Link
	Comments    string     `json:"comments"` // equals Link
	Files       string     `json:"files"`    // always "1"
	Size        string     `json:"size"`     // exact byte count, string-encoded
	Category    string     `json:"category"` // caller-supplied, passed through
	Grabs       string     `json:"grabs"`    // fixed popularity placeholder
	Prefix      string     `json:"prefix"`   // identifies the originating source
	Author      string     `json:"author"`
	BookTitle   string     `json:"book_title"`
	Language    string     `json:"language"`
	Format      string     `json:"format"` // upper-cased, "" when unknown
	PubTS       *time.Time `json:"pub_ts"` // always nil for scraped sources
}
