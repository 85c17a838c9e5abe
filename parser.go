package bookseek

// Parser extracts raw book records from a search-results page.
type Parser interface {
	// Parse walks the document and returns raw records in document order,
	// deduplicated by identifier and bounded by the parser's result cap.
	// It fails only when the HTML cannot be parsed at all; problems with
	// individual candidates are contained (logged and skipped).
	Parse(html string) ([]Book, error)
}
