package bookseek

import (
	"fmt"
	"strings"
)

// Fixed values required by the downstream record schema.
const (
	// RecordFiles is the per-record file count; ebook results are always
	// single files.
	RecordFiles = "1"

	// RecordGrabs is the popularity placeholder; scraped pages expose no
	// real grab counts.
	RecordGrabs = "100"

	// unknownValue substitutes for optional fields the page did not yield.
	unknownValue = "Unknown"

	// defaultSizeToken coerces to "0" bytes when no size was extracted.
	defaultSizeToken = "0MB"
)

// Normalize maps one raw book into the standardized record schema. Optional
// fields receive their documented defaults, the size token is coerced to an
// exact byte count, and the composite display fields are assembled. The
// category and prefix are passed through from the caller unchanged.
func Normalize(book Book, category, prefix string) (Record, error) {
	if err := book.Validate(); err != nil {
		return Record{}, err
	}

	author := book.Author
	if author == "" {
		author = unknownValue
	}
	language := book.Language
	if language == "" {
		language = unknownValue
	}
	format := strings.ToUpper(book.Format)

	title := fmt.Sprintf("%s - %s", book.Title, author)
	if format != "" {
		title += fmt.Sprintf(" (%s)", format)
	}

	parts := []string{book.Title, author, language}
	if format != "" {
		parts = append(parts, format)
	}

	sizeToken := book.Size
	if sizeToken == "" {
		sizeToken = defaultSizeToken
	}

	return Record{
		Link:        book.Link,
		Title:       title,
		Description: strings.Join(parts, " | "),
		GUID:        book.Link,
		Comments:    book.Link,
		Files:       RecordFiles,
		Size:        ParseSize(sizeToken),
		Category:    category,
		Grabs:       RecordGrabs,
		Prefix:      prefix,
		Author:      author,
		BookTitle:   book.Title,
		Language:    language,
		Format:      format,
	}, nil
}
