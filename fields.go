package bookseek

import (
	"regexp"
	"strings"
)

// Fields holds the optional metadata recovered from a candidate's context
// text. Zero values mean the corresponding pattern did not match.
type Fields struct {
	Author   string
	Format   string
	Size     string // raw size token, e.g. "2.5MB"; see ParseSize
	Language string
}

// languages enumerates the recognized language names in canonical casing.
var languages = []string{
	"English", "Spanish", "French", "German", "Italian",
	"Portuguese", "Dutch", "Russian", "Japanese", "Chinese",
}

var (
	authorRE    = regexp.MustCompile(`(?i)\bby\s+([^|,\n\r]+)`)
	formatRE    = regexp.MustCompile(`(?i)\b(epub|pdf|mobi|azw3|djvu|txt)\b`)
	fieldSizeRE = regexp.MustCompile(`(?i)([\d.]+)\s*(MB|KB|GB|B)\b`)
	languageRE  = regexp.MustCompile(`(?i)\b(` + strings.Join(languages, "|") + `)\b`)
)

// ExtractFields applies every field rule to the context text. The rules are
// independent: each scans the whole text separately, so their order does
// not matter.
func ExtractFields(text string) Fields {
	return Fields{
		Author:   MatchAuthor(text),
		Format:   MatchFormat(text),
		Size:     MatchSize(text),
		Language: MatchLanguage(text),
	}
}

// MatchAuthor returns the text following a "by " token, up to the first
// pipe, comma, or newline, trimmed of surrounding spaces and hyphens.
// Returns "" when no author is found.
func MatchAuthor(text string) string {
	m := authorRE.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.Trim(m[1], " -")
}

// MatchFormat returns the first recognized ebook file format, lower-cased.
// Returns "" when no format is found.
func MatchFormat(text string) string {
	m := formatRE.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

// MatchSize returns the first size token with the number and unit
// concatenated (e.g. "2.5 MB" becomes "2.5MB"). Returns "" when no size is
// found.
func MatchSize(text string) string {
	m := fieldSizeRE.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1] + m[2]
}

// MatchLanguage returns the first recognized language name in its canonical
// casing regardless of how the page spells it. Returns "" when no language
// is found.
func MatchLanguage(text string) string {
	m := languageRE.FindString(text)
	if m == "" {
		return ""
	}
	for _, l := range languages {
		if strings.EqualFold(m, l) {
			return l
		}
	}
	return ""
}
