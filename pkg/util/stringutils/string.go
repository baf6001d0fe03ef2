package stringutils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators   = regexp.MustCompile(`[-\s]+`)
)

// Truncate shortens the given string to at most maxLength runes, appending the
// suffix when truncation happens. Strings already within the limit are returned unchanged.
func Truncate(text string, maxLength int, suffix string) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	cut := maxLength - len([]rune(suffix))
	if cut < 0 {
		cut = 0
	}
	return string(runes[:cut]) + suffix
}

// Normalize trims surrounding whitespace and lower-cases the given string.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Slugify converts the given text to a URL-friendly slug.
func Slugify(text string) string {
	if text == "" {
		return ""
	}
	slug := strings.ToLower(text)
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// HighlightSearch wraps every case-insensitive occurrence of searchTerm in text
// with markdown bold markers. Empty inputs are returned unchanged.
func HighlightSearch(text string, searchTerm string) string {
	if text == "" || searchTerm == "" {
		return text
	}
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(searchTerm))
	return pattern.ReplaceAllString(text, "**"+searchTerm+"**")
}
