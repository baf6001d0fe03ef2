// Package validation holds the field-level checks and sanitizers for todo
// input. All functions are pure and total over any string or absent input.
package validation

import "strings"

const (
	titleMaxLength       = 255
	descriptionMaxLength = 500
)

// ValidateTitle reports whether the title is non-empty and at most 255
// characters after trimming surrounding whitespace.
func ValidateTitle(title string) bool {
	trimmed := strings.TrimSpace(title)
	length := len([]rune(trimmed))
	return length >= 1 && length <= titleMaxLength
}

// ValidateDescription reports whether the description is absent or at most
// 500 characters.
func ValidateDescription(description *string) bool {
	if description == nil {
		return true
	}
	return len([]rune(*description)) <= descriptionMaxLength
}

// SanitizeTitle trims surrounding whitespace. Interior whitespace and casing
// are preserved.
func SanitizeTitle(title string) string {
	return strings.TrimSpace(title)
}

// SanitizeDescription trims surrounding whitespace when present and passes
// absent values through unchanged.
func SanitizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	return &trimmed
}

// NormalizeQuery trims and lower-cases a search term for case-insensitive
// matching.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
