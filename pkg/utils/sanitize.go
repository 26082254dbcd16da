package utils

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeString trims whitespace and escapes HTML entities.
func SanitizeString(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

// SanitizeEmail lowercases, trims and strips tags and control characters.
func SanitizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	email = htmlTagPattern.ReplaceAllString(email, "")

	var result strings.Builder
	for _, r := range email {
		if unicode.IsPrint(r) && !unicode.IsSpace(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

func IsValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	return re.MatchString(strings.ToLower(strings.TrimSpace(email)))
}
