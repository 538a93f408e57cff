package articles

import (
	"regexp"
	"strings"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
	slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// MakeSlug turns a title into a URL-safe slug.
// Example: "Best Gaming Mice 2025" -> "best-gaming-mice-2025"
func MakeSlug(title string) string {
	base := strings.ToLower(strings.TrimSpace(title))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "article"
	}
	return base
}

// IsValidSlug backs the "slugfmt" binding validator.
func IsValidSlug(slug string) bool {
	return slugShape.MatchString(slug)
}
