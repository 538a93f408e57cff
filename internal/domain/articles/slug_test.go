package articles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	cases := map[string]string{
		"Best Gaming Mice 2025":  "best-gaming-mice-2025",
		"  Trimmed   Spaces  ":   "trimmed-spaces",
		"Már with! weird? chars": "mr-with-weird-chars",
		"---":                    "article",
		"":                       "article",
	}
	for title, want := range cases {
		assert.Equal(t, want, MakeSlug(title), "title %q", title)
	}
}

func TestIsValidSlug(t *testing.T) {
	for _, slug := range []string{"a", "abc-def", "best-gaming-mice-2025", "x1"} {
		assert.True(t, IsValidSlug(slug), slug)
	}
	for _, slug := range []string{"", "-abc", "abc-", "a--b", "Not A Slug", "UPPER", "under_score"} {
		assert.False(t, IsValidSlug(slug), slug)
	}
}

func TestMakeSlugOutputIsValid(t *testing.T) {
	for _, title := range []string{"Hello World", "  odd -- spacing  ", "กขค", "Review: RTX 5090!?"} {
		assert.True(t, IsValidSlug(MakeSlug(title)), "title %q -> %q", title, MakeSlug(title))
	}
}
