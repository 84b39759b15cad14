package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"Simple title", "Privacy Policy", "privacy-policy"},
		{"Punctuation collapses", "Elementor vs Bricks: Which is Better?", "elementor-vs-bricks-which-is-better"},
		{"Ampersand and plus", "CodeSnippets + AI & Tools", "codesnippets-ai-tools"},
		{"Leading and trailing junk", "  --Hello World!  ", "hello-world"},
		{"Already a slug", "top-10-wordpress-plugins-2024", "top-10-wordpress-plugins-2024"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestNewID(t *testing.T) {
	id := NewID("prod")
	assert.True(t, strings.HasPrefix(id, "prod_"))

	// Rapid minting never repeats an id
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID("rev")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
