package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"int32", "int32", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-sensitive
		{"ABC", "abc", 3},

		// Schema type names
		{"int23", "int32", 2},
		{"strng", "string", 1},
		{"ChatPhot", "ChatPhoto", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"ChatPhoto", "ChatPhotos", "ChatType", "Message", "chatPhoto"}

	assert.Equal(t, []string{"ChatPhoto", "chatPhoto"}, Suggest("ChatPhot", candidates, 1, 3))
	assert.Equal(t, []string{"ChatPhoto"}, Suggest("ChatPhot", candidates, 1, 1))
	assert.Empty(t, Suggest("Sticker", candidates, 2, 3))
	assert.Equal(t, []string{"chatPhoto", "ChatPhotos"}, Suggest("ChatPhoto", candidates, 1, 3))
}
