package linkdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already ends with period", "A standard library for JavaScript and Node.js.", "A standard library for JavaScript and Node.js."},
		{"missing period", "The official website of JSDoc", "The official website of JSDoc."},
		{"exclamation mark", "Go!", "Go!"},
		{"question mark", "Why?", "Why?"},
		{"empty", "", "."},
		{"trailing space is not trimmed", "Trailing space ", "Trailing space ."},
		{"trailing newline", "Line\n", "Line\n."},
		{"period inside", "Node.js", "Node.js."},
		{"multibyte last rune", "Café", "Café."},
		{"ellipsis", "Wait...", "Wait..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDescription(tt.in))
		})
	}
}

func TestNormalizeDescriptionIdempotent(t *testing.T) {
	for _, in := range []string{"", "abc", "abc.", "abc!", "abc?", "Café", " "} {
		once := NormalizeDescription(in)
		assert.Equal(t, once, NormalizeDescription(once), "normalizing %q twice", in)
	}
}
