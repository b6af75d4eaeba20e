package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMeta(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantTags  []string
	}{
		{
			name:      "yaml frontmatter",
			input:     "---\ntitle: OAuth入門\ntags:\n  - auth\n  - ' security '\n---\n本文",
			wantTitle: "OAuth入門",
			wantTags:  []string{"auth", "security"},
		},
		{
			name:      "no frontmatter",
			input:     "# 見出し\n本文",
			wantTitle: "",
		},
		{
			name:      "blank tags dropped",
			input:     "---\ntitle: '  x  '\ntags: ['', ' ']\n---\n",
			wantTitle: "x",
		},
		{
			name:  "invalid yaml ignored",
			input: "---\ntitle: [unterminated\n---\nbody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := ParseMeta(tt.input)
			assert.Equal(t, tt.wantTitle, meta.Title)
			assert.Equal(t, tt.wantTags, meta.Tags)
		})
	}
}
