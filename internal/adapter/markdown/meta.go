package markdown

import (
	"strings"

	"github.com/adrg/frontmatter"

	"kwx/internal/domain"
)

// ParseMeta reads the title and tags from a document's frontmatter.
// Documents without frontmatter, or with frontmatter that does not parse,
// yield an empty DocumentMeta.
func ParseMeta(markdown string) domain.DocumentMeta {
	var meta domain.DocumentMeta
	if _, err := frontmatter.Parse(strings.NewReader(markdown), &meta); err != nil {
		return domain.DocumentMeta{}
	}

	meta.Title = strings.TrimSpace(meta.Title)
	tags := meta.Tags[:0]
	for _, tag := range meta.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		tags = nil
	}
	meta.Tags = tags
	return meta
}
