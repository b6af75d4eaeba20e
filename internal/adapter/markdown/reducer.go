// Package markdown reduces Markdown documents to plain prose.
//
// Reduction is an ordered list of independent regex passes. Code is removed
// before any prose markup is touched so that identifiers inside fences and
// inline spans never reach the keyword extractor.
package markdown

import (
	"regexp"
	"strings"
)

// Pass is one named string-to-string transform of the reduction pipeline.
type Pass struct {
	Name  string
	Apply func(string) string
}

// space matches Unicode whitespace, including the ideographic space U+3000.
// RE2's \s alone is ASCII only.
const space = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

var (
	frontmatterRe   = regexp.MustCompile(`\A---` + space + `*\n(?s:.*?)\n---` + space + `*\n`)
	codeBlockRe     = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe    = regexp.MustCompile("`[^`]+`")
	imageRe         = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	linkRe          = regexp.MustCompile(`\[([^\]]+)\]\(.*?\)`)
	headingRe       = regexp.MustCompile(`(?m)^#{1,6}` + space + `+`)
	emphasisRe      = regexp.MustCompile(`\*\*\*(.*?)\*\*\*|\*\*(.*?)\*\*|\*(.*?)\*|___(.*?)___|__(.*?)__|_(.*?)_`)
	strikeRe        = regexp.MustCompile(`~~(.*?)~~`)
	blockquoteRe    = regexp.MustCompile(`(?m)^>` + space + `?`)
	ruleRe          = regexp.MustCompile(`(?m)^[-*_]{3,}$`)
	unorderedListRe = regexp.MustCompile(`(?m)^` + space + `*[-*+]` + space + `+`)
	orderedListRe   = regexp.MustCompile(`(?m)^` + space + `*\d+\.` + space + `+`)
	htmlTagRe       = regexp.MustCompile(`<[^>]+>`)
	blankLinesRe    = regexp.MustCompile(`\n{2,}`)
)

func remove(re *regexp.Regexp) func(string) string {
	return func(s string) string { return re.ReplaceAllString(s, "") }
}

func replace(re *regexp.Regexp, repl string) func(string) string {
	return func(s string) string { return re.ReplaceAllString(s, repl) }
}

// markupPasses are applied after frontmatter removal. Order matters.
var markupPasses = []Pass{
	{Name: "code_block", Apply: remove(codeBlockRe)},
	{Name: "inline_code", Apply: remove(inlineCodeRe)},
	{Name: "image", Apply: remove(imageRe)},
	{Name: "link", Apply: replace(linkRe, "${1}")},
	{Name: "heading", Apply: remove(headingRe)},
	// RE2 has no backreferences, so each marker width is its own alternative.
	{Name: "emphasis", Apply: replace(emphasisRe, "${1}${2}${3}${4}${5}${6}")},
	{Name: "strikethrough", Apply: replace(strikeRe, "${1}")},
	{Name: "blockquote", Apply: remove(blockquoteRe)},
	{Name: "horizontal_rule", Apply: remove(ruleRe)},
	{Name: "unordered_list", Apply: remove(unorderedListRe)},
	{Name: "ordered_list", Apply: remove(orderedListRe)},
	{Name: "html_tag", Apply: remove(htmlTagRe)},
	{Name: "blank_lines", Apply: replace(blankLinesRe, "\n")},
	{Name: "trim", Apply: strings.TrimSpace},
}

// Passes returns the full reduction pipeline in application order.
func Passes() []Pass {
	passes := make([]Pass, 0, len(markupPasses)+1)
	passes = append(passes, Pass{Name: "frontmatter", Apply: StripFrontmatter})
	return append(passes, markupPasses...)
}

// StripFrontmatter removes a leading "---" delimited block. Only a block
// starting at the first byte is removed, and only once.
func StripFrontmatter(markdown string) string {
	loc := frontmatterRe.FindStringIndex(markdown)
	if loc == nil {
		return markdown
	}
	return markdown[loc[1]:]
}

// Strip removes Markdown syntax but leaves any frontmatter in place.
func Strip(markdown string) string {
	return run(markupPasses, markdown)
}

// Reduce strips frontmatter and Markdown syntax, returning plain text.
func Reduce(markdown string) string {
	return Strip(StripFrontmatter(markdown))
}

func run(passes []Pass, text string) string {
	for _, p := range passes {
		text = p.Apply(text)
	}
	return text
}

// Reducer adapts Reduce to port.Reducer.
type Reducer struct{}

// NewReducer creates a Markdown reducer.
func NewReducer() *Reducer {
	return &Reducer{}
}

// Reduce implements port.Reducer.
func (r *Reducer) Reduce(markdown string) string {
	return Reduce(markdown)
}
