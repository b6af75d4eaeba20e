package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFrontmatter(t *testing.T) {
	t.Run("removes leading block", func(t *testing.T) {
		md := "---\ntitle: Test\npublished: true\n---\n\n# Content"
		got := StripFrontmatter(md)
		assert.NotContains(t, got, "title:")
		assert.Contains(t, got, "# Content")
	})

	t.Run("no frontmatter", func(t *testing.T) {
		md := "# Just content"
		assert.Equal(t, md, StripFrontmatter(md))
	})

	t.Run("block not at start is kept", func(t *testing.T) {
		md := "intro\n---\ntitle: Test\n---\nbody"
		assert.Equal(t, md, StripFrontmatter(md))
	})

	t.Run("only the first block is removed", func(t *testing.T) {
		md := "---\na: 1\n---\nbody\n---\nb: 2\n---\nrest"
		got := StripFrontmatter(md)
		assert.Equal(t, "body\n---\nb: 2\n---\nrest", got)
	})

	t.Run("leading whitespace disables stripping", func(t *testing.T) {
		md := "\n---\na: 1\n---\nbody"
		assert.Equal(t, md, StripFrontmatter(md))
	})
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "code block",
			input:    "テキスト\n```python\nprint('hello')\n```\n続き",
			contains: []string{"テキスト", "続き"},
			excludes: []string{"print", "```"},
		},
		{
			name:     "inline code",
			input:    "`console.log` を使う",
			contains: []string{"を使う"},
			excludes: []string{"`", "console"},
		},
		{
			name:     "link keeps text",
			input:    "[公式ドキュメント](https://example.com)を参照",
			contains: []string{"公式ドキュメント", "を参照"},
			excludes: []string{"https://example.com", "[", "]("},
		},
		{
			name:     "image removed with alt text",
			input:    "前 ![スクショ](./images/test.png) 後",
			contains: []string{"前", "後"},
			excludes: []string{"test.png", "スクショ"},
		},
		{
			name:     "bold and italic",
			input:    "これは**太字**と*斜体*と___強調___です",
			contains: []string{"太字", "斜体", "強調"},
			excludes: []string{"*", "_"},
		},
		{
			name:     "strikethrough",
			input:    "~~削除~~された",
			contains: []string{"削除された"},
			excludes: []string{"~~"},
		},
		{
			name:     "blockquote",
			input:    "> 引用文\n>詰めた引用",
			contains: []string{"引用文", "詰めた引用"},
			excludes: []string{">"},
		},
		{
			name:     "list markers",
			input:    "- 項目1\n* 項目2\n+ 項目3\n1. 番号付き\n  10. 二桁",
			contains: []string{"項目1", "項目2", "項目3", "番号付き", "二桁"},
			excludes: []string{"- ", "* ", "+ ", "1. ", "10. "},
		},
		{
			name:     "html tags",
			input:    "<div class=\"note\">注意</div><br/>",
			contains: []string{"注意"},
			excludes: []string{"<", ">", "div"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strip(tt.input)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestStrip_FullWidthSpaceAfterMarkers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"heading", "#\u3000見出し\n本文", "見出し\n本文"},
		{"unordered list", "-\u3000項目", "項目"},
		{"ordered list", "1.\u3000項目", "項目"},
		{"indented list item", "\u3000\u3000- 項目", "項目"},
		{"blockquote", ">\u3000引用", "引用"},
		{"no-break space", "##\u00a0見出し", "見出し"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.input))
		})
	}
}

func TestStripFrontmatter_FullWidthSpaceAfterDelimiter(t *testing.T) {
	md := "---\u3000\ntitle: t\n---\u3000\n本文"
	assert.Equal(t, "本文", StripFrontmatter(md))
}

func TestStrip_HeadingMarkers(t *testing.T) {
	got := Strip("## 認証フロー")
	assert.Equal(t, "認証フロー", got)

	got = Strip("####### seven")
	assert.Contains(t, got, "#", "more than six markers is not a heading")
}

func TestStrip_HorizontalRule(t *testing.T) {
	got := Strip("上\n\n---\n\n下")
	assert.Equal(t, "上\n下", got)
}

func TestStrip_CollapsesBlankLinesAndTrims(t *testing.T) {
	got := Strip("\n\n  一行目\n\n\n\n二行目  \n\n")
	assert.Equal(t, "一行目\n二行目", got)
}

func TestStrip_MalformedMarkupPassesThrough(t *testing.T) {
	got := Strip("[閉じていないリンク(https://example.com")
	assert.Equal(t, "[閉じていないリンク(https://example.com", got)
}

func TestReduce(t *testing.T) {
	md := strings.Join([]string{
		"---",
		"title: 認証入門",
		"tags: [auth]",
		"---",
		"",
		"# OAuth 認証",
		"",
		"**PKCE** を使った[フロー](https://example.com/flow)の解説。",
		"",
		"```go",
		"func secretIdentifier() {}",
		"```",
	}, "\n")

	got := Reduce(md)
	assert.Equal(t, "OAuth 認証\nPKCE を使ったフローの解説。", got)
}

func TestReduce_IdempotentOnPlainText(t *testing.T) {
	inputs := []string{
		"# 見出し\n\n本文の**強調**と`code`。\n\n- 項目\n- 項目2",
		"---\ntitle: x\n---\nbody [link](u) ![img](p)",
		"plain text only",
		"",
	}
	for _, in := range inputs {
		once := Reduce(in)
		twice := Reduce(once)
		assert.Equal(t, strings.Join(strings.Fields(once), " "), strings.Join(strings.Fields(twice), " "), "input %q", in)
	}
}

func TestPasses_Order(t *testing.T) {
	passes := Passes()
	require.NotEmpty(t, passes)

	names := make([]string, len(passes))
	for i, p := range passes {
		names[i] = p.Name
	}
	assert.Equal(t, []string{
		"frontmatter", "code_block", "inline_code", "image", "link", "heading",
		"emphasis", "strikethrough", "blockquote", "horizontal_rule",
		"unordered_list", "ordered_list", "html_tag", "blank_lines", "trim",
	}, names)

	// Running the passes by hand matches Reduce.
	md := "---\na: b\n---\n# t\n`x` **y**"
	text := md
	for _, p := range passes {
		text = p.Apply(text)
	}
	assert.Equal(t, Reduce(md), text)
}

func TestReducer_ImplementsReduce(t *testing.T) {
	r := NewReducer()
	assert.Equal(t, "見出し", r.Reduce("# 見出し"))
}
