package domain

// NoValue is the placeholder a dictionary uses for a missing feature
// (no base form, no reading).
const NoValue = "*"

// Token is a single morpheme produced by a morphological tokenizer.
type Token struct {
	Surface   string
	BaseForm  string
	POS       string
	POSDetail string
	Reading   string
}

// Normalized returns the aggregation key for the token: its base form when
// the dictionary knows one, the surface text otherwise.
func (t Token) Normalized() string {
	if t.BaseForm == "" || t.BaseForm == NoValue {
		return t.Surface
	}
	return t.BaseForm
}

// NormalizedReading returns the reading, or "" when the dictionary has none.
func (t Token) NormalizedReading() string {
	if t.Reading == NoValue {
		return ""
	}
	return t.Reading
}

// Keyword is one ranked entry of an extraction result.
type Keyword struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
	POS     string `json:"pos"`
	Count   int    `json:"count"`
}

// DocumentMeta holds the frontmatter fields relevant to tagging.
type DocumentMeta struct {
	Title string   `yaml:"title" toml:"title" json:"title"`
	Tags  []string `yaml:"tags" toml:"tags" json:"tags"`
}

// Analysis is the structured result of analysing one Markdown document.
type Analysis struct {
	Title        string    `json:"title,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Keywords     []Keyword `json:"keywords"`
	KeywordsText string    `json:"keywords_text"`
}

// Words returns the keyword words in rank order.
func Words(keywords []Keyword) []string {
	words := make([]string, len(keywords))
	for i, kw := range keywords {
		words[i] = kw.Word
	}
	return words
}
