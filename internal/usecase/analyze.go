package usecase

import (
	"kwx/internal/adapter/markdown"
	"kwx/internal/domain"
	"kwx/internal/port"
)

// AnalyzeUseCase turns a Markdown document into ranked keywords.
type AnalyzeUseCase struct {
	reducer   port.Reducer
	extractor *KeywordExtractor
}

// NewAnalyzeUseCase creates a new analyze use case.
func NewAnalyzeUseCase(reducer port.Reducer, extractor *KeywordExtractor) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		reducer:   reducer,
		extractor: extractor,
	}
}

// Analyze reduces the document to plain text, extracts keywords and attaches
// the frontmatter title and tags.
func (u *AnalyzeUseCase) Analyze(doc string, maxKeywords int) (*domain.Analysis, error) {
	keywords, err := u.extractor.Extract(u.reducer.Reduce(doc), maxKeywords)
	if err != nil {
		return nil, err
	}

	meta := markdown.ParseMeta(doc)
	return &domain.Analysis{
		Title:        meta.Title,
		Tags:         meta.Tags,
		Keywords:     keywords,
		KeywordsText: JoinKeywords(keywords),
	}, nil
}

// AnalyzeText is Analyze rendered as a space-separated keyword string.
func (u *AnalyzeUseCase) AnalyzeText(doc string, maxKeywords int) (string, error) {
	return u.extractor.ExtractText(u.reducer.Reduce(doc), maxKeywords)
}

// Strip returns the plain text the extractor would see.
func (u *AnalyzeUseCase) Strip(doc string) string {
	return u.reducer.Reduce(doc)
}
