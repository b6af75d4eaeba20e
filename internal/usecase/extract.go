package usecase

import (
	"fmt"
	"sort"
	"strings"

	"kwx/internal/adapter/analyzer"
	"kwx/internal/domain"
	"kwx/internal/logging"
	"kwx/internal/port"
)

// DefaultMaxKeywords is used when the caller has no preference.
const DefaultMaxKeywords = 30

// KeywordExtractor ranks the content words of a plain text by frequency.
type KeywordExtractor struct {
	tokenizer port.Tokenizer
	log       logging.Logger
}

// NewKeywordExtractor creates an extractor over the given tokenizer.
func NewKeywordExtractor(tokenizer port.Tokenizer, log logging.Logger) *KeywordExtractor {
	if log == nil {
		log = logging.Nop()
	}
	return &KeywordExtractor{
		tokenizer: tokenizer,
		log:       log,
	}
}

// Extract returns at most maxKeywords keywords, most frequent first. Ties
// keep the order in which the words first appear in text.
func (e *KeywordExtractor) Extract(text string, maxKeywords int) ([]domain.Keyword, error) {
	if text == "" || maxKeywords <= 0 {
		return []domain.Keyword{}, nil
	}

	tokens, err := e.tokenizer.Tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	// Insertion-ordered tally: index maps a form to its slot in entries.
	index := make(map[string]int)
	var entries []domain.Keyword
	rejected := make(map[analyzer.Reason]int)

	for _, tok := range tokens {
		form, reason := analyzer.Classify(tok)
		if reason != analyzer.Kept {
			rejected[reason]++
			continue
		}

		if i, ok := index[form]; ok {
			entries[i].Count++
			continue
		}
		index[form] = len(entries)
		entries = append(entries, domain.Keyword{
			Word:    form,
			Reading: tok.NormalizedReading(),
			POS:     tok.POS,
			Count:   1,
		})
	}

	e.log.Debug("keywords tallied",
		"tokens", len(tokens),
		"distinct", len(entries),
		"rejected", rejected,
	)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > maxKeywords {
		entries = entries[:maxKeywords]
	}
	if entries == nil {
		entries = []domain.Keyword{}
	}
	return entries, nil
}

// ExtractText returns the extracted keywords joined by single spaces.
func (e *KeywordExtractor) ExtractText(text string, maxKeywords int) (string, error) {
	keywords, err := e.Extract(text, maxKeywords)
	if err != nil {
		return "", err
	}
	return JoinKeywords(keywords), nil
}

// JoinKeywords renders keywords as a space-separated string in rank order.
func JoinKeywords(keywords []domain.Keyword) string {
	return strings.Join(domain.Words(keywords), " ")
}
