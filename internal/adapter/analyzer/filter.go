package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"kwx/internal/domain"
)

// Reason names the filter stage that rejected a token.
type Reason string

const (
	Kept          Reason = ""
	RejectPOS     Reason = "pos"
	RejectDetail  Reason = "pos_detail"
	RejectSymbol  Reason = "symbol_only"
	RejectSingle  Reason = "single_char"
	RejectStop    Reason = "stop_word"
	RejectForeign Reason = "foreign_stop_word"
)

// IPADIC part-of-speech categories that can carry a keyword.
var keywordPOS = newSet("名詞", "動詞", "形容詞")

// IPADIC sub-categories with little standalone meaning: non-independent,
// pronoun, suffix, number, conjunctive and special.
var excludedDetails = newSet("非自立", "代名詞", "接尾", "数", "接続詞的", "特殊")

// Frequent content words that carry no topic. Particles and auxiliaries are
// already gone by the POS stage.
var stopWords = newSet(
	"する", "いる", "ある", "なる", "れる", "られる",
	"こと", "もの", "ため", "よう",
	"それ", "これ", "ここ", "そこ", "どこ",
	"の", "ん", "さ", "て", "で", "に", "を", "は", "が", "と", "も", "や", "か", "し",
	"等", "的", "性", "化", "用", "方",
	"上", "下", "中", "内", "外", "前", "後", "間", "時",
	"場合", "必要", "可能", "以下", "以上",
	"そう", "どう", "この", "その", "あの", "どの",
)

// English function words the dictionary tags as unknown nouns. Matched
// case-insensitively.
var foreignStopWords = newSet(
	"a", "an", "the", "is", "are", "was", "were", "be",
	"for", "of", "in", "on", "at", "to", "by", "with",
	"and", "or", "not", "no", "it", "its", "as",
)

type set map[string]struct{}

func newSet(words ...string) set {
	s := make(set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s set) has(w string) bool {
	_, ok := s[w]
	return ok
}

// IsKeywordPOS reports whether pos is a content-word category.
func IsKeywordPOS(pos string) bool { return keywordPOS.has(pos) }

// IsExcludedDetail reports whether a POS sub-category disqualifies a token.
func IsExcludedDetail(detail string) bool { return excludedDetails.has(detail) }

// IsStopWord reports whether form is in either stop-word list.
func IsStopWord(form string) bool {
	return stopWords.has(form) || foreignStopWords.has(strings.ToLower(form))
}

// IsSymbolOnly reports whether form has no letter, number or underscore.
func IsSymbolOnly(form string) bool {
	if form == "" {
		return false
	}
	for _, r := range form {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' {
			return false
		}
	}
	return true
}

// IsSingleNonASCII reports whether form is one non-ASCII character, such as
// a stray kana.
func IsSingleNonASCII(form string) bool {
	if utf8.RuneCountInString(form) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(form)
	return r > unicode.MaxASCII
}

// Classify runs a token through the filter stages in order. It returns the
// normalized form and Kept, or the reason of the first stage that rejected
// the token.
func Classify(tok domain.Token) (string, Reason) {
	if !IsKeywordPOS(tok.POS) {
		return "", RejectPOS
	}
	if IsExcludedDetail(tok.POSDetail) {
		return "", RejectDetail
	}

	form := tok.Normalized()
	switch {
	case IsSymbolOnly(form):
		return form, RejectSymbol
	case IsSingleNonASCII(form):
		return form, RejectSingle
	case stopWords.has(form):
		return form, RejectStop
	case foreignStopWords.has(strings.ToLower(form)):
		return form, RejectForeign
	}
	return form, Kept
}
