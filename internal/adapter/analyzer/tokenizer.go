package analyzer

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"kwx/internal/domain"
	"kwx/internal/logging"
	"kwx/internal/port"
)

// ErrUnsupportedMode is returned for an unknown tokenizer mode name.
var ErrUnsupportedMode = errors.New("unsupported tokenizer mode")

var modes = map[string]tokenizer.TokenizeMode{
	"normal":   tokenizer.Normal,
	"search":   tokenizer.Search,
	"extended": tokenizer.Extended,
}

// Options configures a MorphTokenizer.
type Options struct {
	Mode     string // "normal" (default), "search" or "extended"
	UserDict string // optional kagome user dictionary file
	Log      logging.Logger
}

// MorphTokenizer is a morphological tokenizer backed by kagome and the
// IPADIC dictionary.
type MorphTokenizer struct {
	kagome *tokenizer.Tokenizer
	mode   tokenizer.TokenizeMode
}

// NewMorphTokenizer loads the dictionary and builds a tokenizer. Loading is
// expensive; build once and share the result.
func NewMorphTokenizer(opts Options) (*MorphTokenizer, error) {
	name := strings.ToLower(strings.TrimSpace(opts.Mode))
	if name == "" {
		name = "normal"
	}
	mode, ok := modes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, opts.Mode)
	}

	kopts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if opts.UserDict != "" {
		udict, err := dict.NewUserDict(opts.UserDict)
		if err != nil {
			return nil, fmt.Errorf("failed to load user dictionary %s: %w", opts.UserDict, err)
		}
		kopts = append(kopts, tokenizer.UserDict(udict))
	}

	t, err := tokenizer.New(ipa.Dict(), kopts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}

	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}
	log.Debug("tokenizer built", "dict", "ipa", "mode", name, "user_dict", opts.UserDict)

	return &MorphTokenizer{kagome: t, mode: mode}, nil
}

// Tokenize splits text into morphemes.
func (m *MorphTokenizer) Tokenize(text string) ([]domain.Token, error) {
	if text == "" {
		return nil, nil
	}

	ktoks := m.kagome.Analyze(text, m.mode)
	tokens := make([]domain.Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		tokens = append(tokens, convert(kt))
	}
	return tokens, nil
}

func convert(kt tokenizer.Token) domain.Token {
	tok := domain.Token{Surface: kt.Surface}

	pos := kt.POS()
	if len(pos) > 0 {
		tok.POS = pos[0]
	}
	if len(pos) > 1 {
		tok.POSDetail = pos[1]
	}
	if base, ok := kt.BaseForm(); ok {
		tok.BaseForm = base
	}
	if reading, ok := kt.Reading(); ok {
		tok.Reading = reading
	}
	return tok
}

// LazyTokenizer defers building a tokenizer until first use and builds it
// at most once. Calls to Tokenize are serialized.
type LazyTokenizer struct {
	build func() (port.Tokenizer, error)

	once sync.Once
	tok  port.Tokenizer
	err  error

	mu sync.Mutex
}

// NewLazyTokenizer wraps build. A build error is returned by every call.
func NewLazyTokenizer(build func() (port.Tokenizer, error)) *LazyTokenizer {
	return &LazyTokenizer{build: build}
}

// NewLazyMorphTokenizer is a LazyTokenizer over NewMorphTokenizer(opts).
func NewLazyMorphTokenizer(opts Options) *LazyTokenizer {
	return NewLazyTokenizer(func() (port.Tokenizer, error) {
		return NewMorphTokenizer(opts)
	})
}

// Tokenize builds the underlying tokenizer on first call and delegates.
func (l *LazyTokenizer) Tokenize(text string) ([]domain.Token, error) {
	l.once.Do(func() {
		l.tok, l.err = l.build()
	})
	if l.err != nil {
		return nil, l.err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tok.Tokenize(text)
}
