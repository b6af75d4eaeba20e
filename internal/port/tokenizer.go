package port

import "kwx/internal/domain"

// Tokenizer splits text into morphemes in text order.
type Tokenizer interface {
	Tokenize(text string) ([]domain.Token, error)
}
