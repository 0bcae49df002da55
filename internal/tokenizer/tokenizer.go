// Package tokenizer turns raw text into token sequences for the
// classifier.
package tokenizer

import (
	"fmt"
	"strings"
	"unicode"
)

// Tokenizer converts text into a sequence of string tokens.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// Words is the simplest Tokenizer: it lower-cases the text and splits
// on every run of non-letter, non-digit runes. It never fails.
type Words struct{}

var _ Tokenizer = (*Words)(nil)

// NewWords returns a word-splitting tokenizer.
func NewWords() *Words { return &Words{} }

// Tokenize splits text into lower-cased words. Punctuation and other
// symbols separate tokens and are dropped.
func (*Words) Tokenize(text string) ([]string, error) {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return words, nil
}

// TokenizeAll applies tk to every text and collects the results.
func TokenizeAll(tk Tokenizer, texts []string) ([][]string, error) {
	docs := make([][]string, len(texts))
	for i, text := range texts {
		toks, err := tk.Tokenize(text)
		if err != nil {
			return nil, fmt.Errorf("tokenizer: document %d: %w", i, err)
		}
		docs[i] = toks
	}
	return docs, nil
}
