// Copyright 2025 Slate ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tokenizer turns raw text into token sequences for the bayes
// classifier.
//
// Two tokenizers are provided: Words, a lower-casing word splitter
// with no dependencies, and TikToken, a byte-pair encoder backed by
// OpenAI vocabularies for subword features.
package tokenizer

import (
	"github.com/slate-ml/slate/internal/tokenizer"
)

// Tokenizer converts text into a sequence of string tokens.
type Tokenizer = tokenizer.Tokenizer

// Words lower-cases text and splits it on non-alphanumeric runes.
type Words = tokenizer.Words

// TikToken tokenizes with an OpenAI byte-pair encoding.
type TikToken = tokenizer.TikToken

// NewWords returns a word-splitting tokenizer.
//
// Example:
//
//	toks, _ := tokenizer.NewWords().Tokenize("Hello, World!")
//	// toks = ["hello", "world"]
func NewWords() *Words {
	return tokenizer.NewWords()
}

// NewTikToken loads the named BPE encoding, for example "cl100k_base".
// The vocabulary is downloaded and cached on first use.
func NewTikToken(encoding string) (*TikToken, error) {
	return tokenizer.NewTikToken(encoding)
}

// TokenizeAll applies tk to every text and collects the results.
func TokenizeAll(tk Tokenizer, texts []string) ([][]string, error) {
	return tokenizer.TokenizeAll(tk, texts)
}
