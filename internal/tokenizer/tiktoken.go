package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TikToken tokenizes text with an OpenAI byte-pair encoding such as
// "cl100k_base". It gives subword features instead of whole words,
// which handles misspellings and rare words more gracefully.
type TikToken struct {
	enc  *tiktoken.Tiktoken
	name string
}

var _ Tokenizer = (*TikToken)(nil)

// NewTikToken loads the named BPE encoding. The vocabulary is fetched
// and cached by the underlying library on first use, so this fails
// without network access unless a cache is already present.
func NewTikToken(encoding string) (*TikToken, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: load encoding %q: %w", encoding, err)
	}
	return &TikToken{enc: enc, name: encoding}, nil
}

// Encoding returns the name of the loaded BPE encoding.
func (t *TikToken) Encoding() string { return t.name }

// Encode returns the BPE token ids for the text.
func (t *TikToken) Encode(text string) []int {
	return t.enc.Encode(text, nil, nil)
}

// Tokenize returns the text's BPE pieces as strings, one per token id,
// by decoding each id on its own. Ids whose bytes split a multi-byte
// rune decode lossily; pipelines that need exact features should feed
// Encode's ids to an id-keyed classifier instead.
func (t *TikToken) Tokenize(text string) ([]string, error) {
	ids := t.enc.Encode(text, nil, nil)
	pieces := make([]string, len(ids))
	for i, id := range ids {
		pieces[i] = t.enc.Decode([]int{id})
	}
	return pieces, nil
}
