// Package segment wraps morphological analysis for Japanese message
// text. The IPA dictionary is an expensive process-wide resource and
// is loaded at most once; everything after load is read-only.
package segment

import (
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Token is one segmented unit with its top-level part of speech.
// POS is "*" for units the dictionary could not classify.
type Token struct {
	Surface string
	POS     string
}

var contentPOS = map[string]bool{
	"名詞":  true,
	"動詞":  true,
	"形容詞": true,
}

var (
	once    sync.Once
	tk      *tokenizer.Tokenizer
	initErr error
)

func get() (*tokenizer.Tokenizer, error) {
	once.Do(func() {
		tk, initErr = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	})
	return tk, initErr
}

// Tokenize splits text into tokens covering the whole input: the
// concatenation of the returned surfaces is the input text. It never
// fails; if the dictionary cannot be built the text degrades to
// single-rune tokens.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	t, err := get()
	if err != nil {
		return runeFallback(text)
	}

	morphs := t.Tokenize(text)
	tokens := make([]Token, 0, len(morphs))
	cursor := 0
	for _, m := range morphs {
		if m.Surface == "" {
			continue
		}
		// The analyzer skips whitespace between morphemes; emit those
		// gaps as unclassified tokens so surfaces cover the input.
		idx := strings.Index(text[cursor:], m.Surface)
		if idx < 0 {
			continue
		}
		if idx > 0 {
			tokens = append(tokens, Token{Surface: text[cursor : cursor+idx], POS: "*"})
		}
		cursor += idx + len(m.Surface)

		pos := "*"
		if m.Class != tokenizer.UNKNOWN {
			if p := m.POS(); len(p) > 0 {
				pos = p[0]
			}
		}
		tokens = append(tokens, Token{Surface: m.Surface, POS: pos})
	}
	if cursor < len(text) {
		tokens = append(tokens, Token{Surface: text[cursor:], POS: "*"})
	}
	return tokens
}

// ContentWords returns the content-bearing units of text: nouns,
// verbs and adjectives by surface form. Units the dictionary could
// not classify (emoji, URLs, mixed script) are not dropped; they pass
// through as single-character fallbacks so every input character is
// covered by either a classified token or a fallback.
func ContentWords(text string) []string {
	var words []string
	for _, tok := range Tokenize(text) {
		if strings.TrimSpace(tok.Surface) == "" {
			continue
		}
		switch {
		case contentPOS[tok.POS]:
			words = append(words, tok.Surface)
		case tok.POS == "*":
			for _, r := range tok.Surface {
				if strings.TrimSpace(string(r)) != "" {
					words = append(words, string(r))
				}
			}
		}
	}
	return words
}

func runeFallback(text string) []Token {
	tokens := make([]Token, 0, len(text))
	for _, r := range text {
		tokens = append(tokens, Token{Surface: string(r), POS: "*"})
	}
	return tokens
}
