// Package tokenizer splits English text into words, sentences, and
// structured tokens with byte offsets.
//
// The package provides two API layers:
//
//   - Structured: WordTokens and SentenceTokens return []Token with byte
//     offsets and type metadata. The invariant s[t.Start:t.End] == t.Text
//     holds for every token, and concatenating all token texts reconstructs
//     the original string.
//
//   - Convenience: Words, Tokens, AlphaWords, and Sentences return []string
//     or filtered []Token for common use cases where offsets and types are
//     not needed.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - Sentence splitting does not track quote or parenthesis nesting.
//     Terminal punctuation inside quotes may cause false sentence breaks.
//   - Bare URLs without a protocol prefix (www.example.com) are not detected.
//     Only http:// and https:// prefixed URLs are recognized.
//   - The abbreviation list includes a few single-letter entries (e., i.,
//     a., p., u.) needed for multi-part abbreviations such as "e.g." and
//     "U.S.". A lone capital initial followed by a period can therefore
//     suppress a legitimate sentence break.
package tokenizer

import (
	"fmt"
	"strings"
	"unicode"
)

// wordsPerTokenEstimate is the estimated ratio of total tokens to word tokens,
// used to pre-allocate the words slice in the Words convenience function.
const wordsPerTokenEstimate = 2

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Alphabetic word (any script), including hyphens and apostrophes
	Number                       // Digits, with decimal point or thousand-separator commas
	Punctuation                  // Punctuation marks: . , ! ? : ; ( ) etc.
	Space                        // Contiguous whitespace (spaces, tabs, newlines)
	Symbol                       // Everything else: emoji, CJK, mathematical symbols, etc.
	URL                          // http:// or https:// prefixed sequences
	Email                        // user@domain.tld sequences
	Sentence                     // Used only by SentenceTokens — a full sentence
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	case URL:
		return "URL"
	case Email:
		return "Email"
	case Sentence:
		return "Sentence"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    // The token text
	Start int       // Byte offset in the original string (inclusive)
	End   int       // Byte offset in the original string (exclusive)
	Type  TokenType // Classification of the token
}

// String returns a debug representation, e.g. Word("hello")[0:5].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// IsAlpha reports whether the token is a Word consisting entirely of letters.
// Hyphenated and apostrophe-joined words (well-known, don't) are Word tokens
// but are not alphabetic in this sense.
func (t Token) IsAlpha() bool {
	if t.Type != Word {
		return false
	}
	for _, r := range t.Text {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// WordTokens splits text into all tokens with metadata.
// Returns Word, Number, Punctuation, Space, Symbol, URL, and Email tokens.
// The byte offset invariant s[t.Start:t.End] == t.Text holds for every token.
// Concatenating all token texts reconstructs the original string.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return wordTokens(s)
}

// Tokens returns all non-whitespace tokens from the text.
// This is the token multiset used for word counting: words, numbers,
// punctuation marks, URLs, emails, and symbols all count as one token each.
func Tokens(s string) []Token {
	if s == "" {
		return nil
	}
	all := wordTokens(s)
	tokens := make([]Token, 0, len(all))
	for _, t := range all {
		if t.Type != Space {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Words returns only Word-type token texts from the text.
// Does not include Number, Punctuation, URL, Email, or other types.
// For full control, use WordTokens and filter by Type.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := wordTokens(s)
	words := make([]string, 0, len(tokens)/wordsPerTokenEstimate)
	for _, t := range tokens {
		if t.Type == Word {
			words = append(words, t.Text)
		}
	}
	return words
}

// AlphaWords returns the lowercase forms of all alphabetic tokens — Word
// tokens consisting entirely of letters. This is the token set used by the
// lexical, n-gram, and rarity stages.
func AlphaWords(s string) []string {
	if s == "" {
		return nil
	}
	tokens := wordTokens(s)
	words := make([]string, 0, len(tokens)/wordsPerTokenEstimate)
	for _, t := range tokens {
		if t.IsAlpha() {
			words = append(words, strings.ToLower(t.Text))
		}
	}
	return words
}

// Detokenize reassembles token texts into readable text: a single space
// between tokens, except that closing punctuation attaches to the token
// before it. Spacing of the original text is not recovered; callers that
// need the exact source should slice it with token offsets instead.
func Detokenize(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if t.Type == Space {
			continue
		}
		if i > 0 && !attachesLeft(t.Text) && b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

func attachesLeft(text string) bool {
	switch text {
	case ".", ",", "!", "?", ":", ";", ")", "]", "}", "...", "…":
		return true
	}
	return false
}

// SentenceTokens splits text into sentence-level tokens with byte offsets.
// Each returned Token has Type=Sentence.
// Sentence boundaries are determined by terminal punctuation (. ? !) followed
// by whitespace and an uppercase letter, or by double newlines.
// A built-in abbreviation list prevents false breaks after common abbreviations.
func SentenceTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return sentenceTokens(s)
}

// Sentences returns sentence strings from the text.
func Sentences(s string) []string {
	if s == "" {
		return nil
	}
	tokens := sentenceTokens(s)
	sentences := make([]string, len(tokens))
	for i, t := range tokens {
		sentences[i] = t.Text
	}
	return sentences
}
