package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviations maps common English abbreviations (lowercase, with trailing
// dot) to true. Used to suppress false sentence breaks after abbreviated
// words. Single-letter entries ("e.", "i.", "u.", "a.", "p.") exist to
// support greedy forward matching to multi-part forms such as "e.g.",
// "i.e.", "u.s.", "a.m.", and "p.m.".
var abbreviations = map[string]bool{
	"mr.": true, "mrs.": true, "ms.": true, "dr.": true, "prof.": true,
	"sr.": true, "jr.": true, "st.": true, "rev.": true, "gen.": true,
	"sen.": true, "rep.": true, "gov.": true, "capt.": true, "sgt.": true,
	"col.": true, "lt.": true,
	"vs.": true, "etc.": true, "approx.": true, "dept.": true, "est.": true,
	"fig.": true, "vol.": true, "no.": true, "pp.": true, "ch.": true,
	"inc.": true, "ltd.": true, "co.": true, "corp.": true,
	"jan.": true, "feb.": true, "mar.": true, "apr.": true, "jun.": true,
	"jul.": true, "aug.": true, "sep.": true, "sept.": true, "oct.": true,
	"nov.": true, "dec.": true,
	"mon.": true, "tue.": true, "wed.": true, "thu.": true, "fri.": true,
	"e.": true, "e.g.": true,
	"i.": true, "i.e.": true,
	"u.": true, "u.s.": true, "u.k.": true,
	"a.": true, "a.m.": true,
	"p.": true, "p.m.": true,
}

// sentenceTokens splits s into sentence-level tokens. Whitespace-only
// input yields no tokens; otherwise adjacent tokens cover the entire
// input without gaps or overlaps, so concatenating all Token.Text values
// reconstructs s exactly.
func sentenceTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/40+1)
	sentStart := 0 // byte offset where the current sentence begins

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// Double newline forces a sentence break regardless of punctuation.
		if r == '\n' && i+1 < len(s) && s[i+1] == '\n' {
			// Consume all consecutive newlines as part of the current sentence.
			j := i
			for j < len(s) && s[j] == '\n' {
				j++
			}
			tokens, sentStart = emitSentence(tokens, s, sentStart, j)
			i = j
			continue
		}

		// Check for terminal punctuation: . ? !
		if r == '.' || r == '?' || r == '!' {
			// Handle ellipsis: three consecutive dots or the Unicode ellipsis character.
			if r == '.' && i+2 < len(s) && s[i+1] == '.' && s[i+2] == '.' {
				// Consume all consecutive dots (handles "..." and "....")
				j := i
				for j < len(s) && s[j] == '.' {
					j++
				}
				if followedByWhitespaceUppercase(s, j) {
					tokens, sentStart = emitSentence(tokens, s, sentStart, j)
				}
				i = j
				continue
			}

			// Single dot: check for abbreviation.
			if r == '.' {
				if isAbbreviation(s, i) {
					i += size
					continue
				}
			}

			// Terminal punctuation: consume the entire cluster (e.g. "?!", "???").
			j := i + size
			for j < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[j:])
				if nr == '.' || nr == '?' || nr == '!' {
					j += ns
				} else {
					break
				}
			}

			if followedByWhitespaceUppercase(s, j) {
				tokens, sentStart = emitSentence(tokens, s, sentStart, j)
			}
			i = j
			continue
		}

		// Unicode ellipsis U+2026.
		if r == '…' {
			j := i + size
			if followedByWhitespaceUppercase(s, j) {
				tokens, sentStart = emitSentence(tokens, s, sentStart, j)
			}
			i = j
			continue
		}

		i += size
	}

	// Emit the final sentence if there is remaining text.
	if sentStart < len(s) {
		tokens, _ = emitSentence(tokens, s, sentStart, len(s))
	}

	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// emitSentence appends s[start:end] as a Sentence token and returns the
// tokens and the new sentence start. Whitespace-only spans are not
// sentences: they are folded into the preceding sentence when one exists,
// or left to prefix the next one. This keeps paragraph separators between
// already-split sentences from surfacing as phantom empty sentences.
func emitSentence(tokens []Token, s string, start, end int) ([]Token, int) {
	if strings.TrimSpace(s[start:end]) == "" {
		if n := len(tokens); n > 0 {
			tokens[n-1].Text = s[tokens[n-1].Start:end]
			tokens[n-1].End = end
			return tokens, end
		}
		return tokens, start
	}
	tokens = append(tokens, Token{
		Text:  s[start:end],
		Start: start,
		End:   end,
		Type:  Sentence,
	})
	return tokens, end
}

// followedByWhitespaceUppercase reports whether position pos in s is followed
// by at least one whitespace character and then an uppercase letter, an
// opening quote, or an opening parenthesis that introduces a new sentence.
func followedByWhitespaceUppercase(s string, pos int) bool {
	i := pos
	foundSpace := false
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			foundSpace = true
			i += size
			continue
		}
		if !foundSpace {
			return false
		}
		// Skip over opening quotes so `He left. "Stay," she said.` breaks.
		if r == '"' || r == '“' || r == '(' {
			i += size
			continue
		}
		return unicode.IsUpper(r)
	}
	return false
}

// isAbbreviation checks whether the dot at byte position dotPos is part of
// a known abbreviation rather than a sentence-ending period.
func isAbbreviation(s string, dotPos int) bool {
	// Extract the word immediately before the dot.
	word, _ := wordBefore(s, dotPos)
	if word == "" {
		return false
	}

	lower := strings.ToLower(word)
	candidate := lower + "."

	if !abbreviations[candidate] {
		// Multi-part forms: at the second dot of "e.g." the immediate word
		// is just "g". Retry with the full dotted run before the dot.
		run := dottedRunBefore(s, dotPos)
		if run == "" {
			return false
		}
		candidate = strings.ToLower(run) + "."
		if !abbreviations[candidate] {
			return false
		}
	}

	// Greedy forward matching: check if the abbreviation extends further.
	// For example, after matching "e.", check if what follows forms "e.g.".
	afterDot := dotPos + 1
	return greedyAbbreviation(s, candidate, afterDot)
}

// greedyAbbreviation tries to extend a matched abbreviation prefix forward.
// It returns true once no further extension is possible, confirming the abbreviation.
// For example: prefix="e.", pos points to text after the dot.
// If next chars are "g.", it checks "e.g." — if that is also an abbreviation, recurse.
func greedyAbbreviation(s, prefix string, pos int) bool {
	// Try to read the next word and dot to extend the abbreviation.
	// The next segment must be: word + "." immediately adjacent (no whitespace).
	if pos >= len(s) {
		return true // abbreviation at end of input
	}

	// Read next word characters (letters only, no whitespace allowed).
	j := pos
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if unicode.IsLetter(r) {
			j += size
		} else {
			break
		}
	}

	if j == pos || j >= len(s) || s[j] != '.' {
		return true // no extension possible, current match stands
	}

	// We have a potential extension: prefix + nextWord + "."
	nextWord := strings.ToLower(s[pos:j])
	extended := prefix + nextWord + "."

	if abbreviations[extended] {
		// The extended form is also an abbreviation; recurse past its dot.
		return greedyAbbreviation(s, extended, j+1)
	}

	return true // extension not recognized, current match stands
}

// dottedRunBefore extracts the maximal run of letters and internal dots
// immediately before byte position pos, e.g. "e.g" for the second dot of
// "e.g.". Returns "" if the run does not start with a letter.
func dottedRunBefore(s string, pos int) string {
	i := pos
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if unicode.IsLetter(r) || r == '.' {
			i -= size
		} else {
			break
		}
	}
	run := s[i:pos]
	run = strings.TrimLeft(run, ".")
	if run == "" {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(run)
	if !unicode.IsLetter(first) {
		return ""
	}
	return run
}

// wordBefore extracts the word immediately before byte position pos.
// A word consists of consecutive letters (unicode.IsLetter).
// Returns the word text and the byte offset where the word starts.
// Returns ("", pos) if no word is found.
func wordBefore(s string, pos int) (string, int) {
	// Skip any dots immediately before pos (for multi-part abbreviations like "e.g.").
	i := pos
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if r == '.' {
			i -= size
		} else {
			break
		}
	}

	// Now walk back over letters.
	end := i
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if unicode.IsLetter(r) {
			i -= size
		} else {
			break
		}
	}

	if i == end {
		return "", pos
	}

	return s[i:end], i
}
