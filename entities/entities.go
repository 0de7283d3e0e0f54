// Package entities extracts named entities from English text using
// capitalization chunking and gazetteer lookup.
//
// The package recognizes three entity types: PERSON, GPE (geopolitical
// entity), and ORGANIZATION. Each entity is returned with byte offsets
// satisfying the invariant s[e.Start:e.End] == e.Text.
//
// Two API layers are provided:
//
//   - Structured: Recognize returns []Entity with offsets and type.
//   - Convenience: Formatted returns deduplicated "Text (LABEL)" strings
//     sorted alphabetically, the shape report consumers expect.
//
// Recognition is best-effort. Chunks are runs of capitalized words
// (lowercase connectors such as "of" are allowed inside a run), labeled by
// gazetteer: known given names mark PERSON, known places mark GPE, and a
// corporate suffix marks ORGANIZATION. An unresolved multi-word chunk
// defaults to PERSON; an unresolved single capitalized word is discarded
// because sentence-initial capitalization makes it indistinguishable from
// an ordinary word.
//
// Known limitations (v1.0):
//
//   - The gazetteers are small. Uncommon names attached to no honorific
//     surface only in multi-word form ("Jay Gatsby" yes, "Gatsby" alone no).
//   - Nested entities are not produced; the widest chunk wins.
//
// All functions are safe for concurrent use by multiple goroutines.
package entities

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/vialandd/text-complexity-analyzer/data"
	"github.com/vialandd/text-complexity-analyzer/tokenizer"
)

// EntityType classifies a recognized entity.
type EntityType int

const (
	Person       EntityType = iota // Personal name
	GPE                            // Geopolitical entity: country, city, region
	Organization                   // Company, institution, agency
)

// entityTypeNames maps EntityType values to their report labels.
var entityTypeNames = [...]string{
	Person:       "PERSON",
	GPE:          "GPE",
	Organization: "ORGANIZATION",
}

// String returns the report label of the entity type, e.g. "PERSON".
func (t EntityType) String() string {
	if int(t) >= 0 && int(t) < len(entityTypeNames) {
		return entityTypeNames[t]
	}
	return fmt.Sprintf("EntityType(%d)", int(t))
}

// Entity represents a recognized named entity with its position in the
// source text.
type Entity struct {
	Text  string     `json:"text"`
	Start int        `json:"start"`
	End   int        `json:"end"`
	Type  EntityType `json:"type"`
}

// String returns a debug representation, e.g. PERSON("Jay Gatsby")[4:14].
func (e Entity) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", e.Type, e.Text, e.Start, e.End)
}

// maxInputBytes is the maximum input length Recognize will process.
// Inputs exceeding this are returned with no results.
const maxInputBytes = 1 << 20 // 1 MiB

var (
	givenNames = loadSet(data.GivenNames)
	places     = loadSet(data.Places)
)

// honorifics mark the following chunk as a PERSON.
var honorifics = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "miss": true, "dr": true,
	"prof": true, "professor": true, "sir": true, "lady": true, "lord": true,
	"president": true, "senator": true, "captain": true, "general": true,
	"king": true, "queen": true, "prince": true, "princess": true,
	"saint": true, "st": true,
}

// orgSuffixes mark a chunk ending in one of these as an ORGANIZATION.
var orgSuffixes = map[string]bool{
	"inc": true, "corp": true, "corporation": true, "ltd": true,
	"llc": true, "co": true, "company": true, "group": true,
	"university": true, "institute": true, "college": true, "school": true,
	"bank": true, "agency": true, "association": true, "committee": true,
	"foundation": true, "society": true, "council": true, "press": true,
	"times": true, "post": true,
}

// connectors may appear lowercase inside a capitalized run without
// breaking the chunk ("University of Chicago").
var connectors = map[string]bool{
	"of": true, "the": true, "and": true, "for": true,
	"de": true, "da": true, "van": true, "von": true,
}

// Recognize extracts named entities from the input string, sorted by
// Start offset.
func Recognize(s string) []Entity {
	if s == "" || len(s) > maxInputBytes {
		return nil
	}
	return recognize(s)
}

// Formatted returns deduplicated "Text (LABEL)" strings for the entities
// in s, sorted alphabetically.
func Formatted(s string) []string {
	ents := Recognize(s)
	if len(ents) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(ents))
	out := make([]string, 0, len(ents))
	for _, e := range ents {
		f := fmt.Sprintf("%s (%s)", e.Text, e.Type)
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func recognize(s string) []Entity {
	tokens := tokenizer.Tokens(s)

	var out []Entity
	i := 0
	for i < len(tokens) {
		if !isCapitalizedWord(tokens[i]) {
			i++
			continue
		}

		// Extend the chunk over capitalized words and inner connectors.
		// A blank line between tokens always ends the chunk.
		start := i
		end := i + 1
		for end < len(tokens) {
			t := tokens[end]
			if paragraphGap(s, tokens[end-1], t) {
				break
			}
			if isCapitalizedWord(t) {
				end++
				continue
			}
			if t.Type == tokenizer.Word && connectors[strings.ToLower(t.Text)] &&
				end+1 < len(tokens) && isCapitalizedWord(tokens[end+1]) &&
				!paragraphGap(s, t, tokens[end+1]) {
				end += 2
				continue
			}
			// The period of an abbreviated honorific ("Mr. Smith") does
			// not break the chunk.
			if t.Type == tokenizer.Punctuation && t.Text == "." &&
				honorifics[strings.ToLower(tokens[end-1].Text)] &&
				end+1 < len(tokens) && isCapitalizedWord(tokens[end+1]) &&
				!paragraphGap(s, t, tokens[end+1]) {
				end += 2
				continue
			}
			break
		}

		if e, ok := label(s, tokens, start, end); ok {
			out = append(out, e)
		}
		i = end
	}
	return out
}

// label classifies the chunk tokens[start:end), returning false when the
// chunk should be discarded.
func label(s string, tokens []tokenizer.Token, start, end int) (Entity, bool) {
	first := strings.ToLower(tokens[start].Text)

	// An honorific heads a PERSON chunk; the honorific (and its period)
	// is dropped from the entity text.
	if honorifics[first] && end-start > 1 {
		nameStart := start + 1
		for nameStart < end && !tokens[nameStart].IsAlpha() {
			nameStart++
		}
		if nameStart < end {
			return makeEntity(s, tokens[nameStart], tokens[end-1], Person), true
		}
		return Entity{}, false
	}

	last := strings.ToLower(tokens[end-1].Text)
	if orgSuffixes[last] && end-start > 1 {
		return makeEntity(s, tokens[start], tokens[end-1], Organization), true
	}

	// Multi-word gazetteer entries match against the whole chunk phrase.
	phrase := strings.ToLower(s[tokens[start].Start:tokens[end-1].End])
	if places[phrase] {
		return makeEntity(s, tokens[start], tokens[end-1], GPE), true
	}

	for i := start; i < end; i++ {
		w := strings.ToLower(tokens[i].Text)
		if givenNames[w] {
			return makeEntity(s, tokens[start], tokens[end-1], Person), true
		}
	}
	for i := start; i < end; i++ {
		w := strings.ToLower(tokens[i].Text)
		if places[w] {
			return makeEntity(s, tokens[start], tokens[end-1], GPE), true
		}
	}

	if end-start > 1 {
		return makeEntity(s, tokens[start], tokens[end-1], Person), true
	}
	return Entity{}, false
}

func makeEntity(s string, first, last tokenizer.Token, t EntityType) Entity {
	return Entity{
		Text:  s[first.Start:last.End],
		Start: first.Start,
		End:   last.End,
		Type:  t,
	}
}

// paragraphGap reports whether the source text between two tokens
// contains a blank line.
func paragraphGap(s string, prev, next tokenizer.Token) bool {
	return strings.Count(s[prev.End:next.Start], "\n") >= 2
}

// isCapitalizedWord reports whether the token is an alphabetic word whose
// first rune is uppercase.
func isCapitalizedWord(t tokenizer.Token) bool {
	if !t.IsAlpha() {
		return false
	}
	for _, r := range t.Text {
		return unicode.IsUpper(r)
	}
	return false
}

func loadSet(raw string) map[string]bool {
	set := make(map[string]bool, 256)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = true
	}
	return set
}
