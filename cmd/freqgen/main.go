// Command freqgen regenerates data/freq.txt from a raw frequency list in
// "word count" format (one pair per line, most frequent first or not —
// the counts decide).
//
//	freqgen -input corpus-counts.txt -output data/freq.txt -limit 5000
//
// Output: one lowercase word per line, descending count order; the line
// position becomes the word's rank. Commit the regenerated file.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	flag "github.com/spf13/pflag"
)

const (
	defaultOutput  = "data/freq.txt"
	defaultLimit   = 5000
	scannerBufSize = 1 << 20 // 1 MB
	minWordRunes   = 1
)

func main() {
	inputPath := flag.String("input", "", "path to the raw \"word count\" list (required)")
	outputPath := flag.String("output", defaultOutput, "output path for freq.txt")
	limit := flag.Int("limit", defaultLimit, "maximum number of ranked words to keep")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: freqgen -input <file> [-output <file>] [-limit <n>]")
		os.Exit(2)
	}

	counts, err := readCounts(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "freqgen: %v\n", err)
		os.Exit(1)
	}
	if len(counts) == 0 {
		fmt.Fprintln(os.Stderr, "freqgen: no usable entries in input")
		os.Exit(1)
	}

	ranked := rank(counts, *limit)
	if err := writeList(*outputPath, ranked); err != nil {
		fmt.Fprintf(os.Stderr, "freqgen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d ranked words to %s\n", len(ranked), *outputPath)
}

// readCounts parses "word count" lines, merging duplicate words.
func readCounts(path string) (map[string]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	counts := make(map[string]int64, 4096)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, scannerBufSize), scannerBufSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		word := strings.ToLower(fields[0])
		if !isAlphaWord(word) {
			continue
		}
		n, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || n <= 0 {
			continue
		}
		counts[word] += n
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	return counts, nil
}

// rank orders words by descending count, ties alphabetical, and keeps at
// most limit entries.
func rank(counts map[string]int64, limit int) []string {
	type wc struct {
		word  string
		count int64
	}
	all := make([]wc, 0, len(counts))
	for w, c := range counts {
		all = append(all, wc{w, c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].word < all[j].word
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	words := make([]string, len(all))
	for i, e := range all {
		words[i] = e.word
	}
	return words
}

func writeList(path string, words []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# Reference word frequency list. One word per line, most frequent")
	fmt.Fprintln(w, "# first; the line position is the word's rank. Generated by freqgen.")
	for _, word := range words {
		fmt.Fprintln(w, word)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return f.Close()
}

func isAlphaWord(w string) bool {
	if len([]rune(w)) < minWordRunes {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
