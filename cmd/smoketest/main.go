// Command smoketest runs the tokenizer and analysis pipeline over a
// directory of .txt files and reports invariant violations.
//
//	smoketest <directory>
//
// For every file it verifies that concatenating word tokens reconstructs
// the input, that every token satisfies the byte-offset invariant, and
// that the analysis report stays within its documented bounds. Intended
// for checking corpus changes against large real-world text collections.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vialandd/text-complexity-analyzer/analysis"
	"github.com/vialandd/text-complexity-analyzer/tokenizer"
)

const (
	maxWorkers   = 4
	expectedArgs = 2
)

type stats struct {
	mu              sync.Mutex
	filesScanned    int
	totalBytes      int64
	reconOK         int
	reconFail       int
	offsetFail      int
	reportFail      int
	tokenTypeCounts map[tokenizer.TokenType]int
	sentences       int
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	var filePaths []string
	err := filepath.WalkDir(os.Args[1], func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	st := &stats{tokenTypeCounts: make(map[tokenizer.TokenType]int)}
	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processFile(p, st)
		}(path)
	}
	wg.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(st)

	if st.reconFail > 0 || st.offsetFail > 0 || st.reportFail > 0 {
		os.Exit(1)
	}
}

func processFile(path string, st *stats) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		return
	}
	text := string(raw)

	local := make(map[tokenizer.TokenType]int)
	tokens := tokenizer.WordTokens(text)

	offsetOK := true
	var sb strings.Builder
	sb.Grow(len(text))
	for _, t := range tokens {
		local[t.Type]++
		sb.WriteString(t.Text)
		if t.Start < 0 || t.End > len(text) || text[t.Start:t.End] != t.Text {
			offsetOK = false
		}
	}
	reconOK := sb.String() == text
	if !reconOK {
		fmt.Fprintf(os.Stderr, "RECONSTRUCTION FAILED: %s\n", path)
	}
	if !offsetOK {
		fmt.Fprintf(os.Stderr, "OFFSET INVARIANT FAILED: %s\n", path)
	}

	sentences := len(tokenizer.SentenceTokens(text))
	reportOK := checkReport(path, analysis.Analyze(text))

	st.mu.Lock()
	defer st.mu.Unlock()
	st.filesScanned++
	st.totalBytes += int64(len(raw))
	st.sentences += sentences
	for typ, n := range local {
		st.tokenTypeCounts[typ] += n
	}
	if reconOK {
		st.reconOK++
	} else {
		st.reconFail++
	}
	if !offsetOK {
		st.offsetFail++
	}
	if !reportOK {
		st.reportFail++
	}
}

// checkReport verifies the report bounds that hold for any input.
func checkReport(path string, r analysis.Report) bool {
	ok := true
	fail := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, "REPORT CHECK FAILED %s: "+format+"\n",
			append([]any{path}, args...)...)
		ok = false
	}

	if r.Reading.FleschProgress < 0 || r.Reading.FleschProgress > 100 {
		fail("flesch progress %v", r.Reading.FleschProgress)
	}
	if r.Reading.AvgJaccard < 0 || r.Reading.AvgJaccard > 1 {
		fail("cohesion %v", r.Reading.AvgJaccard)
	}
	for _, ratio := range []float64{r.Lexical.Diversity, r.Lexical.RareRatio, r.Lexical.ContentRatio} {
		if ratio < 0 || ratio > 1 {
			fail("lexical ratio %v", ratio)
		}
	}
	for i, s := range r.Reading.HighlightedSentences {
		if s.Opacity < 0 || s.Opacity > 0.6 {
			fail("sentence %d opacity %v", i, s.Opacity)
		}
	}
	return ok
}

func printStats(st *stats) {
	fmt.Printf("Files scanned:        %d\n", st.filesScanned)
	fmt.Printf("Bytes processed:      %d\n", st.totalBytes)
	fmt.Printf("Sentences:            %d\n", st.sentences)
	fmt.Printf("Reconstruction OK:    %d\n", st.reconOK)
	fmt.Printf("Reconstruction FAIL:  %d\n", st.reconFail)
	fmt.Printf("Offset FAIL:          %d\n", st.offsetFail)
	fmt.Printf("Report FAIL:          %d\n", st.reportFail)

	types := make([]tokenizer.TokenType, 0, len(st.tokenTypeCounts))
	for typ := range st.tokenTypeCounts {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	fmt.Println("\nToken type counts:")
	for _, typ := range types {
		fmt.Printf("  %-12s %d\n", typ.String(), st.tokenTypeCounts[typ])
	}
}
