// Command textcomplexity analyzes a text file (or stdin) and prints a
// readability and complexity report.
//
//	textcomplexity essay.txt
//	cat essay.txt | textcomplexity --json
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/vialandd/text-complexity-analyzer/analysis"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("textcomplexity", flag.ContinueOnError)
	flags.SetOutput(stderr)
	asJSON := flags.BoolP("json", "j", false, "emit the full report as JSON")
	topFrequent := flags.IntP("top-frequent", "t", 5, "how many repeated words to mark")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: textcomplexity [flags] [file]")
		fmt.Fprintln(stderr, "Reads from stdin when no file is given.")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	text, err := readInput(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "textcomplexity: %v\n", err)
		return 1
	}

	analyzer := analysis.New(analysis.WithTopFrequent(*topFrequent))
	report := analyzer.Analyze(text)

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(stderr, "textcomplexity: encode report: %v\n", err)
			return 1
		}
		return 0
	}

	printSummary(stdout, report)
	return 0
}

func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("expected at most one file argument, got %d", len(args))
	}
	if len(args) == 1 && args[0] != "-" {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(raw), nil
}

func printSummary(w io.Writer, r analysis.Report) {
	fmt.Fprintf(w, "Words:            %d\n", r.General.WordCount)
	fmt.Fprintf(w, "Sentences:        %d\n", r.General.SentenceCount)
	fmt.Fprintf(w, "Avg consonants:   %.2f\n", r.General.AvgConsonants)
	fmt.Fprintf(w, "Flesch score:     %.1f (progress %.1f/100)\n",
		r.Reading.FleschScore, r.Reading.FleschProgress)
	fmt.Fprintf(w, "Cohesion:         %.3f\n", r.Reading.AvgJaccard)
	fmt.Fprintf(w, "Diversity:        %.2f\n", r.Lexical.Diversity)
	fmt.Fprintf(w, "Rare-word ratio:  %.2f\n", r.Lexical.RareRatio)
	fmt.Fprintf(w, "Content ratio:    %.2f\n", r.Lexical.ContentRatio)
	fmt.Fprintf(w, "Sentiment:        %+.4f compound (pos %.3f / neg %.3f)\n",
		r.General.Sentiment.Compound, r.General.Sentiment.Pos, r.General.Sentiment.Neg)
	fmt.Fprintf(w, "Rarity:           %.1f%% common, %.1f%% intermediate, %.1f%% advanced\n",
		r.Advanced.RarityStats.Common, r.Advanced.RarityStats.Intermediate,
		r.Advanced.RarityStats.Advanced)

	if len(r.Advanced.Bigrams) > 0 {
		fmt.Fprintf(w, "Repeated bigrams: %s\n", strings.Join(r.Advanced.Bigrams, ", "))
	}
	if len(r.Advanced.Trigrams) > 0 {
		fmt.Fprintf(w, "Repeated trigrams: %s\n", strings.Join(r.Advanced.Trigrams, ", "))
	}
	if len(r.Advanced.Entities) > 0 {
		fmt.Fprintf(w, "Entities:         %s\n", strings.Join(r.Advanced.Entities, ", "))
	}

	hard := 0
	for _, s := range r.Reading.HighlightedSentences {
		if s.Opacity > 0 {
			hard++
		}
	}
	fmt.Fprintf(w, "Difficult sentences: %d of %d\n",
		hard, len(r.Reading.HighlightedSentences))
}
