// Command seeddata loads a YAML fixture of categories and documents into
// the SQLite store.
//
//	seeddata --db documents.db --fixture testdata/fixture.yml
package main

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/vialandd/text-complexity-analyzer/internal/config"
	"github.com/vialandd/text-complexity-analyzer/internal/seed"
	"github.com/vialandd/text-complexity-analyzer/internal/store"
)

func main() {
	dbPath := flag.String("db", config.DefaultDBPath, "path to the SQLite database")
	fixturePath := flag.String("fixture", "", "path to the YAML fixture (required)")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: seeddata --fixture <file> [--db <path>]")
		os.Exit(2)
	}

	f, err := seed.ParseFile(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seeddata: %v\n", err)
		os.Exit(1)
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seeddata: open store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	n, err := seed.Apply(context.Background(), st, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seeddata: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("seeded %d documents and %d categories into %s\n",
		n, len(f.Categories), *dbPath)
}
