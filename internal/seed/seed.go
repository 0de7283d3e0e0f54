// Package seed loads document fixtures from YAML and applies them to a
// store, for demos and local development.
package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vialandd/text-complexity-analyzer/internal/store"
)

// Fixture is the root of a seed file.
type Fixture struct {
	Categories []string   `yaml:"categories"`
	Documents  []Document `yaml:"documents"`
}

// Document is one seeded document.
type Document struct {
	Title    string   `yaml:"title"`
	Content  string   `yaml:"content"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
}

// Parse decodes a YAML fixture and validates it.
func Parse(raw []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	for i, d := range f.Documents {
		if strings.TrimSpace(d.Title) == "" {
			return nil, fmt.Errorf("fixture document %d: title is required", i)
		}
		if strings.TrimSpace(d.Content) == "" {
			return nil, fmt.Errorf("fixture document %d (%s): content is required", i, d.Title)
		}
	}
	return &f, nil
}

// ParseFile reads and parses a fixture file.
func ParseFile(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(raw)
}

// Apply writes the fixture's categories and documents into the store.
// Returns the number of documents created.
func Apply(ctx context.Context, st *store.Store, f *Fixture) (int, error) {
	for _, name := range f.Categories {
		if _, err := st.CreateCategory(ctx, name); err != nil {
			return 0, fmt.Errorf("seed category %q: %w", name, err)
		}
	}

	created := 0
	for _, d := range f.Documents {
		if _, err := st.CreateDocument(ctx, d.Title, d.Content, d.Category, d.Tags); err != nil {
			return created, fmt.Errorf("seed document %q: %w", d.Title, err)
		}
		created++
	}
	return created, nil
}
