package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/vialandd/text-complexity-analyzer/internal/store"
)

const fixtureYAML = `
categories:
  - fiction
  - essays
documents:
  - title: Opening Lines
    content: "In my younger and more vulnerable years my father gave me some advice."
    category: fiction
    tags: [classic, novel]
  - title: On Walking
    content: "Walking clears the mind. The pace of the feet sets the pace of thought."
    category: essays
`

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(fixtureYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Categories) != 2 {
		t.Errorf("got %d categories, want 2", len(f.Categories))
	}
	if len(f.Documents) != 2 {
		t.Fatalf("got %d documents, want 2", len(f.Documents))
	}
	if f.Documents[0].Title != "Opening Lines" || len(f.Documents[0].Tags) != 2 {
		t.Errorf("first document = %+v", f.Documents[0])
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte(": not yaml: [")); err == nil {
		t.Error("malformed YAML accepted")
	}
	if _, err := Parse([]byte("documents:\n  - title: x\n")); err == nil {
		t.Error("document without content accepted")
	}
	if _, err := Parse([]byte("documents:\n  - content: x\n")); err == nil {
		t.Error("document without title accepted")
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	st, err := store.Open(filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer st.Close()

	f, err := Parse([]byte(fixtureYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	ctx := context.Background()
	n, err := Apply(ctx, st, f)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != 2 {
		t.Errorf("created %d documents, want 2", n)
	}

	docs, err := st.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("store holds %d documents, want 2", len(docs))
	}

	cats, err := st.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 2 {
		t.Errorf("store holds %d categories, want 2", len(cats))
	}
}
