// Package store persists text documents, categories, and tags in SQLite.
//
// Analysis results are never stored; they are recomputed on demand so a
// pipeline change never leaves stale numbers behind.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    category_id INTEGER REFERENCES categories(id),
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS tags (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS document_tags (
    document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    tag_id INTEGER NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
    PRIMARY KEY (document_id, tag_id)
);
`

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// Document is a stored text with its metadata.
type Document struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// Category is a named grouping for documents.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateDocument inserts a document with its category (created on first
// use when non-empty) and tags, returning the stored row.
func (s *Store) CreateDocument(ctx context.Context, title, content, category string, tags []string) (*Document, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("store: document title is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("store: document content is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var categoryID sql.NullInt64
	if category = strings.TrimSpace(category); category != "" {
		id, err := upsertName(ctx, tx, "categories", category)
		if err != nil {
			return nil, err
		}
		categoryID = sql.NullInt64{Int64: id, Valid: true}
	}

	createdAt := time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO documents(title, content, category_id, created_at) VALUES(?,?,?,?)`,
		title, content, categoryID, createdAt)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	docID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("document last insert id: %w", err)
	}

	cleanTags := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		tagID, err := upsertName(ctx, tx, "tags", tag)
		if err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO document_tags(document_id, tag_id) VALUES(?,?)`,
			docID, tagID); err != nil {
			return nil, fmt.Errorf("attach tag: %w", err)
		}
		cleanTags = append(cleanTags, tag)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &Document{
		ID:        docID,
		Title:     title,
		Content:   content,
		Category:  category,
		Tags:      cleanTags,
		CreatedAt: createdAt,
	}, nil
}

// GetDocument fetches one document with its tags. Returns ErrNotFound
// when no row matches.
func (s *Store) GetDocument(ctx context.Context, id int64) (*Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT d.id, d.title, d.content, COALESCE(c.name, ''), d.created_at
		FROM documents d LEFT JOIN categories c ON c.id = d.category_id
		WHERE d.id = ?`, id)

	var doc Document
	if err := row.Scan(&doc.ID, &doc.Title, &doc.Content, &doc.Category, &doc.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}

	tags, err := s.documentTags(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	doc.Tags = tags
	return &doc, nil
}

// ListDocuments returns all documents, newest first, with tags attached.
func (s *Store) ListDocuments(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.title, d.content, COALESCE(c.name, ''), d.created_at
		FROM documents d LEFT JOIN categories c ON c.id = d.category_id
		ORDER BY d.created_at DESC, d.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Content, &doc.Category, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	for i := range docs {
		tags, err := s.documentTags(ctx, docs[i].ID)
		if err != nil {
			return nil, err
		}
		docs[i].Tags = tags
	}
	return docs, nil
}

// CreateCategory inserts a category if it does not exist and returns it.
func (s *Store) CreateCategory(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("store: category name is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	id, err := upsertName(ctx, tx, "categories", name)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &Category{ID: id, Name: name}, nil
}

// ListCategories returns all categories ordered by name.
func (s *Store) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var cats []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return cats, nil
}

func (s *Store) documentTags(ctx context.Context, docID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.name FROM tags t
		JOIN document_tags dt ON dt.tag_id = t.id
		WHERE dt.document_id = ? ORDER BY t.name`, docID)
	if err != nil {
		return nil, fmt.Errorf("list document tags: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return tags, nil
}

// upsertName inserts a row into a name-unique table and returns its id,
// fetching the existing id on conflict. table is always a compile-time
// constant here.
func upsertName(ctx context.Context, tx *sql.Tx, table, name string) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO `+table+`(name) VALUES(?)`, name)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		if id, err := res.LastInsertId(); err == nil {
			return id, nil
		}
	}

	var id int64
	row := tx.QueryRowContext(ctx, `SELECT id FROM `+table+` WHERE name = ?`, name)
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("lookup %s id: %w", table, err)
	}
	return id, nil
}
