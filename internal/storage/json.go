// Package storage implements the persistence boundary between the record
// store and the on-disk catalog document: a UTF-8 JSON array of book
// records with human-readable indentation.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aoideee/libman/internal/data"
	"github.com/aoideee/libman/internal/validator"
)

// Adapter reads and writes the catalog file. The zero-value behavior is a
// plain full overwrite on save: a crash mid-write can truncate the file.
// This matches the catalog's single-process, single-user model. The
// AtomicWrites option hardens saves with a temp-file-then-rename without
// changing the document format.
type Adapter struct {
	atomic bool
}

// Option configures an Adapter.
type Option func(*Adapter)

// AtomicWrites makes Save write to a temporary file in the catalog's
// directory and rename it into place, so a crash never leaves a
// half-written catalog.
func AtomicWrites() Option {
	return func(a *Adapter) { a.atomic = true }
}

// NewAdapter returns an Adapter with the given options applied.
func NewAdapter(opts ...Option) *Adapter {
	a := &Adapter{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load reads the catalog at path and validates every record against the
// record schema, failing the whole load on the first malformed record.
// A missing or empty file yields an empty record set and no error.
func (a *Adapter) Load(path string) ([]data.Book, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []data.Book{}, nil
		}
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return []data.Book{}, nil
	}

	var books []data.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	ids := make([]string, 0, len(books))
	for i, book := range books {
		v := validator.New()
		data.ValidateBook(v, book)
		if !v.Valid() {
			return nil, fmt.Errorf("load catalog %s: record %d (id %q): %w",
				path, i, book.ID, &data.ValidationError{Fields: v.Errors})
		}
		ids = append(ids, book.ID)
	}
	if !validator.Unique(ids) {
		return nil, fmt.Errorf("load catalog %s: duplicate record ids", path)
	}

	return books, nil
}

// Save serializes the full record set as an indented JSON array and
// overwrites the catalog at path. Non-ASCII text is written verbatim,
// never as \u escapes, so the file stays readable for non-Latin titles
// and the Cyrillic status values.
func (a *Adapter) Save(path string, books []data.Book) error {
	if books == nil {
		books = []data.Book{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(books); err != nil {
		return fmt.Errorf("save catalog %s: %w", path, err)
	}

	if a.atomic {
		return a.saveAtomic(path, buf.Bytes())
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save catalog %s: %w", path, err)
	}
	return nil
}

// saveAtomic writes the document to a temporary file next to path and
// renames it into place. The temp file lives in the same directory so the
// rename stays on one filesystem.
func (a *Adapter) saveAtomic(path string, doc []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".libman-*.json")
	if err != nil {
		return fmt.Errorf("save catalog %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save catalog %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save catalog %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save catalog %s: %w", path, err)
	}
	return nil
}
