// internal/data/store.go
// This file contains the Store type: the authoritative in-memory set of
// book records plus all query and mutation operations over it. Mutations
// flush the full record set through the Persister after every change
// unless the caller suppresses the flush with NoFlush.
package data

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/aoideee/libman/internal/validator"
)

// Persister is the boundary between the store and the on-disk catalog
// document. internal/storage provides the JSON file implementation.
type Persister interface {
	// Load reads the full record set from path. A missing file yields an
	// empty set and no error.
	Load(path string) ([]Book, error)
	// Save overwrites path with the full record set.
	Save(path string, books []Book) error
}

// FlushMode controls whether a mutating operation writes the catalog file
// after changing the in-memory record set.
type FlushMode bool

const (
	// Flush persists the record set after the mutation. This is the
	// normal mode for every CLI command.
	Flush FlushMode = true
	// NoFlush skips persistence. Useful for batched mutations and tests.
	NoFlush FlushMode = false
)

// Store holds the in-memory record set and mediates persistence.
// It is not safe for concurrent use; the CLI runs one operation per
// process invocation. Query results and returned records are copies, so
// callers never alias store-owned state.
type Store struct {
	path      string
	persister Persister
	books     []Book
}

// NewStore loads the catalog at path through p and returns a store ready
// for use. A missing file starts the store empty.
func NewStore(path string, p Persister) (*Store, error) {
	books, err := p.Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, persister: p, books: books}, nil
}

// Len returns the number of records currently held in memory.
func (s *Store) Len() int {
	return len(s.books)
}

// flush writes the full record set to the catalog file.
func (s *Store) flush() error {
	return s.persister.Save(s.path, s.books)
}

// Create validates the input fields, assigns a fresh unique id, sets the
// status to available, appends the record, and persists unless mode is
// NoFlush. Returns a *ValidationError if any field violates its
// constraints.
func (s *Store) Create(input CreateBookInput, mode FlushMode) (Book, error) {
	v := validator.New()
	ValidateBookInput(v, input)
	if !v.Valid() {
		return Book{}, &ValidationError{Fields: v.Errors}
	}

	book := Book{
		ID:     uuid.NewString(),
		Title:  input.Title,
		Author: input.Author,
		Year:   input.Year,
		Status: StatusAvailable,
	}
	s.books = append(s.books, book)

	if mode == Flush {
		if err := s.flush(); err != nil {
			return Book{}, err
		}
	}
	return book, nil
}

// ListAll returns every record sorted ascending by (title, author, id).
// Comparison is plain byte-wise string ordering, which for UTF-8 text is
// code-point order.
func (s *Store) ListAll() []Book {
	books := s.copyAll()
	sort.Slice(books, func(i, j int) bool {
		a, b := books[i], books[j]
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		if a.Author != b.Author {
			return a.Author < b.Author
		}
		return a.ID < b.ID
	})
	return books
}

// FindByTitle returns the records whose title contains needle,
// case-insensitively, sorted by (title, author, year, id).
func (s *Store) FindByTitle(needle string) []Book {
	needle = strings.ToLower(needle)
	var books []Book
	for _, b := range s.books {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			books = append(books, b)
		}
	}
	sort.Slice(books, func(i, j int) bool {
		a, b := books[i], books[j]
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		if a.Author != b.Author {
			return a.Author < b.Author
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.ID < b.ID
	})
	return books
}

// FindByAuthor returns the records whose author contains needle,
// case-insensitively, sorted by (author, title, year, id).
func (s *Store) FindByAuthor(needle string) []Book {
	needle = strings.ToLower(needle)
	var books []Book
	for _, b := range s.books {
		if strings.Contains(strings.ToLower(b.Author), needle) {
			books = append(books, b)
		}
	}
	sort.Slice(books, func(i, j int) bool {
		a, b := books[i], books[j]
		if a.Author != b.Author {
			return a.Author < b.Author
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.ID < b.ID
	})
	return books
}

// FindByYear returns the records published in exactly year, sorted by
// (year, author, title, id). Use ParseYear to coerce user input first.
func (s *Store) FindByYear(year int) []Book {
	var books []Book
	for _, b := range s.books {
		if b.Year == year {
			books = append(books, b)
		}
	}
	sort.Slice(books, func(i, j int) bool {
		a, b := books[i], books[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Author != b.Author {
			return a.Author < b.Author
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})
	return books
}

// FindByID returns the record whose id matches, ignoring case.
// The second return value reports whether a record was found; an absent
// id is an ordinary outcome here, not an error.
func (s *Store) FindByID(id string) (Book, bool) {
	for _, b := range s.books {
		if strings.EqualFold(b.ID, id) {
			return b, true
		}
	}
	return Book{}, false
}

// Delete removes the record with the given id (matched ignoring case, the
// same lookup FindByID uses) and persists unless mode is NoFlush.
// Returns ErrBookNotFound if no record has that id.
func (s *Store) Delete(id string, mode FlushMode) error {
	for i, b := range s.books {
		if strings.EqualFold(b.ID, id) {
			s.books = append(s.books[:i], s.books[i+1:]...)
			if mode == Flush {
				return s.flush()
			}
			return nil
		}
	}
	return ErrBookNotFound
}

// UpdateStatus sets the status of the record with exactly the given id
// and persists unless mode is NoFlush. The overwrite is unconditional:
// setting a status the record already has succeeds. Unlike FindByID, the
// id comparison is case-sensitive. Returns ErrBookNotFound if absent.
func (s *Store) UpdateStatus(id string, status BookStatus, mode FlushMode) error {
	for i := range s.books {
		if s.books[i].ID == id {
			s.books[i].Status = status
			if mode == Flush {
				return s.flush()
			}
			return nil
		}
	}
	return ErrBookNotFound
}

// copyAll returns a fresh slice holding copies of every record.
func (s *Store) copyAll() []Book {
	books := make([]Book, len(s.books))
	copy(books, s.books)
	return books
}
