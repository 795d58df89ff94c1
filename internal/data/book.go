// Package data provides the book record model and the in-memory record
// store for the library catalog.
package data

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aoideee/libman/internal/validator"
)

// BookStatus is the lifecycle state of a book record. Its two values are
// also the strings written to the catalog file, so they are part of the
// on-disk format and must not be changed.
type BookStatus string

const (
	// StatusAvailable marks a book as present in the library.
	StatusAvailable BookStatus = "в наличии"
	// StatusIssued marks a book as checked out to a reader.
	StatusIssued BookStatus = "выдана"
)

// MaxTitleLength is the upper bound on a title, counted in runes.
const MaxTitleLength = 50

// Book represents a single book record stored in the catalog.
// It maps directly to one object in the on-disk JSON array.
type Book struct {
	ID     string     `json:"id"`     // Unique identifier assigned at creation, immutable
	Title  string     `json:"title"`  // Title of the book
	Author string     `json:"author"` // One or more authors, comma-separated
	Year   int        `json:"year"`   // Year of publication
	Status BookStatus `json:"status"` // Current lifecycle state
}

// CreateBookInput holds the fields a caller must supply when adding a new
// book. The id and status are assigned by the store, never by the caller.
type CreateBookInput struct {
	Title  string
	Author string
	Year   int
}

// ErrBookNotFound is returned when an operation references an id that is
// absent from the store.
var ErrBookNotFound = errors.New("book not found")

// ErrYearNotNumeric is returned by ParseYear when the supplied value
// cannot be interpreted as an integer year.
var ErrYearNotNumeric = errors.New("year is not a number")

// ValidationError carries the field-level messages collected while
// validating a record. Fields maps a field name to the first failure
// reported for it.
type ValidationError struct {
	Fields map[string]string
}

// Error renders the field messages in a stable, alphabetical order.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ParseYear converts a user-supplied year string to an int.
// Returns an error wrapping ErrYearNotNumeric for non-numeric input, so a
// numeric string like "1111" behaves identically to the integer 1111.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrYearNotNumeric, s)
	}
	return year, nil
}

// ValidateBookInput checks the caller-supplied creation fields against the
// record constraints and records any violations on v.
func ValidateBookInput(v *validator.Validator, input CreateBookInput) {
	v.Check(input.Title != "", "title", "must be provided")
	v.Check(utf8.RuneCountInString(input.Title) <= MaxTitleLength, "title",
		fmt.Sprintf("must not be longer than %d characters", MaxTitleLength))

	v.Check(input.Author != "", "author", "must be provided")
	if input.Author != "" {
		v.Check(validator.Matches(input.Author, validator.AuthorRX), "author",
			"must contain only letters, spaces, commas, periods, or dashes")
		v.Check(!containsDoubledDelimiter(input.Author), "author",
			"must not contain consecutive spaces, periods, or commas")
	}

	v.Check(input.Year >= 0, "year", "must not be negative")
}

// ValidateBook checks a complete record, including the store-assigned id
// and status. Used when loading records from disk.
func ValidateBook(v *validator.Validator, book Book) {
	v.Check(book.ID != "", "id", "must be provided")
	v.Check(validator.In(string(book.Status), string(StatusAvailable), string(StatusIssued)),
		"status", "must be a known status")

	ValidateBookInput(v, CreateBookInput{
		Title:  book.Title,
		Author: book.Author,
		Year:   book.Year,
	})
}

// containsDoubledDelimiter reports whether s contains a doubled space,
// period, or comma. Doubled dashes are allowed.
func containsDoubledDelimiter(s string) bool {
	return strings.Contains(s, "  ") ||
		strings.Contains(s, "..") ||
		strings.Contains(s, ",,")
}
