// Package phrasebook holds the static category tables and the keyword
// matching rules used to resolve a vibe without calling an LLM.
package phrasebook

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"vibr/internal/models"
)

// Phrasebook validation errors.
var (
	ErrMissingCategoryID = errors.New("category id is required")
	ErrDuplicateCategory = errors.New("duplicate category id")
	ErrGenericCount      = errors.New("category must have exactly one generic entry")
	ErrInvalidKey        = errors.New("keys must be non-empty and lowercase")
	ErrEmptyPhrase       = errors.New("entry must define both me and you phrases")
)

// Book is an immutable, ordered set of category tables.
type Book struct {
	tables map[string]*models.CategoryTable
	order  []string
}

// New builds a book from the given tables, preserving their order.
func New(tables []models.CategoryTable) (*Book, error) {
	b := &Book{tables: make(map[string]*models.CategoryTable, len(tables))}
	for i := range tables {
		t := tables[i]
		if err := Validate(&t); err != nil {
			return nil, err
		}
		if _, exists := b.tables[t.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, t.ID)
		}
		b.tables[t.ID] = &t
		b.order = append(b.order, t.ID)
	}
	return b, nil
}

// Default returns the built-in phrasebook.
func Default() *Book {
	b, err := New(builtin())
	if err != nil {
		panic(fmt.Sprintf("phrasebook: invalid built-in data: %v", err))
	}
	return b
}

// Table returns the table for a category, or nil if the category is unknown.
func (b *Book) Table(id string) *models.CategoryTable {
	if b == nil {
		return nil
	}
	return b.tables[id]
}

// Categories returns all tables in display order.
func (b *Book) Categories() []*models.CategoryTable {
	if b == nil {
		return nil
	}
	out := make([]*models.CategoryTable, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.tables[id])
	}
	return out
}

// Merge returns a new book where overlay tables replace tables with the same
// id and unknown ids are appended.
func (b *Book) Merge(overlay []models.CategoryTable) (*Book, error) {
	merged := make([]models.CategoryTable, 0, len(b.order)+len(overlay))
	index := make(map[string]int, len(b.order))
	for _, t := range b.Categories() {
		index[t.ID] = len(merged)
		merged = append(merged, *t)
	}
	for _, t := range overlay {
		if i, ok := index[t.ID]; ok {
			merged[i] = t
			continue
		}
		index[t.ID] = len(merged)
		merged = append(merged, t)
	}
	return New(merged)
}

// Validate checks a single table. Non-empty tables need exactly one generic entry.
func Validate(t *models.CategoryTable) error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingCategoryID
	}
	if len(t.Data) == 0 {
		return nil
	}

	generics := 0
	for _, entry := range t.Data {
		if entry.IsGeneric() {
			generics++
		}
		if entry.Me == "" || entry.You == "" {
			return fmt.Errorf("%w: category %s", ErrEmptyPhrase, t.ID)
		}
		for _, k := range entry.Keys {
			if k == "" || k != strings.ToLower(k) {
				return fmt.Errorf("%w: category %s key %q", ErrInvalidKey, t.ID, k)
			}
		}
	}
	if generics != 1 {
		return fmt.Errorf("%w: category %s has %d", ErrGenericCount, t.ID, generics)
	}
	return nil
}

// Match returns the first non-generic entry whose keys match the input.
// A key matches when the lowercased input contains it, or, for keys longer
// than three characters, contains the key without its last character.
func Match(t *models.CategoryTable, input string) (models.PhraseEntry, bool) {
	if t == nil {
		return models.PhraseEntry{}, false
	}
	lower := strings.ToLower(input)
	for _, entry := range t.Data {
		if entry.IsGeneric() {
			continue
		}
		for _, key := range entry.Keys {
			if keyMatches(lower, key) {
				return entry, true
			}
		}
	}
	return models.PhraseEntry{}, false
}

func keyMatches(input, key string) bool {
	if key == "" {
		return false
	}
	if strings.Contains(input, key) {
		return true
	}
	if utf8.RuneCountInString(key) <= 3 {
		return false
	}
	r := []rune(key)
	return strings.Contains(input, string(r[:len(r)-1]))
}

// Generic returns the fallback entry of a table.
func Generic(t *models.CategoryTable) (models.PhraseEntry, bool) {
	if t == nil {
		return models.PhraseEntry{}, false
	}
	for _, entry := range t.Data {
		if entry.IsGeneric() {
			return entry, true
		}
	}
	return models.PhraseEntry{}, false
}
