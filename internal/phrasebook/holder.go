package phrasebook

import (
	"sync/atomic"

	"vibr/internal/models"
)

// Holder serves the current book and allows it to be swapped atomically.
type Holder struct {
	book atomic.Pointer[Book]
}

// NewHolder creates a holder serving b.
func NewHolder(b *Book) *Holder {
	h := &Holder{}
	h.book.Store(b)
	return h
}

// Book returns the current book.
func (h *Holder) Book() *Book {
	return h.book.Load()
}

// Swap replaces the current book.
func (h *Holder) Swap(b *Book) {
	h.book.Store(b)
}

// Table returns the table for a category from the current book.
func (h *Holder) Table(id string) *models.CategoryTable {
	return h.Book().Table(id)
}
