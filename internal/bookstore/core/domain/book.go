package domain

import (
	"strings"
	"time"
)

// Book is a catalogue entry. The ID is assigned by the store on first save;
// caller-supplied IDs on create are ignored.
type Book struct {
	ID             int64
	Title          string
	Author         string
	EAN            string
	Price          float64
	PublishingDate time.Time
}

// Validate checks the field constraints of a candidate book.
func (b Book) Validate() error {
	if isBlank(b.Title) {
		return newValidation("title", "must not be blank")
	}
	if isBlank(b.Author) {
		return newValidation("author", "must not be blank")
	}
	if isBlank(b.EAN) {
		return newValidation("ean", "must not be blank")
	}
	if b.Price <= 0 {
		return newValidation("price", "must be positive")
	}
	if b.PublishingDate.IsZero() {
		return newValidation("publishing_date", "is required")
	}
	return nil
}

// isBlank reports whether s has no non-whitespace content.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
