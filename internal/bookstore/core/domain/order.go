package domain

import "time"

// Order ties exactly one book to exactly one customer. On a candidate the
// Book and Customer fields may be bare references carrying only an ID; after
// a successful create they hold the authoritative stored records.
//
// Status is an opaque non-blank label ("Processing", "Shipped", ...). There
// is no enforced state machine and no terminal-state protection.
type Order struct {
	ID        int64
	Book      Book
	Customer  Customer
	Status    string
	OrderTime time.Time
}

// Validate checks the field constraints of a candidate order. Reference
// existence is not checked here; that is the resolver's job.
func (o Order) Validate() error {
	if o.Book.ID == 0 {
		return newValidation("book", "reference is required")
	}
	if o.Customer.ID == 0 {
		return newValidation("customer", "reference is required")
	}
	if isBlank(o.Status) {
		return newValidation("status", "must not be blank")
	}
	if o.OrderTime.IsZero() {
		return newValidation("order_time", "is required")
	}
	return nil
}
