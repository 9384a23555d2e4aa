package httpx

import (
	"time"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/domain"
)

// Dates travel as "2006-01-02" strings, order times as RFC3339.
const dateLayout = "2006-01-02"

type BookRequest struct {
	Title          string  `json:"title"`
	Author         string  `json:"author"`
	EAN            string  `json:"ean"`
	Price          float64 `json:"price"`
	PublishingDate string  `json:"publishing_date"`
}

type BookResponse struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Author         string  `json:"author"`
	EAN            string  `json:"ean"`
	Price          float64 `json:"price"`
	PublishingDate string  `json:"publishing_date"`
}

type CustomerRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CustomerResponse deliberately has no password field: the stored password
// is plain text and must not leak through list/get responses.
type CustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// EntityRef is how order bodies reference a book or customer: an object
// carrying at least an id.
type EntityRef struct {
	ID int64 `json:"id"`
}

type OrderRequest struct {
	Book      EntityRef `json:"book"`
	Customer  EntityRef `json:"customer"`
	Status    string    `json:"status"`
	OrderTime time.Time `json:"order_time"`
}

type OrderResponse struct {
	ID        int64            `json:"id"`
	Book      BookResponse     `json:"book"`
	Customer  CustomerResponse `json:"customer"`
	Status    string           `json:"status"`
	OrderTime time.Time        `json:"order_time"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (r BookRequest) toDomain() (domain.Book, error) {
	var published time.Time
	if r.PublishingDate != "" {
		var err error
		published, err = time.Parse(dateLayout, r.PublishingDate)
		if err != nil {
			return domain.Book{}, &domain.ValidationError{
				Field:  "publishing_date",
				Reason: "must be formatted as " + dateLayout,
			}
		}
	}
	return domain.Book{
		Title:          r.Title,
		Author:         r.Author,
		EAN:            r.EAN,
		Price:          r.Price,
		PublishingDate: published,
	}, nil
}

func (r CustomerRequest) toDomain() domain.Customer {
	return domain.Customer{
		Name:     r.Name,
		Address:  r.Address,
		Email:    r.Email,
		Password: r.Password,
	}
}

func (r OrderRequest) toDomain() domain.Order {
	return domain.Order{
		Book:      domain.Book{ID: r.Book.ID},
		Customer:  domain.Customer{ID: r.Customer.ID},
		Status:    r.Status,
		OrderTime: r.OrderTime,
	}
}

func mapBookToResponse(b domain.Book) BookResponse {
	return BookResponse{
		ID:             b.ID,
		Title:          b.Title,
		Author:         b.Author,
		EAN:            b.EAN,
		Price:          b.Price,
		PublishingDate: b.PublishingDate.Format(dateLayout),
	}
}

func mapBooksToResponse(books []domain.Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i, b := range books {
		out[i] = mapBookToResponse(b)
	}
	return out
}

func mapCustomerToResponse(c domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Address: c.Address,
		Email:   c.Email,
	}
}

func mapCustomersToResponse(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = mapCustomerToResponse(c)
	}
	return out
}

func mapOrderToResponse(o domain.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		Book:      mapBookToResponse(o.Book),
		Customer:  mapCustomerToResponse(o.Customer),
		Status:    o.Status,
		OrderTime: o.OrderTime,
	}
}

func mapOrdersToResponse(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = mapOrderToResponse(o)
	}
	return out
}
