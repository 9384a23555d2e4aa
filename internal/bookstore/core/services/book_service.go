package services

import (
	"context"
	"fmt"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/domain"
	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/ports"
)

var _ ports.BookService = (*BookService)(nil)

// BookService provides CRUD over the book catalogue.
type BookService struct {
	books ports.BookRepository
}

func NewBookService(books ports.BookRepository) *BookService {
	return &BookService{books: books}
}

func (s *BookService) List(ctx context.Context) ([]domain.Book, error) {
	return s.books.FindAll(ctx)
}

func (s *BookService) Get(ctx context.Context, id int64) (domain.Book, error) {
	book, ok, err := s.books.FindByID(ctx, id)
	if err != nil {
		return domain.Book{}, fmt.Errorf("get book: %w", err)
	}
	if !ok {
		return domain.Book{}, domain.NewNotFound(domain.KindBook, id)
	}
	return book, nil
}

// Create validates and persists a new book. Any caller-supplied id is
// discarded; the store generates one.
func (s *BookService) Create(ctx context.Context, candidate domain.Book) (domain.Book, error) {
	if err := candidate.Validate(); err != nil {
		return domain.Book{}, err
	}
	candidate.ID = 0
	stored, err := s.books.Save(ctx, candidate)
	if err != nil {
		return domain.Book{}, fmt.Errorf("save book: %w", err)
	}
	return stored, nil
}

// Update replaces title, author, ean, and price of an existing book. The
// publishing date is intentionally left as stored; it is only set on create.
func (s *BookService) Update(ctx context.Context, id int64, candidate domain.Book) (domain.Book, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}

	existing.Title = candidate.Title
	existing.Author = candidate.Author
	existing.EAN = candidate.EAN
	existing.Price = candidate.Price

	if err := existing.Validate(); err != nil {
		return domain.Book{}, err
	}

	stored, err := s.books.Save(ctx, existing)
	if err != nil {
		return domain.Book{}, fmt.Errorf("save book: %w", err)
	}
	return stored, nil
}

func (s *BookService) Delete(ctx context.Context, id int64) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.books.Delete(ctx, existing); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}
