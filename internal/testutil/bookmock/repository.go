package bookmock

import (
	"context"
	"errors"

	domain "github.com/Roonpandit/Library-Management/internal/domain/book"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("bookmock: method not implemented")

// Repo is a function-backed mock that satisfies book.Repository. Fill in the
// function fields a test needs; unfilled ones return errUnimplemented.
type Repo struct {
	CreateFn      func(ctx context.Context, b *domain.Book) error
	SaveFn        func(ctx context.Context, b *domain.Book) error
	GetByBookIDFn func(ctx context.Context, bookID string) (*domain.Book, error)
	GetByISBNFn   func(ctx context.Context, isbn string) (*domain.Book, error)
	ListFn        func(ctx context.Context) ([]domain.Book, error)
	DeleteFn      func(ctx context.Context, bookID string) error
	ReserveFn     func(ctx context.Context, bookID string) error
	ReleaseFn     func(ctx context.Context, bookID string) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, b *domain.Book) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBookID(ctx context.Context, bookID string) (*domain.Book, error) {
	if m.GetByBookIDFn != nil {
		return m.GetByBookIDFn(ctx, bookID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	if m.GetByISBNFn != nil {
		return m.GetByISBNFn(ctx, isbn)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Delete(ctx context.Context, bookID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, bookID)
	}
	return errUnimplemented
}

func (m *Repo) Reserve(ctx context.Context, bookID string) error {
	if m.ReserveFn != nil {
		return m.ReserveFn(ctx, bookID)
	}
	return nil
}

func (m *Repo) Release(ctx context.Context, bookID string) error {
	if m.ReleaseFn != nil {
		return m.ReleaseFn(ctx, bookID)
	}
	return nil
}
