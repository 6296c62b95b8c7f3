package book

import "context"

type Repository interface {
	Create(ctx context.Context, b *Book) error
	Save(ctx context.Context, b *Book) error
	GetByBookID(ctx context.Context, bookID string) (*Book, error)
	GetByISBN(ctx context.Context, isbn string) (*Book, error)
	List(ctx context.Context) ([]Book, error)
	Delete(ctx context.Context, bookID string) error

	// Reserve takes one copy off the shelf. It is a single conditional
	// update (copies_available > 0), so concurrent borrows can never push
	// the count below zero. Returns ErrNotFound or ErrNoCopies.
	Reserve(ctx context.Context, bookID string) error
	// Release puts one copy back. Returns ErrNotFound if the book is gone.
	Release(ctx context.Context, bookID string) error
}
