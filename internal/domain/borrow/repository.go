package borrow

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, b *Borrow) error
	Save(ctx context.Context, b *Borrow) error
	GetByBorrowID(ctx context.Context, borrowID string) (*Borrow, error)
	// GetByBorrowIDForUpdate locks the row for the lifetime of the
	// surrounding transaction.
	GetByBorrowIDForUpdate(ctx context.Context, borrowID string) (*Borrow, error)
	// GetActiveByUserAndBook finds the unreturned borrow for (user, book),
	// if any. At most one such record may exist.
	GetActiveByUserAndBook(ctx context.Context, userID, bookID string) (*Borrow, error)
	CountActiveByBook(ctx context.Context, bookID string) (int64, error)

	ListAll(ctx context.Context) ([]Borrow, error)
	ListByUser(ctx context.Context, userID string) ([]Borrow, error)
	ListOverdue(ctx context.Context, now time.Time) ([]Borrow, error)
	ListPendingPayment(ctx context.Context) ([]Borrow, error)
}
