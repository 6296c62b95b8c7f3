package borrowmock

import (
	"context"
	"errors"
	"time"

	domain "github.com/Roonpandit/Library-Management/internal/domain/borrow"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("borrowmock: method not implemented")

// Repo is a function-backed mock that satisfies borrow.Repository.
type Repo struct {
	CreateFn                 func(ctx context.Context, b *domain.Borrow) error
	SaveFn                   func(ctx context.Context, b *domain.Borrow) error
	GetByBorrowIDFn          func(ctx context.Context, borrowID string) (*domain.Borrow, error)
	GetByBorrowIDForUpdateFn func(ctx context.Context, borrowID string) (*domain.Borrow, error)
	GetActiveByUserAndBookFn func(ctx context.Context, userID, bookID string) (*domain.Borrow, error)
	CountActiveByBookFn      func(ctx context.Context, bookID string) (int64, error)
	ListAllFn                func(ctx context.Context) ([]domain.Borrow, error)
	ListByUserFn             func(ctx context.Context, userID string) ([]domain.Borrow, error)
	ListOverdueFn            func(ctx context.Context, now time.Time) ([]domain.Borrow, error)
	ListPendingPaymentFn     func(ctx context.Context) ([]domain.Borrow, error)
}

func (m *Repo) Create(ctx context.Context, b *domain.Borrow) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, b *domain.Borrow) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBorrowID(ctx context.Context, borrowID string) (*domain.Borrow, error) {
	if m.GetByBorrowIDFn != nil {
		return m.GetByBorrowIDFn(ctx, borrowID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByBorrowIDForUpdate(ctx context.Context, borrowID string) (*domain.Borrow, error) {
	if m.GetByBorrowIDForUpdateFn != nil {
		return m.GetByBorrowIDForUpdateFn(ctx, borrowID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetActiveByUserAndBook(ctx context.Context, userID, bookID string) (*domain.Borrow, error) {
	if m.GetActiveByUserAndBookFn != nil {
		return m.GetActiveByUserAndBookFn(ctx, userID, bookID)
	}
	return nil, errUnimplemented
}

func (m *Repo) CountActiveByBook(ctx context.Context, bookID string) (int64, error) {
	if m.CountActiveByBookFn != nil {
		return m.CountActiveByBookFn(ctx, bookID)
	}
	return 0, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Borrow, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Borrow, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListOverdue(ctx context.Context, now time.Time) ([]domain.Borrow, error) {
	if m.ListOverdueFn != nil {
		return m.ListOverdueFn(ctx, now)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListPendingPayment(ctx context.Context) ([]domain.Borrow, error) {
	if m.ListPendingPaymentFn != nil {
		return m.ListPendingPaymentFn(ctx)
	}
	return nil, errUnimplemented
}
