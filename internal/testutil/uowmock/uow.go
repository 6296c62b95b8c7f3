package uowmock

import (
	"context"
	"errors"

	"github.com/Roonpandit/Library-Management/internal/domain/borrow"
	"github.com/Roonpandit/Library-Management/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn       func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinBorrowTxFn func(ctx context.Context, borrowID string, fn func(r uow.Repos, b *borrow.Borrow) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW that simply runs the callback against the given
// repos, with no transaction semantics. WithinBorrowTx resolves the borrow
// through r.Borrows.GetByBorrowIDForUpdate, like the real thing.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinBorrowTxFn: func(ctx context.Context, borrowID string, fn func(uow.Repos, *borrow.Borrow) error) error {
			b, err := r.Borrows.GetByBorrowIDForUpdate(ctx, borrowID)
			if err != nil {
				return err
			}
			return fn(r, b)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinBorrowTx(ctx context.Context, borrowID string, fn func(r uow.Repos, b *borrow.Borrow) error) error {
	if m.WithinBorrowTxFn != nil {
		return m.WithinBorrowTxFn(ctx, borrowID, fn)
	}
	return errUnimplemented
}
