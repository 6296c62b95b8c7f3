package uow

import (
	"context"

	"github.com/Roonpandit/Library-Management/internal/domain/book"
	"github.com/Roonpandit/Library-Management/internal/domain/borrow"
	"github.com/Roonpandit/Library-Management/internal/domain/user"
)

type Repos struct {
	Books   book.Repository
	Borrows borrow.Repository
	Users   user.Repository
}

// UnitOfWork runs ledger, inventory and mirror writes in one transaction,
// so the three representations of a loan fact commit or roll back together.
type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the borrow row first, then pass it in
	WithinBorrowTx(ctx context.Context, borrowID string, fn func(r Repos, b *borrow.Borrow) error) error
}
