package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Roonpandit/Library-Management/internal/domain/borrow"
	"github.com/Roonpandit/Library-Management/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinBorrowTx(ctx context.Context, borrowID string, fn func(r uow.Repos, b *borrow.Borrow) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the borrow row up-front to prevent races
		b, err := r.Borrows.GetByBorrowIDForUpdate(ctx, borrowID)
		if err != nil {
			return err
		}
		return fn(r, b)
	})
}

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Books:   &BookRepository{db: tx},
		Borrows: &BorrowRepository{db: tx},
		Users:   &UserRepository{db: tx},
	}
}
