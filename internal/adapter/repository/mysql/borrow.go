package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	borrowDomain "github.com/Roonpandit/Library-Management/internal/domain/borrow"
)

type BorrowRepository struct{ db *gorm.DB }

func NewBorrowRepository(db *gorm.DB) *BorrowRepository { return &BorrowRepository{db: db} }

func (r *BorrowRepository) Create(ctx context.Context, b *borrowDomain.Borrow) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BorrowRepository) Save(ctx context.Context, b *borrowDomain.Borrow) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BorrowRepository) GetByBorrowID(ctx context.Context, borrowID string) (*borrowDomain.Borrow, error) {
	var out borrowDomain.Borrow
	res := r.db.WithContext(ctx).Where("borrow_id = ?", borrowID).First(&out)
	return &out, res.Error
}

func (r *BorrowRepository) GetByBorrowIDForUpdate(ctx context.Context, borrowID string) (*borrowDomain.Borrow, error) {
	var out borrowDomain.Borrow
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("borrow_id = ?", borrowID).
		First(&out)
	return &out, res.Error
}

func (r *BorrowRepository) GetActiveByUserAndBook(ctx context.Context, userID, bookID string) (*borrowDomain.Borrow, error) {
	var out borrowDomain.Borrow
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ? AND return_date IS NULL", userID, bookID).
		First(&out)
	return &out, res.Error
}

func (r *BorrowRepository) CountActiveByBook(ctx context.Context, bookID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&borrowDomain.Borrow{}).
		Where("book_id = ? AND return_date IS NULL", bookID).
		Count(&n)
	return n, res.Error
}

func (r *BorrowRepository) ListAll(ctx context.Context) ([]borrowDomain.Borrow, error) {
	var out []borrowDomain.Borrow
	res := r.db.WithContext(ctx).Order("borrow_date DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *BorrowRepository) ListByUser(ctx context.Context, userID string) ([]borrowDomain.Borrow, error) {
	var out []borrowDomain.Borrow
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("borrow_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *BorrowRepository) ListOverdue(ctx context.Context, now time.Time) ([]borrowDomain.Borrow, error) {
	var out []borrowDomain.Borrow
	res := r.db.WithContext(ctx).
		Where("return_date IS NULL AND due_date < ?", now).
		Order("due_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *BorrowRepository) ListPendingPayment(ctx context.Context) ([]borrowDomain.Borrow, error) {
	var out []borrowDomain.Borrow
	res := r.db.WithContext(ctx).
		Where("return_date IS NOT NULL AND payment_status = ?", borrowDomain.PaymentPending).
		Order("return_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}
