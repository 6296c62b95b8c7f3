package mysql

import (
	"context"

	"gorm.io/gorm"

	userDomain "github.com/Roonpandit/Library-Management/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByUserIDFull(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).
		Preload("BorrowedBooks").
		Preload("Notifications").
		Where("user_id = ?", userID).
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) List(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}

func (r *UserRepository) ListByBlocked(ctx context.Context, blocked bool) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).
		Where("role = ? AND blocked = ?", userDomain.RoleUser, blocked).
		Order("name ASC").
		Find(&out)
	return out, res.Error
}

// ---- loan mirror ----

func (r *UserRepository) AppendBorrowedBook(ctx context.Context, e *userDomain.BorrowedBook) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *UserRepository) GetBorrowedBookByBorrowID(ctx context.Context, userID, borrowID string) (*userDomain.BorrowedBook, error) {
	var out userDomain.BorrowedBook
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND borrow_id = ?", userID, borrowID).
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) SaveBorrowedBook(ctx context.Context, e *userDomain.BorrowedBook) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *UserRepository) ListBorrowedBooks(ctx context.Context, userID string) ([]userDomain.BorrowedBook, error) {
	var out []userDomain.BorrowedBook
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("borrow_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// ---- notifications ----

func (r *UserRepository) AppendNotification(ctx context.Context, n *userDomain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *UserRepository) GetNotification(ctx context.Context, userID, notificationID string) (*userDomain.Notification, error) {
	var out userDomain.Notification
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND notification_id = ?", userID, notificationID).
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) SaveNotification(ctx context.Context, n *userDomain.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *UserRepository) ListNotifications(ctx context.Context, userID string) ([]userDomain.Notification, error) {
	var out []userDomain.Notification
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&out)
	return out, res.Error
}
