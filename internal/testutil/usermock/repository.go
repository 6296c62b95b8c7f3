package usermock

import (
	"context"
	"errors"

	domain "github.com/Roonpandit/Library-Management/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("usermock: method not implemented")

// Repo is a function-backed mock that satisfies user.Repository.
type Repo struct {
	GetByUserIDFn               func(ctx context.Context, userID string) (*domain.User, error)
	GetByUserIDFullFn           func(ctx context.Context, userID string) (*domain.User, error)
	SaveFn                      func(ctx context.Context, u *domain.User) error
	ListFn                      func(ctx context.Context) ([]domain.User, error)
	ListByBlockedFn             func(ctx context.Context, blocked bool) ([]domain.User, error)
	AppendBorrowedBookFn        func(ctx context.Context, e *domain.BorrowedBook) error
	GetBorrowedBookByBorrowIDFn func(ctx context.Context, userID, borrowID string) (*domain.BorrowedBook, error)
	SaveBorrowedBookFn          func(ctx context.Context, e *domain.BorrowedBook) error
	ListBorrowedBooksFn         func(ctx context.Context, userID string) ([]domain.BorrowedBook, error)
	AppendNotificationFn        func(ctx context.Context, n *domain.Notification) error
	GetNotificationFn           func(ctx context.Context, userID, notificationID string) (*domain.Notification, error)
	SaveNotificationFn          func(ctx context.Context, n *domain.Notification) error
	ListNotificationsFn         func(ctx context.Context, userID string) ([]domain.Notification, error)
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByUserIDFull(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFullFn != nil {
		return m.GetByUserIDFullFn(ctx, userID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByBlocked(ctx context.Context, blocked bool) ([]domain.User, error) {
	if m.ListByBlockedFn != nil {
		return m.ListByBlockedFn(ctx, blocked)
	}
	return nil, errUnimplemented
}

func (m *Repo) AppendBorrowedBook(ctx context.Context, e *domain.BorrowedBook) error {
	if m.AppendBorrowedBookFn != nil {
		return m.AppendBorrowedBookFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetBorrowedBookByBorrowID(ctx context.Context, userID, borrowID string) (*domain.BorrowedBook, error) {
	if m.GetBorrowedBookByBorrowIDFn != nil {
		return m.GetBorrowedBookByBorrowIDFn(ctx, userID, borrowID)
	}
	return nil, errUnimplemented
}

func (m *Repo) SaveBorrowedBook(ctx context.Context, e *domain.BorrowedBook) error {
	if m.SaveBorrowedBookFn != nil {
		return m.SaveBorrowedBookFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListBorrowedBooks(ctx context.Context, userID string) ([]domain.BorrowedBook, error) {
	if m.ListBorrowedBooksFn != nil {
		return m.ListBorrowedBooksFn(ctx, userID)
	}
	return nil, errUnimplemented
}

func (m *Repo) AppendNotification(ctx context.Context, n *domain.Notification) error {
	if m.AppendNotificationFn != nil {
		return m.AppendNotificationFn(ctx, n)
	}
	return nil
}

func (m *Repo) GetNotification(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	if m.GetNotificationFn != nil {
		return m.GetNotificationFn(ctx, userID, notificationID)
	}
	return nil, errUnimplemented
}

func (m *Repo) SaveNotification(ctx context.Context, n *domain.Notification) error {
	if m.SaveNotificationFn != nil {
		return m.SaveNotificationFn(ctx, n)
	}
	return nil
}

func (m *Repo) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	if m.ListNotificationsFn != nil {
		return m.ListNotificationsFn(ctx, userID)
	}
	return nil, errUnimplemented
}
