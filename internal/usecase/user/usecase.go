// Package user covers the account surface the loan core depends on: the
// blocked flag, the loan mirror and the notification log.
package user

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Roonpandit/Library-Management/internal/domain/uow"
	userDomain "github.com/Roonpandit/Library-Management/internal/domain/user"
	"github.com/Roonpandit/Library-Management/pkg/id"
)

const (
	blockedMessage   = "Your account has been blocked. Please contact admin for assistance."
	unblockedMessage = "Your account has been unblocked. You can now borrow books."
)

type Usecase struct {
	users userDomain.Repository
	uow   uow.UnitOfWork
	log   *zap.SugaredLogger
}

func NewUsecase(users userDomain.Repository, tx uow.UnitOfWork, log *zap.SugaredLogger) *Usecase {
	return &Usecase{users: users, uow: tx, log: log}
}

func (u *Usecase) Get(ctx context.Context, userID string) (*userDomain.User, error) {
	usr, err := u.users.GetByUserIDFull(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}
	return usr, nil
}

func (u *Usecase) List(ctx context.Context) ([]userDomain.User, error) {
	return u.users.List(ctx)
}

func (u *Usecase) ListBlocked(ctx context.Context) ([]userDomain.User, error) {
	return u.users.ListByBlocked(ctx, true)
}

func (u *Usecase) ListActive(ctx context.Context) ([]userDomain.User, error) {
	return u.users.ListByBlocked(ctx, false)
}

// ToggleBlock flips the blocked flag and tells the user about it.
func (u *Usecase) ToggleBlock(ctx context.Context, userID string) (bool, error) {
	var blocked bool
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userDomain.ErrNotFound
			}
			return err
		}

		usr.Blocked = !usr.Blocked
		if err := r.Users.Save(ctx, usr); err != nil {
			return err
		}

		msg := unblockedMessage
		if usr.Blocked {
			msg = blockedMessage
		}
		if err := r.Users.AppendNotification(ctx, newNotification(userID, msg)); err != nil {
			return err
		}

		blocked = usr.Blocked
		return nil
	})
	if err != nil {
		return false, err
	}

	u.log.Infow("user block toggled", "user_id", userID, "blocked", blocked)
	return blocked, nil
}

// SendReminder appends an admin-authored notification to the user's log.
func (u *Usecase) SendReminder(ctx context.Context, userID, message string) error {
	if _, err := u.users.GetByUserID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userDomain.ErrNotFound
		}
		return err
	}
	return u.users.AppendNotification(ctx, newNotification(userID, message))
}

// MarkNotificationRead flips the read flag on one of the caller's own
// notifications.
func (u *Usecase) MarkNotificationRead(ctx context.Context, actingUserID, notificationID string) error {
	n, err := u.users.GetNotification(ctx, actingUserID, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userDomain.ErrNotificationNotFound
		}
		return err
	}
	n.Read = true
	return u.users.SaveNotification(ctx, n)
}

func (u *Usecase) ListNotifications(ctx context.Context, userID string) ([]userDomain.Notification, error) {
	return u.users.ListNotifications(ctx, userID)
}

func newNotification(userID, message string) *userDomain.Notification {
	return &userDomain.Notification{
		NotificationID: id.NewID32(),
		UserID:         userID,
		Message:        message,
		Date:           time.Now().UTC(),
	}
}
