package user

import "context"

type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*User, error)
	// GetByUserIDFull preloads borrowed books and notifications.
	GetByUserIDFull(ctx context.Context, userID string) (*User, error)
	Save(ctx context.Context, u *User) error
	List(ctx context.Context) ([]User, error)
	ListByBlocked(ctx context.Context, blocked bool) ([]User, error)

	// Mirror of the loan ledger, keyed by the borrow's public id.
	AppendBorrowedBook(ctx context.Context, e *BorrowedBook) error
	GetBorrowedBookByBorrowID(ctx context.Context, userID, borrowID string) (*BorrowedBook, error)
	SaveBorrowedBook(ctx context.Context, e *BorrowedBook) error
	ListBorrowedBooks(ctx context.Context, userID string) ([]BorrowedBook, error)

	AppendNotification(ctx context.Context, n *Notification) error
	GetNotification(ctx context.Context, userID, notificationID string) (*Notification, error)
	SaveNotification(ctx context.Context, n *Notification) error
	ListNotifications(ctx context.Context, userID string) ([]Notification, error)
}
