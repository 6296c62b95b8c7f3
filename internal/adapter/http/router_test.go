package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	mw "github.com/Roonpandit/Library-Management/internal/adapter/middleware"
	bookDomain "github.com/Roonpandit/Library-Management/internal/domain/book"
	borrowDomain "github.com/Roonpandit/Library-Management/internal/domain/borrow"
	"github.com/Roonpandit/Library-Management/internal/domain/uow"
	userDomain "github.com/Roonpandit/Library-Management/internal/domain/user"
	"github.com/Roonpandit/Library-Management/internal/testutil/bookmock"
	"github.com/Roonpandit/Library-Management/internal/testutil/borrowmock"
	"github.com/Roonpandit/Library-Management/internal/testutil/uowmock"
	"github.com/Roonpandit/Library-Management/internal/testutil/usermock"
	bookuc "github.com/Roonpandit/Library-Management/internal/usecase/book"
	borrowuc "github.com/Roonpandit/Library-Management/internal/usecase/borrow"
	useruc "github.com/Roonpandit/Library-Management/internal/usecase/user"
)

const (
	readerID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	adminID  = "dddddddddddddddddddddddddddddddd"
	shelfID  = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

// app is the whole HTTP surface wired onto an in-memory library, so handler
// tests exercise real usecases and the real middleware chain, minus the DB.
type app struct {
	e *echo.Echo

	users  map[string]*userDomain.User
	books  map[string]*bookDomain.Book
	ledger map[string]*borrowDomain.Borrow
	mirror map[string]*userDomain.BorrowedBook
	notes  []*userDomain.Notification
}

func newApp(t *testing.T) *app {
	t.Helper()
	a := &app{
		users:  map[string]*userDomain.User{},
		books:  map[string]*bookDomain.Book{},
		ledger: map[string]*borrowDomain.Borrow{},
		mirror: map[string]*userDomain.BorrowedBook{},
	}
	a.users[readerID] = &userDomain.User{UserID: readerID, Name: "Reader", Email: "reader@example.com", Role: userDomain.RoleUser}
	a.users[adminID] = &userDomain.User{UserID: adminID, Name: "Admin", Email: "admin@example.com", Role: userDomain.RoleAdmin}
	a.books[shelfID] = &bookDomain.Book{
		BookID:          shelfID,
		Title:           "The Go Programming Language",
		Author:          "Donovan & Kernighan",
		ISBN:            "9780134190440",
		CopiesAvailable: 2,
		ChargePerDay:    2.00,
	}

	users := &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
			if u, ok := a.users[userID]; ok {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetByUserIDFullFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
			if u, ok := a.users[userID]; ok {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		SaveFn: func(ctx context.Context, u *userDomain.User) error {
			a.users[u.UserID] = u
			return nil
		},
		ListFn: func(ctx context.Context) ([]userDomain.User, error) {
			var out []userDomain.User
			for _, u := range a.users {
				out = append(out, *u)
			}
			return out, nil
		},
		ListByBlockedFn: func(ctx context.Context, blocked bool) ([]userDomain.User, error) {
			var out []userDomain.User
			for _, u := range a.users {
				if u.Role == userDomain.RoleUser && u.Blocked == blocked {
					out = append(out, *u)
				}
			}
			return out, nil
		},
		AppendBorrowedBookFn: func(ctx context.Context, e *userDomain.BorrowedBook) error {
			a.mirror[e.BorrowID] = e
			return nil
		},
		GetBorrowedBookByBorrowIDFn: func(ctx context.Context, userID, borrowID string) (*userDomain.BorrowedBook, error) {
			if e, ok := a.mirror[borrowID]; ok && e.UserID == userID {
				return e, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		SaveBorrowedBookFn: func(ctx context.Context, e *userDomain.BorrowedBook) error {
			a.mirror[e.BorrowID] = e
			return nil
		},
		AppendNotificationFn: func(ctx context.Context, n *userDomain.Notification) error {
			a.notes = append(a.notes, n)
			return nil
		},
		GetNotificationFn: func(ctx context.Context, userID, notificationID string) (*userDomain.Notification, error) {
			for _, n := range a.notes {
				if n.UserID == userID && n.NotificationID == notificationID {
					return n, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
		SaveNotificationFn: func(ctx context.Context, n *userDomain.Notification) error { return nil },
		ListNotificationsFn: func(ctx context.Context, userID string) ([]userDomain.Notification, error) {
			var out []userDomain.Notification
			for _, n := range a.notes {
				if n.UserID == userID {
					out = append(out, *n)
				}
			}
			return out, nil
		},
	}

	books := &bookmock.Repo{
		CreateFn: func(ctx context.Context, b *bookDomain.Book) error {
			a.books[b.BookID] = b
			return nil
		},
		SaveFn: func(ctx context.Context, b *bookDomain.Book) error {
			a.books[b.BookID] = b
			return nil
		},
		GetByBookIDFn: func(ctx context.Context, bookID string) (*bookDomain.Book, error) {
			if b, ok := a.books[bookID]; ok {
				return b, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetByISBNFn: func(ctx context.Context, isbn string) (*bookDomain.Book, error) {
			for _, b := range a.books {
				if b.ISBN == isbn {
					return b, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
		ListFn: func(ctx context.Context) ([]bookDomain.Book, error) {
			var out []bookDomain.Book
			for _, b := range a.books {
				out = append(out, *b)
			}
			return out, nil
		},
		DeleteFn: func(ctx context.Context, bookID string) error {
			if _, ok := a.books[bookID]; !ok {
				return bookDomain.ErrNotFound
			}
			delete(a.books, bookID)
			return nil
		},
		ReserveFn: func(ctx context.Context, bookID string) error {
			b, ok := a.books[bookID]
			if !ok {
				return bookDomain.ErrNotFound
			}
			if b.CopiesAvailable <= 0 {
				return bookDomain.ErrNoCopies
			}
			b.CopiesAvailable--
			return nil
		},
		ReleaseFn: func(ctx context.Context, bookID string) error {
			b, ok := a.books[bookID]
			if !ok {
				return bookDomain.ErrNotFound
			}
			b.CopiesAvailable++
			return nil
		},
	}

	borrows := &borrowmock.Repo{
		CreateFn: func(ctx context.Context, b *borrowDomain.Borrow) error {
			a.ledger[b.BorrowID] = b
			return nil
		},
		SaveFn: func(ctx context.Context, b *borrowDomain.Borrow) error {
			a.ledger[b.BorrowID] = b
			return nil
		},
		GetByBorrowIDForUpdateFn: func(ctx context.Context, borrowID string) (*borrowDomain.Borrow, error) {
			if b, ok := a.ledger[borrowID]; ok {
				return b, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetActiveByUserAndBookFn: func(ctx context.Context, userID, bookID string) (*borrowDomain.Borrow, error) {
			for _, b := range a.ledger {
				if b.UserID == userID && b.BookID == bookID && !b.Returned() {
					return b, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
		CountActiveByBookFn: func(ctx context.Context, bookID string) (int64, error) {
			var n int64
			for _, b := range a.ledger {
				if b.BookID == bookID && !b.Returned() {
					n++
				}
			}
			return n, nil
		},
		ListAllFn: func(ctx context.Context) ([]borrowDomain.Borrow, error) {
			var out []borrowDomain.Borrow
			for _, b := range a.ledger {
				out = append(out, *b)
			}
			return out, nil
		},
		ListByUserFn: func(ctx context.Context, userID string) ([]borrowDomain.Borrow, error) {
			var out []borrowDomain.Borrow
			for _, b := range a.ledger {
				if b.UserID == userID {
					out = append(out, *b)
				}
			}
			return out, nil
		},
		ListOverdueFn: func(ctx context.Context, now time.Time) ([]borrowDomain.Borrow, error) {
			var out []borrowDomain.Borrow
			for _, b := range a.ledger {
				if !b.Returned() && b.DueDate.Before(now) {
					out = append(out, *b)
				}
			}
			return out, nil
		},
		ListPendingPaymentFn: func(ctx context.Context) ([]borrowDomain.Borrow, error) {
			var out []borrowDomain.Borrow
			for _, b := range a.ledger {
				if b.Returned() && b.PaymentStatus == borrowDomain.PaymentPending {
					out = append(out, *b)
				}
			}
			return out, nil
		},
	}

	tx := uowmock.Passthrough(uow.Repos{Books: books, Borrows: borrows, Users: users})
	log := zap.NewNop().Sugar()

	borrowH := NewBorrowHandler(borrowuc.NewUsecase(borrows, tx, log))
	bookH := NewBookHandler(bookuc.NewUsecase(books, borrows, log))
	userH := NewUserHandler(useruc.NewUsecase(users, tx, log))

	e := echo.New()
	e.Validator = NewValidator()

	api := e.Group("/api", mw.Identity())
	api.GET("/books", bookH.List)
	api.GET("/books/:id", bookH.Get)
	api.POST("/books", bookH.Create, mw.AdminOnly())
	api.PUT("/books/:id", bookH.Update, mw.AdminOnly())
	api.DELETE("/books/:id", bookH.Delete, mw.AdminOnly())

	api.POST("/borrows", borrowH.Borrow)
	api.PUT("/borrows/:id/return", borrowH.Return)
	api.PUT("/borrows/:id/bill", borrowH.GenerateBill, mw.AdminOnly())
	api.PUT("/borrows/:id/payment", borrowH.MarkPaid, mw.AdminOnly())
	api.GET("/borrows", borrowH.ListAll, mw.AdminOnly())
	api.GET("/borrows/user", borrowH.ListMine)
	api.GET("/borrows/overdue", borrowH.ListOverdue, mw.AdminOnly())
	api.GET("/borrows/pending-payment", borrowH.ListPendingPayment, mw.AdminOnly())

	api.GET("/users", userH.List, mw.AdminOnly())
	api.GET("/users/blocked", userH.ListBlocked, mw.AdminOnly())
	api.GET("/users/active", userH.ListActive, mw.AdminOnly())
	api.GET("/users/:id", userH.Get, mw.AdminOnly())
	api.PUT("/users/:id/block", userH.ToggleBlock, mw.AdminOnly())
	api.POST("/users/:id/reminder", userH.SendReminder, mw.AdminOnly())
	api.GET("/notifications", userH.ListNotifications)
	api.PUT("/notifications/:id/read", userH.MarkNotificationRead)

	a.e = e
	return a
}

// do performs a request as the given principal. Empty userID sends no
// identity headers at all.
func (a *app) do(method, path, body, userID, role string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userID != "" {
		req.Header.Set(mw.HeaderUserID, userID)
		req.Header.Set(mw.HeaderUserRole, role)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
