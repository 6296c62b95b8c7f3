// Package borrow orchestrates the loan lifecycle: borrow, return, bill,
// payment. Every mutation runs inside one unit of work so the ledger, the
// inventory counter and the per-user mirror stay in step.
package borrow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	bookDomain "github.com/Roonpandit/Library-Management/internal/domain/book"
	borrowDomain "github.com/Roonpandit/Library-Management/internal/domain/borrow"
	"github.com/Roonpandit/Library-Management/internal/domain/uow"
	userDomain "github.com/Roonpandit/Library-Management/internal/domain/user"
	"github.com/Roonpandit/Library-Management/internal/billing"
	"github.com/Roonpandit/Library-Management/pkg/id"
)

type Usecase struct {
	borrows borrowDomain.Repository // read side only
	uow     uow.UnitOfWork
	log     *zap.SugaredLogger
}

// NewUsecase: the repo serves the listing queries, the UoW every mutation.
func NewUsecase(borrows borrowDomain.Repository, tx uow.UnitOfWork, log *zap.SugaredLogger) *Usecase {
	return &Usecase{borrows: borrows, uow: tx, log: log}
}

// Borrow hands a copy of the book to the user until dueDate.
func (u *Usecase) Borrow(ctx context.Context, in BorrowInput) (*BorrowDTO, error) {
	now := time.Now().UTC()
	if !in.DueDate.After(now) {
		return nil, borrowDomain.ErrDueDateNotFuture
	}

	var dto *BorrowDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByUserID(ctx, in.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userDomain.ErrNotFound
			}
			return err
		}
		if usr.Blocked {
			return userDomain.ErrBlocked
		}

		bk, err := r.Books.GetByBookID(ctx, in.BookID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bookDomain.ErrNotFound
			}
			return err
		}
		if bk.CopiesAvailable <= 0 {
			return bookDomain.ErrNoCopies
		}

		// One active loan per (user, book).
		_, err = r.Borrows.GetActiveByUserAndBook(ctx, in.UserID, in.BookID)
		switch {
		case err == nil:
			return borrowDomain.ErrDuplicateActive
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		b := &borrowDomain.Borrow{
			BorrowID:      id.NewID32(),
			UserID:        in.UserID,
			BookID:        in.BookID,
			BorrowDate:    now,
			DueDate:       in.DueDate.UTC(),
			PaymentStatus: borrowDomain.PaymentPending,
		}
		if err := r.Borrows.Create(ctx, b); err != nil {
			return err
		}

		if err := r.Books.Reserve(ctx, in.BookID); err != nil {
			return err
		}

		entry := &userDomain.BorrowedBook{
			UserID:        in.UserID,
			BorrowID:      b.BorrowID,
			BookID:        in.BookID,
			BorrowDate:    now,
			DueDate:       b.DueDate,
			PaymentStatus: borrowDomain.PaymentPending,
		}
		if err := r.Users.AppendBorrowedBook(ctx, entry); err != nil {
			return err
		}

		dto = toBorrowDTO(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Infow("book borrowed", "borrow_id", dto.BorrowID, "user_id", in.UserID, "book_id", in.BookID)
	return dto, nil
}

// Return closes the loan at the current instant and writes the bill.
func (u *Usecase) Return(ctx context.Context, borrowID, actingUserID string) (*BillDTO, error) {
	var dto *BillDTO
	err := u.uow.WithinBorrowTx(ctx, borrowID, func(r uow.Repos, b *borrowDomain.Borrow) error {
		if b.UserID != actingUserID {
			return borrowDomain.ErrNotOwner
		}
		if b.Returned() {
			return borrowDomain.ErrAlreadyReturned
		}

		now := time.Now().UTC()

		// The catalog entry may have been removed since the borrow; the
		// return still goes through, just without a restock or a rate.
		var isbn string
		var perDay float64
		bk, err := r.Books.GetByBookID(ctx, b.BookID)
		switch {
		case err == nil:
			isbn, perDay = bk.ISBN, bk.ChargePerDay
			if err := r.Books.Release(ctx, b.BookID); err != nil && !errors.Is(err, bookDomain.ErrNotFound) {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			u.log.Warnw("returning borrow for missing book", "borrow_id", b.BorrowID, "book_id", b.BookID)
		default:
			return err
		}

		b.ReturnDate = &now
		b.Bill = billing.Compute(b.BorrowDate, b.DueDate, now, perDay, isbn)
		if err := r.Borrows.Save(ctx, b); err != nil {
			return err
		}

		if err := u.syncMirror(ctx, r, b, nil); err != nil {
			return err
		}

		dto = toBillDTO(b.Bill)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrowDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// GenerateBill lets an administrator adjust the late fee after return. The
// adjustment replaces the stored late fee; the base rental amount stands.
func (u *Usecase) GenerateBill(ctx context.Context, in GenerateBillInput) (*BillDTO, error) {
	var dto *BillDTO
	err := u.uow.WithinBorrowTx(ctx, in.BorrowID, func(r uow.Repos, b *borrowDomain.Borrow) error {
		if !b.Returned() {
			return borrowDomain.ErrNotReturned
		}
		if !b.HasBill() {
			return borrowDomain.ErrNoBillData
		}

		now := time.Now().UTC()
		isbn := b.Bill.BookISBN
		if bk, err := r.Books.GetByBookID(ctx, b.BookID); err == nil {
			isbn = bk.ISBN
		}

		b.Bill = billing.Regenerate(b.Bill, in.AdditionalLateFee, now, isbn)
		if err := r.Borrows.Save(ctx, b); err != nil {
			return err
		}

		notify := func(entry *userDomain.BorrowedBook) string {
			return fmt.Sprintf("Your bill for the book has been generated. Total amount: $%.2f", entry.Bill.TotalAmount)
		}
		if err := u.syncMirror(ctx, r, b, notify); err != nil {
			return err
		}

		dto = toBillDTO(b.Bill)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrowDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// MarkPaid settles the bill. Terminal: a paid loan never changes again.
func (u *Usecase) MarkPaid(ctx context.Context, borrowID string) (borrowDomain.PaymentStatus, error) {
	var status borrowDomain.PaymentStatus
	err := u.uow.WithinBorrowTx(ctx, borrowID, func(r uow.Repos, b *borrowDomain.Borrow) error {
		if !b.Returned() {
			return borrowDomain.ErrNotReturned
		}
		if !b.HasBill() {
			return borrowDomain.ErrBillNotGenerated
		}

		b.PaymentStatus = borrowDomain.PaymentPaid
		if err := r.Borrows.Save(ctx, b); err != nil {
			return err
		}

		notify := func(*userDomain.BorrowedBook) string {
			return "Your payment for the book has been marked as paid."
		}
		if err := u.syncMirror(ctx, r, b, notify); err != nil {
			return err
		}

		status = b.PaymentStatus
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", borrowDomain.ErrNotFound
		}
		return "", err
	}
	return status, nil
}

// List serves the read-side views. userID is only consulted for FilterByUser.
func (u *Usecase) List(ctx context.Context, filter ListFilter, userID string) ([]BorrowDTO, error) {
	var (
		records []borrowDomain.Borrow
		err     error
	)
	switch filter {
	case FilterByUser:
		records, err = u.borrows.ListByUser(ctx, userID)
	case FilterOverdue:
		records, err = u.borrows.ListOverdue(ctx, time.Now().UTC())
	case FilterPendingPayment:
		records, err = u.borrows.ListPendingPayment(ctx)
	default:
		records, err = u.borrows.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]BorrowDTO, 0, len(records))
	for i := range records {
		out = append(out, *toBorrowDTO(&records[i]))
	}
	return out, nil
}

// syncMirror copies the ledger state onto the user's mirror entry, found by
// the borrow's public id. A missing entry is logged and skipped; when notify
// is set and the entry exists, one notification is appended.
func (u *Usecase) syncMirror(ctx context.Context, r uow.Repos, b *borrowDomain.Borrow, notify func(*userDomain.BorrowedBook) string) error {
	entry, err := r.Users.GetBorrowedBookByBorrowID(ctx, b.UserID, b.BorrowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			u.log.Warnw("mirror entry missing", "borrow_id", b.BorrowID, "user_id", b.UserID)
			return nil
		}
		return err
	}

	entry.ReturnDate = b.ReturnDate
	entry.PaymentStatus = b.PaymentStatus
	entry.Bill = b.Bill
	if err := r.Users.SaveBorrowedBook(ctx, entry); err != nil {
		return err
	}

	if notify != nil {
		n := &userDomain.Notification{
			NotificationID: id.NewID32(),
			UserID:         b.UserID,
			Message:        notify(entry),
			Date:           time.Now().UTC(),
		}
		return r.Users.AppendNotification(ctx, n)
	}
	return nil
}

func toBillDTO(bill borrowDomain.Bill) *BillDTO {
	dto := &BillDTO{
		Amount:      bill.Amount,
		LateFee:     bill.LateFee,
		TotalAmount: bill.TotalAmount,
		IsLate:      bill.IsLate,
		BookISBN:    bill.BookISBN,
	}
	if bill.GeneratedDate != nil {
		dto.GeneratedDate = *bill.GeneratedDate
	}
	return dto
}

func toBorrowDTO(b *borrowDomain.Borrow) *BorrowDTO {
	dto := &BorrowDTO{
		BorrowID:      b.BorrowID,
		UserID:        b.UserID,
		BookID:        b.BookID,
		BorrowDate:    b.BorrowDate,
		DueDate:       b.DueDate,
		ReturnDate:    b.ReturnDate,
		PaymentStatus: string(b.PaymentStatus),
	}
	if b.HasBill() {
		dto.Bill = toBillDTO(b.Bill)
	}
	return dto
}
