package borrow

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("borrow record not found")
	ErrNotOwner        = errors.New("not authorized for this borrow record")
	ErrAlreadyReturned = errors.New("book already returned")
	ErrNotReturned     = errors.New("book not yet returned")
	// ErrNoBillData: a bill is always written at return time, so this only
	// triggers on corrupted records.
	ErrNoBillData       = errors.New("no bill data found")
	ErrBillNotGenerated = errors.New("bill not yet generated")
	ErrDuplicateActive  = errors.New("user already borrowed this book")
	ErrDueDateNotFuture = errors.New("due date must be in the future")
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Bill is the monetary breakdown computed at return time. GeneratedDate
// doubles as the presence marker: a nil GeneratedDate means no bill yet.
type Bill struct {
	Amount        float64    `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	LateFee       float64    `gorm:"column:late_fee;type:decimal(18,2)" json:"late_fee"`
	TotalAmount   float64    `gorm:"column:total_amount;type:decimal(18,2)" json:"total_amount"`
	IsLate        bool       `gorm:"column:is_late" json:"is_late"`
	GeneratedDate *time.Time `gorm:"column:generated_date" json:"generated_date,omitempty"`
	BookISBN      string     `gorm:"column:book_isbn;size:13" json:"book_isbn,omitempty"`
}

type Borrow struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	BorrowID      string         `gorm:"size:32;uniqueIndex:ux_borrows_borrow_id" json:"borrow_id"`
	UserID        string         `gorm:"size:32;index:idx_borrows_user" json:"user_id"`
	BookID        string         `gorm:"size:32;index:idx_borrows_book" json:"book_id"`
	BorrowDate    time.Time      `gorm:"not null" json:"borrow_date"`
	DueDate       time.Time      `gorm:"not null" json:"due_date"`
	ReturnDate    *time.Time     `json:"return_date,omitempty"`
	PaymentStatus PaymentStatus  `gorm:"type:enum('pending','paid');default:'pending'" json:"payment_status"`
	Bill          Bill           `gorm:"embedded;embeddedPrefix:bill_" json:"bill"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Borrow) TableName() string { return "borrows" }

func (b *Borrow) Returned() bool { return b.ReturnDate != nil }

func (b *Borrow) HasBill() bool { return b.Bill.GeneratedDate != nil }
