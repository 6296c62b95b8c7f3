package borrow

import "time"

type BorrowInput struct {
	UserID  string
	BookID  string
	DueDate time.Time
}

type GenerateBillInput struct {
	BorrowID string
	// AdditionalLateFee replaces the bill's stored late fee.
	AdditionalLateFee float64
}

type BillDTO struct {
	Amount        float64   `json:"amount"`
	LateFee       float64   `json:"late_fee"`
	TotalAmount   float64   `json:"total_amount"`
	IsLate        bool      `json:"is_late"`
	GeneratedDate time.Time `json:"generated_date"`
	BookISBN      string    `json:"book_isbn,omitempty"`
}

type BorrowDTO struct {
	BorrowID      string     `json:"borrow_id"`
	UserID        string     `json:"user_id"`
	BookID        string     `json:"book_id"`
	BorrowDate    time.Time  `json:"borrow_date"`
	DueDate       time.Time  `json:"due_date"`
	ReturnDate    *time.Time `json:"return_date,omitempty"`
	PaymentStatus string     `json:"payment_status"`
	Bill          *BillDTO   `json:"bill,omitempty"`
}

// ListFilter selects one of the read-side views over the ledger.
type ListFilter string

const (
	FilterAll            ListFilter = "all"
	FilterByUser         ListFilter = "user"
	FilterOverdue        ListFilter = "overdue"
	FilterPendingPayment ListFilter = "pending-payment"
)
