package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type bookSQLite struct {
	ID              uint64 `gorm:"primaryKey;column:id"`
	BookID          string `gorm:"size:32;column:book_id"`
	Title           string `gorm:"column:title"`
	Author          string `gorm:"column:author"`
	ISBN            string `gorm:"column:isbn"`
	PublishedDate   time.Time
	Genre           string
	CopiesAvailable int
	ChargePerDay    float64
	Description     string
	ImageURL        string `gorm:"column:image_url"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (bookSQLite) TableName() string { return "books" }

type borrowSQLite struct {
	ID                uint64 `gorm:"primaryKey;column:id"`
	BorrowID          string `gorm:"size:32;column:borrow_id"`
	UserID            string `gorm:"size:32;column:user_id"`
	BookID            string `gorm:"size:32;column:book_id"`
	BorrowDate        time.Time
	DueDate           time.Time
	ReturnDate        *time.Time
	PaymentStatus     string `gorm:"type:text;column:payment_status"` // ← no enum
	BillAmount        float64
	BillLateFee       float64
	BillTotalAmount   float64
	BillIsLate        bool
	BillGeneratedDate *time.Time
	BillBookISBN      string `gorm:"column:bill_book_isbn"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (borrowSQLite) TableName() string { return "borrows" }

type userSQLite struct {
	ID        uint64 `gorm:"primaryKey;column:id"`
	UserID    string `gorm:"size:32;column:user_id"`
	Name      string
	Email     string
	Role      string `gorm:"type:text;column:role"` // ← no enum
	Blocked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

type borrowedBookSQLite struct {
	ID                uint64 `gorm:"primaryKey;column:id"`
	UserID            string `gorm:"size:32;column:user_id"`
	BorrowID          string `gorm:"size:32;column:borrow_id"`
	BookID            string `gorm:"size:32;column:book_id"`
	BorrowDate        time.Time
	DueDate           time.Time
	ReturnDate        *time.Time
	PaymentStatus     string `gorm:"type:text;column:payment_status"`
	BillAmount        float64
	BillLateFee       float64
	BillTotalAmount   float64
	BillIsLate        bool
	BillGeneratedDate *time.Time
	BillBookISBN      string `gorm:"column:bill_book_isbn"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (borrowedBookSQLite) TableName() string { return "user_borrowed_books" }

type notificationSQLite struct {
	ID             uint64 `gorm:"primaryKey;column:id"`
	NotificationID string `gorm:"size:32;column:notification_id"`
	UserID         string `gorm:"size:32;column:user_id"`
	Message        string
	Date           time.Time
	Read           bool
}

func (notificationSQLite) TableName() string { return "notifications" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schema, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&bookSQLite{},
		&borrowSQLite{},
		&userSQLite{},
		&borrowedBookSQLite{},
		&notificationSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
