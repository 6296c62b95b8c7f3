package user

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Roonpandit/Library-Management/internal/domain/borrow"
)

var (
	ErrNotFound             = errors.New("user not found")
	ErrBlocked              = errors.New("you are blocked from borrowing books")
	ErrNotificationNotFound = errors.New("notification not found")
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	UserID    string         `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex:ux_users_email" json:"email"`
	Role      Role           `gorm:"type:enum('user','admin');default:'user'" json:"role"`
	Blocked   bool           `gorm:"not null;default:false" json:"is_blocked"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BorrowedBooks []BorrowedBook `gorm:"foreignKey:UserID;references:UserID" json:"borrowed_books"`
	Notifications []Notification `gorm:"foreignKey:UserID;references:UserID" json:"notifications"`
}

func (User) TableName() string { return "users" }

// BorrowedBook is the per-user mirror of a ledger record. It carries the
// borrow's public id so mirror updates key on that, never on timestamp
// equality.
type BorrowedBook struct {
	ID            uint64               `gorm:"primaryKey;column:id" json:"-"`
	UserID        string               `gorm:"size:32;index:idx_user_borrowed_user" json:"-"`
	BorrowID      string               `gorm:"size:32;uniqueIndex:ux_user_borrowed_borrow_id" json:"borrow_id"`
	BookID        string               `gorm:"size:32;index" json:"book_id"`
	BorrowDate    time.Time            `gorm:"not null" json:"borrow_date"`
	DueDate       time.Time            `gorm:"not null" json:"due_date"`
	ReturnDate    *time.Time           `json:"return_date,omitempty"`
	PaymentStatus borrow.PaymentStatus `gorm:"type:enum('pending','paid');default:'pending'" json:"payment_status"`
	Bill          borrow.Bill          `gorm:"embedded;embeddedPrefix:bill_" json:"bill"`
	CreatedAt     time.Time            `gorm:"autoCreateTime" json:"-"`
	UpdatedAt     time.Time            `gorm:"autoUpdateTime" json:"-"`
}

func (BorrowedBook) TableName() string { return "user_borrowed_books" }

// Notification is append-only; only the read flag ever changes afterwards.
type Notification struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	NotificationID string    `gorm:"size:32;uniqueIndex:ux_notifications_notification_id" json:"notification_id"`
	UserID         string    `gorm:"size:32;index:idx_notifications_user" json:"-"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	Date           time.Time `gorm:"not null" json:"date"`
	Read           bool      `gorm:"not null;default:false" json:"read"`
}

func (Notification) TableName() string { return "notifications" }
