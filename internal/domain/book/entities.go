package book

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("book not found")
	// ErrNoCopies means every copy is out on loan.
	ErrNoCopies       = errors.New("book not available for borrowing")
	ErrISBNTaken      = errors.New("a book with this ISBN already exists")
	ErrHasActiveLoans = errors.New("book has active loans")
)

type Book struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	BookID          string         `gorm:"size:32;uniqueIndex:ux_books_book_id" json:"book_id"`
	Title           string         `gorm:"type:varchar(255);not null" json:"title"`
	Author          string         `gorm:"type:varchar(255);not null" json:"author"`
	ISBN            string         `gorm:"column:isbn;size:13;uniqueIndex:ux_books_isbn" json:"isbn"`
	PublishedDate   time.Time      `gorm:"type:date" json:"published_date"`
	Genre           string         `gorm:"type:varchar(64)" json:"genre"`
	CopiesAvailable int            `gorm:"not null;default:0" json:"copies_available"`
	ChargePerDay    float64        `gorm:"type:decimal(18,2);not null;default:0" json:"charge_per_day"`
	Description     string         `gorm:"type:text" json:"description,omitempty"`
	ImageURL        string         `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Book) TableName() string { return "books" }
