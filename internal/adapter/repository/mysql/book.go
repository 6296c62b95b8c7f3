package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	bookDomain "github.com/Roonpandit/Library-Management/internal/domain/book"
)

type BookRepository struct{ db *gorm.DB }

func NewBookRepository(db *gorm.DB) *BookRepository { return &BookRepository{db: db} }

func (r *BookRepository) Create(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookRepository) Save(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookRepository) GetByBookID(ctx context.Context, bookID string) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := r.db.WithContext(ctx).Where("book_id = ?", bookID).First(&out)
	return &out, res.Error
}

func (r *BookRepository) GetByISBN(ctx context.Context, isbn string) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&out)
	return &out, res.Error
}

func (r *BookRepository) List(ctx context.Context) ([]bookDomain.Book, error) {
	var out []bookDomain.Book
	res := r.db.WithContext(ctx).Order("title ASC").Find(&out)
	return out, res.Error
}

func (r *BookRepository) Delete(ctx context.Context, bookID string) error {
	res := r.db.WithContext(ctx).Where("book_id = ?", bookID).Delete(&bookDomain.Book{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return bookDomain.ErrNotFound
	}
	return nil
}

// Reserve decrements copies_available with a guard in the WHERE clause, so
// two concurrent borrows of the last copy cannot both succeed.
func (r *BookRepository) Reserve(ctx context.Context, bookID string) error {
	res := r.db.WithContext(ctx).Model(&bookDomain.Book{}).
		Where("book_id = ? AND copies_available > 0", bookID).
		UpdateColumn("copies_available", gorm.Expr("copies_available - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// No row matched: gone, or sold out.
		if _, err := r.GetByBookID(ctx, bookID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bookDomain.ErrNotFound
			}
			return err
		}
		return bookDomain.ErrNoCopies
	}
	return nil
}

func (r *BookRepository) Release(ctx context.Context, bookID string) error {
	res := r.db.WithContext(ctx).Model(&bookDomain.Book{}).
		Where("book_id = ?", bookID).
		UpdateColumn("copies_available", gorm.Expr("copies_available + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return bookDomain.ErrNotFound
	}
	return nil
}
