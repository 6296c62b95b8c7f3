// Package book manages the catalog: the core only ever touches its
// copies_available counter, everything else here is plain CRUD.
package book

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	bookDomain "github.com/Roonpandit/Library-Management/internal/domain/book"
	borrowDomain "github.com/Roonpandit/Library-Management/internal/domain/borrow"
	"github.com/Roonpandit/Library-Management/pkg/id"
)

type Usecase struct {
	books   bookDomain.Repository
	borrows borrowDomain.Repository
	log     *zap.SugaredLogger
}

func NewUsecase(books bookDomain.Repository, borrows borrowDomain.Repository, log *zap.SugaredLogger) *Usecase {
	return &Usecase{books: books, borrows: borrows, log: log}
}

type CreateBookInput struct {
	Title           string
	Author          string
	ISBN            string
	PublishedDate   time.Time
	Genre           string
	CopiesAvailable int
	ChargePerDay    float64
	Description     string
	ImageURL        string
}

type UpdateBookInput struct {
	Title           *string
	Author          *string
	Genre           *string
	CopiesAvailable *int
	ChargePerDay    *float64
	Description     *string
	ImageURL        *string
}

func (u *Usecase) Create(ctx context.Context, in CreateBookInput) (*bookDomain.Book, error) {
	_, err := u.books.GetByISBN(ctx, in.ISBN)
	switch {
	case err == nil:
		return nil, bookDomain.ErrISBNTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	b := &bookDomain.Book{
		BookID:          id.NewID32(),
		Title:           in.Title,
		Author:          in.Author,
		ISBN:            in.ISBN,
		PublishedDate:   in.PublishedDate,
		Genre:           in.Genre,
		CopiesAvailable: in.CopiesAvailable,
		ChargePerDay:    in.ChargePerDay,
		Description:     in.Description,
		ImageURL:        in.ImageURL,
	}
	if err := u.books.Create(ctx, b); err != nil {
		return nil, err
	}
	u.log.Infow("book created", "book_id", b.BookID, "isbn", b.ISBN)
	return b, nil
}

func (u *Usecase) Get(ctx context.Context, bookID string) (*bookDomain.Book, error) {
	b, err := u.books.GetByBookID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookDomain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (u *Usecase) List(ctx context.Context) ([]bookDomain.Book, error) {
	return u.books.List(ctx)
}

func (u *Usecase) Update(ctx context.Context, bookID string, in UpdateBookInput) (*bookDomain.Book, error) {
	b, err := u.Get(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Author != nil {
		b.Author = *in.Author
	}
	if in.Genre != nil {
		b.Genre = *in.Genre
	}
	if in.CopiesAvailable != nil {
		b.CopiesAvailable = *in.CopiesAvailable
	}
	if in.ChargePerDay != nil {
		b.ChargePerDay = *in.ChargePerDay
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.ImageURL != nil {
		b.ImageURL = *in.ImageURL
	}

	if err := u.books.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes a catalog entry, refusing while copies are still out.
func (u *Usecase) Delete(ctx context.Context, bookID string) error {
	if _, err := u.Get(ctx, bookID); err != nil {
		return err
	}
	active, err := u.borrows.CountActiveByBook(ctx, bookID)
	if err != nil {
		return err
	}
	if active > 0 {
		return bookDomain.ErrHasActiveLoans
	}
	return u.books.Delete(ctx, bookID)
}
