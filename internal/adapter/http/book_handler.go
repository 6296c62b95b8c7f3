package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	uc "github.com/Roonpandit/Library-Management/internal/usecase/book"
)

type BookHandler struct{ uc *uc.Usecase }

func NewBookHandler(u *uc.Usecase) *BookHandler { return &BookHandler{uc: u} }

type createBookReq struct {
	Title           string    `json:"title" validate:"required"`
	Author          string    `json:"author" validate:"required"`
	ISBN            string    `json:"isbn" validate:"required,isbn10or13"`
	PublishedDate   time.Time `json:"published_date" validate:"required"`
	Genre           string    `json:"genre" validate:"required"`
	CopiesAvailable int       `json:"copies_available" validate:"gte=0"`
	ChargePerDay    float64   `json:"charge_per_day" validate:"gte=0,dec2"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"image_url"`
}

type updateBookReq struct {
	Title           *string  `json:"title"`
	Author          *string  `json:"author"`
	Genre           *string  `json:"genre"`
	CopiesAvailable *int     `json:"copies_available" validate:"omitempty,gte=0"`
	ChargePerDay    *float64 `json:"charge_per_day" validate:"omitempty,gte=0,dec2"`
	Description     *string  `json:"description"`
	ImageURL        *string  `json:"image_url"`
}

// POST /api/books (admin)
func (h *BookHandler) Create(c echo.Context) error {
	var req createBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	b, err := h.uc.Create(c.Request().Context(), uc.CreateBookInput{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		PublishedDate:   req.PublishedDate,
		Genre:           req.Genre,
		CopiesAvailable: req.CopiesAvailable,
		ChargePerDay:    req.ChargePerDay,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// GET /api/books
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

// GET /api/books/:id
func (h *BookHandler) Get(c echo.Context) error {
	b, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// PUT /api/books/:id (admin)
func (h *BookHandler) Update(c echo.Context) error {
	var req updateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	b, err := h.uc.Update(c.Request().Context(), c.Param("id"), uc.UpdateBookInput{
		Title:           req.Title,
		Author:          req.Author,
		Genre:           req.Genre,
		CopiesAvailable: req.CopiesAvailable,
		ChargePerDay:    req.ChargePerDay,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// DELETE /api/books/:id (admin)
func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Book removed"})
}
