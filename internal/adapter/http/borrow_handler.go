package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	mw "github.com/Roonpandit/Library-Management/internal/adapter/middleware"
	uc "github.com/Roonpandit/Library-Management/internal/usecase/borrow"
)

type BorrowHandler struct{ uc *uc.Usecase }

func NewBorrowHandler(u *uc.Usecase) *BorrowHandler { return &BorrowHandler{uc: u} }

type borrowReq struct {
	BookID  string    `json:"book_id" validate:"required,hex32"`
	DueDate time.Time `json:"due_date" validate:"required"`
}

type billReq struct {
	LateFee float64 `json:"late_fee" validate:"gte=0,dec2"`
}

// POST /api/borrows
func (h *BorrowHandler) Borrow(c echo.Context) error {
	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing principal"})
	}

	var req borrowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Borrow(c.Request().Context(), uc.BorrowInput{
		UserID:  p.UserID,
		BookID:  req.BookID,
		DueDate: req.DueDate,
	})
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// PUT /api/borrows/:id/return
func (h *BorrowHandler) Return(c echo.Context) error {
	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing principal"})
	}

	bill, err := h.uc.Return(c.Request().Context(), c.Param("id"), p.UserID)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Book returned successfully",
		"bill":    bill,
	})
}

// PUT /api/borrows/:id/bill (admin)
func (h *BorrowHandler) GenerateBill(c echo.Context) error {
	var req billReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	bill, err := h.uc.GenerateBill(c.Request().Context(), uc.GenerateBillInput{
		BorrowID:          c.Param("id"),
		AdditionalLateFee: req.LateFee,
	})
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Bill generated successfully",
		"bill":    bill,
	})
}

// PUT /api/borrows/:id/payment (admin)
func (h *BorrowHandler) MarkPaid(c echo.Context) error {
	status, err := h.uc.MarkPaid(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":        "Payment status updated successfully",
		"payment_status": status,
	})
}

// GET /api/borrows (admin)
func (h *BorrowHandler) ListAll(c echo.Context) error {
	return h.list(c, uc.FilterAll, "")
}

// GET /api/borrows/user
func (h *BorrowHandler) ListMine(c echo.Context) error {
	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing principal"})
	}
	return h.list(c, uc.FilterByUser, p.UserID)
}

// GET /api/borrows/overdue (admin)
func (h *BorrowHandler) ListOverdue(c echo.Context) error {
	return h.list(c, uc.FilterOverdue, "")
}

// GET /api/borrows/pending-payment (admin)
func (h *BorrowHandler) ListPendingPayment(c echo.Context) error {
	return h.list(c, uc.FilterPendingPayment, "")
}

func (h *BorrowHandler) list(c echo.Context, filter uc.ListFilter, userID string) error {
	out, err := h.uc.List(c.Request().Context(), filter, userID)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
