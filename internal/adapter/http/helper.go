package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	bookDomain "github.com/Roonpandit/Library-Management/internal/domain/book"
	borrowDomain "github.com/Roonpandit/Library-Management/internal/domain/borrow"
	userDomain "github.com/Roonpandit/Library-Management/internal/domain/user"
)

// ---- helpers ----

// statusFor maps domain errors onto HTTP status codes. Anything unmapped is
// a 500: those are infrastructure failures, not business outcomes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, bookDomain.ErrNotFound),
		errors.Is(err, borrowDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrNotificationNotFound):
		return http.StatusNotFound
	case errors.Is(err, userDomain.ErrBlocked),
		errors.Is(err, borrowDomain.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, borrowDomain.ErrDuplicateActive),
		errors.Is(err, bookDomain.ErrISBNTaken),
		errors.Is(err, bookDomain.ErrHasActiveLoans):
		return http.StatusConflict
	case errors.Is(err, bookDomain.ErrNoCopies),
		errors.Is(err, borrowDomain.ErrAlreadyReturned),
		errors.Is(err, borrowDomain.ErrNotReturned),
		errors.Is(err, borrowDomain.ErrNoBillData),
		errors.Is(err, borrowDomain.ErrBillNotGenerated),
		errors.Is(err, borrowDomain.ErrDueDateNotFuture):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errJSON(c echo.Context, err error) error {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "Server Error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}
