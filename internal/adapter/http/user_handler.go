package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mw "github.com/Roonpandit/Library-Management/internal/adapter/middleware"
	uc "github.com/Roonpandit/Library-Management/internal/usecase/user"
)

type UserHandler struct{ uc *uc.Usecase }

func NewUserHandler(u *uc.Usecase) *UserHandler { return &UserHandler{uc: u} }

type reminderReq struct {
	Message string `json:"message" validate:"required"`
}

// GET /api/users (admin)
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// GET /api/users/blocked (admin)
func (h *UserHandler) ListBlocked(c echo.Context) error {
	users, err := h.uc.ListBlocked(c.Request().Context())
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// GET /api/users/active (admin)
func (h *UserHandler) ListActive(c echo.Context) error {
	users, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// GET /api/users/:id (admin)
func (h *UserHandler) Get(c echo.Context) error {
	usr, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, usr)
}

// PUT /api/users/:id/block (admin)
func (h *UserHandler) ToggleBlock(c echo.Context) error {
	blocked, err := h.uc.ToggleBlock(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errJSON(c, err)
	}
	msg := "User unblocked successfully"
	if blocked {
		msg = "User blocked successfully"
	}
	return c.JSON(http.StatusOK, map[string]any{"message": msg, "is_blocked": blocked})
}

// POST /api/users/:id/reminder (admin)
func (h *UserHandler) SendReminder(c echo.Context) error {
	var req reminderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please provide a reminder message"})
	}

	if err := h.uc.SendReminder(c.Request().Context(), c.Param("id"), req.Message); err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Reminder sent successfully"})
}

// PUT /api/notifications/:id/read
func (h *UserHandler) MarkNotificationRead(c echo.Context) error {
	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing principal"})
	}

	if err := h.uc.MarkNotificationRead(c.Request().Context(), p.UserID, c.Param("id")); err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

// GET /api/notifications
func (h *UserHandler) ListNotifications(c echo.Context) error {
	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing principal"})
	}

	out, err := h.uc.ListNotifications(c.Request().Context(), p.UserID)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
