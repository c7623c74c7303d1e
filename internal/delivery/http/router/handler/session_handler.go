package handler

import (
	"net/http"

	"wick/internal/delivery/http/response"
	"wick/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler exposes the current identity-readiness state.
type SessionHandler struct {
	uc usecase.SessionUsecase
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Get returns the current session snapshot.
func (h *SessionHandler) Get(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Session(), "")
}
