package handler

import (
	"net/http"

	"wick/internal/delivery/http/response"
	"wick/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler handles contact requests for listed creators.
type ContactHandler struct {
	uc usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Send validates and accepts a contact request.
func (h *ContactHandler) Send(c echo.Context) error {
	var input *usecase.ContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact request")
	}

	status, err := h.uc.Send(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": status}, "")
}
