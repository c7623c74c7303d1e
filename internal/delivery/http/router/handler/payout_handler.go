package handler

import (
	"net/http"
	"strconv"

	"wick/internal/delivery/http/response"
	"wick/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PayoutHandler serves the informational payout breakdown.
type PayoutHandler struct {
	uc usecase.PayoutUsecase
}

// NewPayoutHandler is the constructor for PayoutHandler, injected by Fx.
func NewPayoutHandler(uc usecase.PayoutUsecase) *PayoutHandler {
	return &PayoutHandler{uc: uc}
}

// Preview computes the payout breakdown for a gross Robux amount.
func (h *PayoutHandler) Preview(c echo.Context) error {
	amount, err := strconv.Atoi(c.QueryParam("amountRobux"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "amountRobux must be an integer")
	}

	breakdown, err := h.uc.Preview(amount)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, breakdown, "")
}
