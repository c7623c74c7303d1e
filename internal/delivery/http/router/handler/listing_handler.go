package handler

import (
	"net/http"

	"wick/internal/delivery/http/response"
	"wick/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListingHandler handles listing submission requests.
type ListingHandler struct {
	uc usecase.SubmissionUsecase
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(uc usecase.SubmissionUsecase) *ListingHandler {
	return &ListingHandler{uc: uc}
}

// Submit handles a new listing submission.
func (h *ListingHandler) Submit(c echo.Context) error {
	var draft *usecase.ListingDraft
	if err := c.Bind(&draft); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing draft")
	}

	listing, err := h.uc.Submit(c.Request().Context(), draft)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"listingId": listing.ID,
		"status":    listing.Status,
	}, "Listing submitted successfully! It is now pending review and will appear in the directory once approved.")
}

// SubmissionState returns the transient result state of the last submission.
func (h *ListingHandler) SubmissionState(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.State(), "")
}

// ResetSubmission returns the submission controller to the idle phase.
func (h *ListingHandler) ResetSubmission(c echo.Context) error {
	h.uc.Reset()

	return response.Success(c, http.StatusOK, h.uc.State(), "")
}
