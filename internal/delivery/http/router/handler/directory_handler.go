package handler

import (
	"net/http"
	"strconv"

	"wick/config"
	"wick/internal/delivery/http/response"
	"wick/internal/domain/entity"
	"wick/internal/usecase"

	"github.com/labstack/echo/v4"
)

const defaultFeaturedLimit = 3

// creatorView is the directory card the view layer renders. The avatar is
// always resolved, falling back to the deterministic placeholder.
type creatorView struct {
	ID             string                `json:"id"`
	RobloxUsername string                `json:"robloxUsername"`
	PriceRobux     int                   `json:"priceRobux"`
	Bio            string                `json:"bio"`
	AvatarURL      string                `json:"avatarUrl"`
	PlatformLinks  []entity.PlatformLink `json:"platformLinks"`
	CreatorID      string                `json:"userId,omitempty"`
}

// directoryView is the full directory page state.
type directoryView struct {
	Loading  bool          `json:"loading"`
	Creators []creatorView `json:"creators"`
}

// DirectoryHandler serves the creator directory read model.
type DirectoryHandler struct {
	uc          usecase.DirectoryUsecase
	maxFeatured int
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(uc usecase.DirectoryUsecase, cfg *config.Config) *DirectoryHandler {
	maxFeatured := defaultFeaturedLimit
	if cfg.Marketplace != nil && cfg.Marketplace.MaxFeatured > 0 {
		maxFeatured = cfg.Marketplace.MaxFeatured
	}

	return &DirectoryHandler{uc: uc, maxFeatured: maxFeatured}
}

// List returns the current directory state: loading flag plus every
// approved creator in store order.
func (h *DirectoryHandler) List(c echo.Context) error {
	state := h.uc.State()

	return response.Success(c, http.StatusOK, directoryView{
		Loading:  state.Loading,
		Creators: toCreatorViews(state.Creators),
	}, "")
}

// Featured returns a random sample of approved creators for the home page.
func (h *DirectoryHandler) Featured(c echo.Context) error {
	limit := h.maxFeatured
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a positive integer")
		}
		if parsed < limit {
			limit = parsed
		}
	}

	return response.Success(c, http.StatusOK, toCreatorViews(h.uc.Featured(limit)), "")
}

func toCreatorViews(listings []entity.Listing) []creatorView {
	views := make([]creatorView, 0, len(listings))
	for i := range listings {
		listing := &listings[i]
		views = append(views, creatorView{
			ID:             listing.ID,
			RobloxUsername: listing.DisplayName,
			PriceRobux:     listing.PriceRobux,
			Bio:            listing.Bio,
			AvatarURL:      listing.AvatarOrPlaceholder(),
			PlatformLinks:  listing.Links,
			CreatorID:      listing.OwnerID,
		})
	}

	return views
}
