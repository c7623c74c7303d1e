package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wick/config"
	"wick/internal/domain/entity"
	"wick/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDirectory serves a fixed directory state.
type stubDirectory struct {
	state usecase.DirectoryState
}

func (s *stubDirectory) Start(ctx context.Context) error { return nil }
func (s *stubDirectory) Close()                          {}
func (s *stubDirectory) State() usecase.DirectoryState   { return s.state }
func (s *stubDirectory) Listings() []entity.Listing      { return s.state.Creators }
func (s *stubDirectory) Loading() bool                   { return s.state.Loading }

func (s *stubDirectory) Featured(n int) []entity.Listing {
	if n > len(s.state.Creators) {
		n = len(s.state.Creators)
	}

	return s.state.Creators[:n]
}

func TestDirectoryHandler_List(t *testing.T) {
	uc := &stubDirectory{state: usecase.DirectoryState{
		Creators: []entity.Listing{
			{
				ID:          "listing-1",
				OwnerID:     "user-1",
				DisplayName: "BuilderBob",
				PriceRobux:  500,
				Bio:         "I build obbies.",
				Status:      entity.StatusApproved,
			},
		},
	}}
	handler := NewDirectoryHandler(uc, &config.Config{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/creators", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"robloxUsername":"BuilderBob"`)
	assert.Contains(t, body, `"priceRobux":500`)
	// No avatar was set, so the deterministic placeholder is served.
	assert.Contains(t, body, "placehold.co/150x150")
	assert.Contains(t, body, `"loading":false`)
}

func TestDirectoryHandler_Featured_LimitValidation(t *testing.T) {
	uc := &stubDirectory{}
	handler := NewDirectoryHandler(uc, &config.Config{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/creators/featured?limit=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Featured(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDirectoryHandler_Featured_CappedAtConfiguredMax(t *testing.T) {
	creators := make([]entity.Listing, 5)
	for i := range creators {
		creators[i] = entity.Listing{ID: "listing", DisplayName: "creator"}
	}
	uc := &stubDirectory{state: usecase.DirectoryState{Creators: creators}}
	handler := NewDirectoryHandler(uc, &config.Config{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/creators/featured?limit=50", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Featured(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Default cap is three even when the client asks for more.
	assert.Equal(t, 3, strings.Count(rec.Body.String(), `"robloxUsername"`))
}
