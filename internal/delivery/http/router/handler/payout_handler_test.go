package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"wick/config"
	"wick/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayoutHandler_Preview(t *testing.T) {
	handler := NewPayoutHandler(impl.NewPayoutService(&config.Config{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/payouts/preview?amountRobux=1000", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Preview(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"robloxCut":300`)
	assert.Contains(t, body, `"platformCut":70`)
	assert.Contains(t, body, `"creatorNet":630`)
}

func TestPayoutHandler_Preview_MissingAmount(t *testing.T) {
	handler := NewPayoutHandler(impl.NewPayoutService(&config.Config{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/payouts/preview", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Preview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
