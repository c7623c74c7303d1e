package impl

import (
	"context"
	"log/slog"
	"testing"

	"wick/config"
	"wick/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service  usecase.SessionUsecase
	provider *fakeIdentityProvider
}

func createTestSessionService(t *testing.T, cfg *config.Config) sessionServiceFixtures {
	t.Helper()

	provider := newFakeIdentityProvider()
	service := NewSessionService(provider, cfg, testLogger())
	t.Cleanup(service.Close)

	return sessionServiceFixtures{
		service:  service,
		provider: provider,
	}
}

func TestSessionService_Start_AnonymousSignIn(t *testing.T) {
	fx := createTestSessionService(t, &config.Config{})

	require.NoError(t, fx.service.Start(context.Background()))

	assert.True(t, fx.service.Ready())
	userID, ok := fx.service.Identity()
	assert.True(t, ok)
	assert.Equal(t, "anon-user-1", userID)
	assert.Equal(t, 1, fx.provider.anonCalls)
	assert.Equal(t, 0, fx.provider.tokenCalls)
}

func TestSessionService_Start_BootstrapTokenPreferred(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BootstrapToken: "bootstrap-token"}
	fx := createTestSessionService(t, cfg)

	require.NoError(t, fx.service.Start(context.Background()))

	userID, ok := fx.service.Identity()
	assert.True(t, ok)
	assert.Equal(t, "token-user-1", userID)
	assert.Equal(t, 1, fx.provider.tokenCalls)
	assert.Equal(t, 0, fx.provider.anonCalls)
}

func TestSessionService_Start_SignInFailureDegradesToReady(t *testing.T) {
	fx := createTestSessionService(t, &config.Config{})
	fx.provider.anonErr = assert.AnError

	require.NoError(t, fx.service.Start(context.Background()))

	assert.True(t, fx.service.Ready(), "readiness must resolve even without an identity")
	_, ok := fx.service.Identity()
	assert.False(t, ok)
}

func TestSessionService_NilProviderDegradesToReady(t *testing.T) {
	service := NewSessionService(nil, &config.Config{}, testLogger())
	t.Cleanup(service.Close)

	require.NoError(t, service.Start(context.Background()))

	assert.True(t, service.Ready())
	_, ok := service.Identity()
	assert.False(t, ok)
}

func TestSessionService_ReadinessLatchesAcrossSignOut(t *testing.T) {
	fx := createTestSessionService(t, &config.Config{})

	require.NoError(t, fx.service.Start(context.Background()))
	require.True(t, fx.service.Ready())

	// A later sign-out with a failing re-auth must not revert readiness.
	fx.provider.anonErr = assert.AnError
	fx.provider.emit(nil)

	assert.True(t, fx.service.Ready())
	_, ok := fx.service.Identity()
	assert.False(t, ok)
}

func TestSessionService_StartIsIdempotent(t *testing.T) {
	fx := createTestSessionService(t, &config.Config{})

	require.NoError(t, fx.service.Start(context.Background()))
	require.NoError(t, fx.service.Start(context.Background()))

	assert.Equal(t, 1, fx.provider.anonCalls)
}

func TestSessionService_OnChangeCancelStopsCallbacks(t *testing.T) {
	fx := createTestSessionService(t, &config.Config{})

	var calls int
	cancel := fx.service.OnChange(func() { calls++ })

	require.NoError(t, fx.service.Start(context.Background()))
	callsAtStart := calls
	assert.Positive(t, callsAtStart)

	cancel()
	fx.provider.emit(nil)

	assert.Equal(t, callsAtStart, calls, "no callbacks after cancel returns")
}

func TestSessionService_SessionSnapshot(t *testing.T) {
	fx := createTestSessionService(t, &config.Config{})

	require.NoError(t, fx.service.Start(context.Background()))

	session := fx.service.Session()
	assert.True(t, session.Ready)
	assert.Equal(t, "anon-user-1", session.UserID)
	assert.True(t, session.Authenticated())
}
