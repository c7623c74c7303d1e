// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"wick/config"
	"wick/internal/domain/entity"
	"wick/internal/domain/service"
	"wick/internal/usecase"
)

// sessionService implements the SessionUsecase interface. It is driven
// entirely by identity provider notifications: there is no direct mutation
// API, and readiness latches true at most once per process lifetime.
type sessionService struct {
	provider       service.IdentityProvider
	bootstrapToken string
	logger         *slog.Logger

	mu     sync.Mutex
	ready  bool
	userID string
	cancel service.CancelFunc

	observers *observerSet
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	provider service.IdentityProvider,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	token := ""
	if cfg.Auth != nil {
		token = cfg.Auth.BootstrapToken
	}

	return &sessionService{
		provider:       provider,
		bootstrapToken: token,
		logger:         logger,
		observers:      newObserverSet(),
	}
}

// Start registers for identity-change notifications. When the identity
// backend is absent altogether, the session degrades immediately to an
// unauthenticated-but-ready state so the rest of the app is not stuck on
// a permanent loading state.
func (srv *sessionService) Start(ctx context.Context) error {
	if srv.provider == nil {
		srv.logger.Warn("identity provider unavailable, session degrades to unauthenticated-but-ready")
		srv.setState("", true)

		return nil
	}

	srv.mu.Lock()
	if srv.cancel != nil {
		srv.mu.Unlock()

		return nil
	}
	srv.mu.Unlock()

	cancel := srv.provider.OnIdentityChange(func(identity *service.Identity) {
		srv.handleIdentity(ctx, identity)
	})

	srv.mu.Lock()
	srv.cancel = cancel
	srv.mu.Unlock()

	return nil
}

// Close cancels the provider registration.
func (srv *sessionService) Close() {
	srv.mu.Lock()
	cancel := srv.cancel
	srv.cancel = nil
	srv.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Ready reports whether the first identity resolution has completed.
func (srv *sessionService) Ready() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.ready
}

// Identity returns the current user identifier, if any.
func (srv *sessionService) Identity() (string, bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.userID, srv.userID != ""
}

// Session returns a snapshot of the current session state.
func (srv *sessionService) Session() entity.Session {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return entity.Session{UserID: srv.userID, Ready: srv.ready}
}

// OnChange registers an observer fired after every state change.
func (srv *sessionService) OnChange(fn func()) service.CancelFunc {
	return srv.observers.add(fn)
}

// handleIdentity reacts to a single provider notification. A present
// identity is stored and latches readiness; an absent one triggers an
// automatic sign-in, preferring the bootstrap token over anonymous.
func (srv *sessionService) handleIdentity(ctx context.Context, identity *service.Identity) {
	if identity != nil {
		srv.setState(identity.UserID, true)

		return
	}

	// Clear the stored identity before attempting to establish a new one.
	srv.setState("", false)

	var err error
	if srv.bootstrapToken != "" {
		_, err = srv.provider.SignInWithToken(ctx, srv.bootstrapToken)
	} else {
		_, err = srv.provider.SignInAnonymously(ctx)
	}

	if err != nil {
		// Degrade to unauthenticated-but-ready. The error is not retried and
		// not fatal; submissions stay disabled until the user reloads.
		srv.logger.Warn("automatic sign-in failed, continuing without identity",
			slog.Any("error", err))
		srv.setState("", true)

		return
	}

	// On success the provider announces the new identity through another
	// OnIdentityChange notification; readiness latches there.
}

// setState applies a state transition and notifies observers when anything
// observable changed. latchReady never un-latches: once ready, always ready.
func (srv *sessionService) setState(userID string, latchReady bool) {
	srv.mu.Lock()
	changed := srv.userID != userID
	srv.userID = userID
	if latchReady && !srv.ready {
		srv.ready = true
		changed = true
	}
	srv.mu.Unlock()

	if changed {
		srv.observers.notify()
	}
}
