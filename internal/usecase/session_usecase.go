// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wick/internal/domain/entity"
	"wick/internal/domain/service"
)

// SessionUsecase owns identity-readiness state for the process.
//
// Readiness latches true exactly once, after the first identity resolution
// completes (with or without a usable identity), and never reverts. The
// identity value itself may still change afterwards, e.g. on re-auth.
type SessionUsecase interface {
	// Start registers with the identity provider and begins tracking state.
	Start(ctx context.Context) error

	// Close cancels the provider registration. Idempotent.
	Close()

	// Ready reports whether the first identity resolution has completed.
	Ready() bool

	// Identity returns the current user identifier, and whether one is present.
	Identity() (string, bool)

	// Session returns a snapshot of the current session state.
	Session() entity.Session

	// OnChange registers an observer fired after every state change. The
	// returned cancel guarantees no callbacks after it returns.
	OnChange(fn func()) service.CancelFunc
}
