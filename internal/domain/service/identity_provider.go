// Package service defines the interfaces for infrastructure collaborators
// the use cases depend on.
package service

import "context"

// Identity is the opaque per-session actor reference issued by the
// identity provider.
type Identity struct {
	UserID string
}

// CancelFunc tears down a registration or subscription. It is idempotent,
// and implementations guarantee no callbacks fire after it returns.
type CancelFunc func()

// IdentityProvider abstracts the external authentication backend.
//
// The provider owns the authoritative identity state; consumers observe it
// through OnIdentityChange and request transitions with the SignIn methods.
type IdentityProvider interface {
	// OnIdentityChange registers a callback fired on every identity change.
	// The registration immediately delivers the current state, so a late
	// subscriber still observes the initial resolution. A nil identity means
	// no user is signed in.
	OnIdentityChange(cb func(identity *Identity)) CancelFunc

	// SignInAnonymously obtains a fresh anonymous identity.
	// Success is also announced through OnIdentityChange callbacks.
	SignInAnonymously(ctx context.Context) (*Identity, error)

	// SignInWithToken exchanges an externally supplied bootstrap credential
	// for an identity. Success is also announced through OnIdentityChange.
	SignInWithToken(ctx context.Context, token string) (*Identity, error)
}
