package usecase

import (
	"context"

	"wick/internal/domain/entity"
)

// DirectoryState is the read model the view layer renders.
type DirectoryState struct {
	Loading  bool             `json:"loading"`
	Creators []entity.Listing `json:"creators"`
}

// DirectoryUsecase keeps an in-memory ordered collection of approved
// listings in sync with the remote live query.
//
// The subscription is active only while the store is available and the
// session is ready; anonymous sessions still read the public directory.
// Every snapshot replaces the collection wholesale.
type DirectoryUsecase interface {
	// Start begins evaluating the subscription precondition and keeps
	// re-evaluating it as session state changes.
	Start(ctx context.Context) error

	// Close tears down any active subscription. Idempotent.
	Close()

	// State returns a copy of the current directory state.
	State() DirectoryState

	// Listings returns a copy of the current collection, in store order.
	Listings() []entity.Listing

	// Loading reports whether the first snapshot of the active subscription
	// is still outstanding.
	Loading() bool

	// Featured returns up to n randomly sampled listings from the current
	// collection, for the home page spotlight.
	Featured(n int) []entity.Listing
}
