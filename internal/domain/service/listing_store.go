package service

import (
	"context"

	"wick/internal/domain/entity"
)

// ListingStore abstracts the remote listing collection: a filtered live
// query plus an append-only create. There is no update or delete path;
// moderation happens out-of-band directly against the backend.
type ListingStore interface {
	// SubscribeApproved opens the live query over approved listings.
	// onSnapshot receives the full result set on every change, in store
	// order; each delivery replaces the previous one entirely. onError is
	// called at most once; afterwards no further snapshots arrive and the
	// subscription is already released, so the caller must not cancel from
	// inside the error callback. The returned CancelFunc stops the
	// subscription and guarantees no callbacks fire after it returns.
	SubscribeApproved(ctx context.Context, onSnapshot func([]entity.Listing), onError func(error)) (CancelFunc, error)

	// CreateListing appends a new document to the collection and returns
	// the store-assigned identifier. The store assigns CreatedAt.
	CreateListing(ctx context.Context, listing *entity.Listing) (string, error)
}
