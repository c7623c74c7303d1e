package service

import (
	"context"
	"time"
)

// ListingEvent describes a listing submission for downstream consumers,
// e.g. an ops channel watching for reviews waiting in the queue.
type ListingEvent struct {
	ListingID   string    `json:"listing_id"`
	OwnerID     string    `json:"owner_id"`
	DisplayName string    `json:"display_name"`
	PriceRobux  int       `json:"price_robux"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
	RequestID   string    `json:"request_id,omitempty"` // For tracing across services
}

// ListingEventPublisher publishes listing lifecycle events. Publishing is
// best-effort: a failed publish must never fail the submission that
// triggered it.
type ListingEventPublisher interface {
	PublishListingSubmitted(ctx context.Context, event *ListingEvent) error
	Close() error
}
