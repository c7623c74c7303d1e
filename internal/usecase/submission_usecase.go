package usecase

import (
	"context"

	"wick/internal/domain/entity"
)

// SubmissionPhase tracks the transient result state of the last submission.
type SubmissionPhase string

const (
	SubmissionIdle      SubmissionPhase = "idle"
	SubmissionInFlight  SubmissionPhase = "submitting"
	SubmissionSucceeded SubmissionPhase = "succeeded"
	SubmissionFailed    SubmissionPhase = "failed"
)

// SubmissionState is the observable state of the submission controller.
type SubmissionState struct {
	Phase     SubmissionPhase `json:"phase"`
	ListingID string          `json:"listingId,omitempty"` // Set when Phase == succeeded.
	Message   string          `json:"message,omitempty"`   // Set when Phase == failed.
}

// PlatformLinkInput is one entry of the draft's social link list.
type PlatformLinkInput struct {
	Platform string `json:"platform"`
	URL      string `json:"url" validate:"required,url"`
}

// ListingDraft is the raw submission form payload. PriceRobux arrives as
// text and is coerced, never rejected.
type ListingDraft struct {
	DisplayName    string              `json:"robloxUsername" validate:"required"`
	PriceRobuxText string              `json:"priceRobux"`
	AvatarURL      string              `json:"avatarUrl" validate:"omitempty,url"`
	Bio            string              `json:"bio" validate:"required,max=200"`
	ContactInfo    string              `json:"contactEmailOrDiscord" validate:"required"`
	Links          []PlatformLinkInput `json:"platformLinks" validate:"required,min=1,dive"`
}

// SubmissionUsecase validates and normalizes a listing draft, attaches the
// current identity and the initial moderation status, and issues the write.
type SubmissionUsecase interface {
	// Submit issues a single create against the listing collection. It fails
	// with domain errors.ErrNotReady, without any store call, unless the
	// store is available and the session carries an identity.
	Submit(ctx context.Context, draft *ListingDraft) (*entity.Listing, error)

	// State returns the transient result state of the last submission.
	State() SubmissionState

	// Reset returns the controller to the idle phase so the caller may
	// submit again. There is no automatic retry.
	Reset()
}
