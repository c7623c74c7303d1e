package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	deliverycontext "wick/internal/delivery/context"
	"wick/internal/domain/entity"
	domainerrors "wick/internal/domain/errors"
	"wick/internal/domain/service"
	"wick/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// submissionService implements SubmissionUsecase. It issues exactly one
// create per accepted draft; there is no update path to the collection.
type submissionService struct {
	store     service.ListingStore
	session   usecase.SessionUsecase
	publisher service.ListingEventPublisher // optional, best-effort
	validate  *validator.Validate
	logger    *slog.Logger

	mu    sync.Mutex
	state usecase.SubmissionState
}

// NewSubmissionService is the constructor for submissionService.
func NewSubmissionService(
	store service.ListingStore,
	session usecase.SessionUsecase,
	publisher service.ListingEventPublisher,
	logger *slog.Logger,
) usecase.SubmissionUsecase {
	return &submissionService{
		store:     store,
		session:   session,
		publisher: publisher,
		validate:  validator.New(),
		logger:    logger,
		state:     usecase.SubmissionState{Phase: usecase.SubmissionIdle},
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *submissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit validates and normalizes the draft, attaches the current identity
// and the pending moderation status, and performs the single create.
func (srv *submissionService) Submit(ctx context.Context, draft *usecase.ListingDraft) (*entity.Listing, error) {
	userID, authenticated := srv.session.Identity()
	if srv.store == nil || !authenticated {
		// Precondition failed: no network call is made.
		srv.setState(usecase.SubmissionState{
			Phase:   usecase.SubmissionFailed,
			Message: domainerrors.ErrNotReady.Message(),
		})

		return nil, domainerrors.ErrNotReady
	}

	if err := srv.validate.Struct(draft); err != nil {
		srv.setState(usecase.SubmissionState{
			Phase:   usecase.SubmissionFailed,
			Message: domainerrors.ErrInvalidListing.Message(),
		})

		return nil, domainerrors.ErrInvalidListing.WithDetails(err.Error())
	}

	listing := srv.buildListing(userID, draft)

	srv.setState(usecase.SubmissionState{Phase: usecase.SubmissionInFlight})

	id, err := srv.store.CreateListing(ctx, listing)
	if err != nil {
		srv.log(ctx).Warn("listing create rejected by store", slog.Any("error", err))
		srv.setState(usecase.SubmissionState{
			Phase:   usecase.SubmissionFailed,
			Message: "Failed to submit listing: " + err.Error(),
		})

		return nil, domainerrors.ErrSubmissionRejected.WithDetails(err.Error())
	}

	listing.ID = id
	srv.publishSubmitted(ctx, listing)
	srv.setState(usecase.SubmissionState{
		Phase:     usecase.SubmissionSucceeded,
		ListingID: id,
	})

	srv.log(ctx).Info("listing submitted for approval",
		slog.String("listing_id", id),
		slog.String("owner_id", userID),
	)

	// The new listing does not enter the local directory: it stays invisible
	// until moderation approves it and the live query delivers a snapshot.
	return listing, nil
}

// State returns the transient result state of the last submission.
func (srv *submissionService) State() usecase.SubmissionState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state
}

// Reset returns the controller to the idle phase.
func (srv *submissionService) Reset() {
	srv.setState(usecase.SubmissionState{Phase: usecase.SubmissionIdle})
}

func (srv *submissionService) setState(state usecase.SubmissionState) {
	srv.mu.Lock()
	srv.state = state
	srv.mu.Unlock()
}

// buildListing normalizes the draft into the outgoing record. Identity,
// moderation status and creation time are always controller-assigned,
// overriding anything the draft carried.
func (srv *submissionService) buildListing(userID string, draft *usecase.ListingDraft) *entity.Listing {
	links := make([]entity.PlatformLink, 0, len(draft.Links))
	for _, link := range draft.Links {
		links = append(links, entity.PlatformLink{
			Platform: entity.ParsePlatform(link.Platform),
			URL:      strings.TrimSpace(link.URL),
		})
	}

	return &entity.Listing{
		OwnerID:     userID,
		DisplayName: strings.TrimSpace(draft.DisplayName),
		PriceRobux:  normalizePrice(draft.PriceRobuxText),
		Bio:         draft.Bio,
		AvatarURL:   strings.TrimSpace(draft.AvatarURL),
		Links:       links,
		ContactInfo: strings.TrimSpace(draft.ContactInfo),
		Status:      entity.StatusPendingApproval,
	}
}

// normalizePrice coerces the price text to a non-negative integer.
// Unparsable input becomes 0 rather than rejecting the submission; negative
// input is clamped to 0 to keep the non-negativity invariant.
func normalizePrice(text string) int {
	price, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || price < 0 {
		return 0
	}

	return price
}

// publishSubmitted emits a best-effort listing event so operators hear
// about reviews waiting in the queue. Publish failures never fail the
// submission.
func (srv *submissionService) publishSubmitted(ctx context.Context, listing *entity.Listing) {
	if srv.publisher == nil {
		return
	}

	event := &service.ListingEvent{
		ListingID:   listing.ID,
		OwnerID:     listing.OwnerID,
		DisplayName: listing.DisplayName,
		PriceRobux:  listing.PriceRobux,
		Status:      string(listing.Status),
		SubmittedAt: time.Now(),
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := srv.publisher.PublishListingSubmitted(ctx, event); err != nil {
		srv.log(ctx).Warn("failed to publish listing event", slog.Any("error", err))
	}
}
