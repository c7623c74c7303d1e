package impl

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"

	"wick/internal/domain/entity"
	"wick/internal/domain/service"
	"wick/internal/usecase"
)

// subscription is the handle for one live query attachment. Snapshot and
// error callbacks only apply while their subscription is still the current
// one, which guards retired state against buffered in-flight events.
type subscription struct {
	cancel service.CancelFunc
}

// directoryService implements DirectoryUsecase. It keeps exactly one live
// subscription while its precondition holds (store available AND session
// ready) and replaces the local collection wholesale on every snapshot.
type directoryService struct {
	store   service.ListingStore // nil when the backend is not configured
	session usecase.SessionUsecase
	logger  *slog.Logger

	mu            sync.Mutex
	listings      []entity.Listing
	loading       bool
	closed        bool
	current       *subscription
	sessionCancel service.CancelFunc
	baseCtx       context.Context
}

// NewDirectoryService is the constructor for directoryService. The
// directory starts in the loading state until the first snapshot arrives,
// or until it is determined that no subscription will be established.
func NewDirectoryService(
	store service.ListingStore,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	return &directoryService{
		store:   store,
		session: session,
		logger:  logger,
		loading: true,
	}
}

// Start hooks the subscription precondition to session state changes and
// evaluates it once immediately.
func (srv *directoryService) Start(ctx context.Context) error {
	srv.mu.Lock()
	if srv.closed {
		srv.mu.Unlock()

		return nil
	}
	srv.baseCtx = ctx
	if srv.sessionCancel == nil {
		srv.sessionCancel = srv.session.OnChange(srv.evaluate)
	}
	srv.mu.Unlock()

	srv.evaluate()

	return nil
}

// Close tears down the session observer and any active subscription.
// Safe to call more than once.
func (srv *directoryService) Close() {
	srv.mu.Lock()
	srv.closed = true
	sessionCancel := srv.sessionCancel
	srv.sessionCancel = nil
	sub := srv.current
	srv.current = nil
	srv.mu.Unlock()

	if sessionCancel != nil {
		sessionCancel()
	}
	if sub != nil && sub.cancel != nil {
		sub.cancel()
	}
}

// State returns a copy of the current directory state.
func (srv *directoryService) State() usecase.DirectoryState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return usecase.DirectoryState{
		Loading:  srv.loading,
		Creators: append([]entity.Listing(nil), srv.listings...),
	}
}

// Listings returns a copy of the current collection, in store order. The
// order is store-defined and may change between snapshots; the directory
// deliberately does not sort.
func (srv *directoryService) Listings() []entity.Listing {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return append([]entity.Listing(nil), srv.listings...)
}

// Loading reports whether the first snapshot is still outstanding.
func (srv *directoryService) Loading() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.loading
}

// Featured returns up to n randomly sampled listings for the home page.
func (srv *directoryService) Featured(n int) []entity.Listing {
	listings := srv.Listings()
	if n <= 0 || len(listings) == 0 {
		return nil
	}

	rand.Shuffle(len(listings), func(i, j int) {
		listings[i], listings[j] = listings[j], listings[i]
	})

	if n < len(listings) {
		listings = listings[:n]
	}

	return listings
}

// evaluate re-checks the subscription precondition and establishes or tears
// down the live query accordingly. At most one subscription is active at a
// time.
func (srv *directoryService) evaluate() {
	ready := srv.session.Ready()

	srv.mu.Lock()
	if srv.closed {
		srv.mu.Unlock()

		return
	}

	want := srv.store != nil && ready

	switch {
	case want && srv.current == nil:
		sub := &subscription{}
		srv.current = sub
		srv.loading = true
		ctx := srv.baseCtx
		srv.mu.Unlock()

		srv.subscribe(ctx, sub)

	case !want && srv.current != nil:
		sub := srv.current
		srv.current = nil
		srv.mu.Unlock()

		if sub.cancel != nil {
			sub.cancel()
		}

	case srv.store == nil && ready:
		// Session resolved but no store will ever answer: resolve to an empty
		// directory instead of hanging in the loading state.
		srv.listings = nil
		srv.loading = false
		srv.mu.Unlock()

	default:
		srv.mu.Unlock()
	}
}

func (srv *directoryService) subscribe(ctx context.Context, sub *subscription) {
	if ctx == nil {
		ctx = context.Background()
	}

	cancel, err := srv.store.SubscribeApproved(ctx,
		func(docs []entity.Listing) { srv.applySnapshot(sub, docs) },
		func(err error) { srv.subscriptionFailed(sub, err) },
	)
	if err != nil {
		srv.logger.Warn("directory subscription failed", slog.Any("error", err))
		srv.subscriptionFailed(sub, err)

		return
	}

	srv.mu.Lock()
	if srv.current != sub {
		// Torn down while the subscription was being established.
		srv.mu.Unlock()
		cancel()

		return
	}
	sub.cancel = cancel
	srv.mu.Unlock()
}

// applySnapshot replaces the collection with the snapshot's documents.
// Snapshots for a retired subscription are dropped on the floor.
func (srv *directoryService) applySnapshot(sub *subscription, docs []entity.Listing) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.closed || srv.current != sub {
		return
	}

	srv.listings = append([]entity.Listing(nil), docs...)
	srv.loading = false
}

// subscriptionFailed surfaces an empty directory and stops loading. The
// subscription is not re-established automatically; per the ListingStore
// contract the store has already released it, so no cancel call is needed
// (and calling one from inside the error callback could self-deadlock).
func (srv *directoryService) subscriptionFailed(sub *subscription, err error) {
	srv.mu.Lock()
	if srv.closed || srv.current != sub {
		srv.mu.Unlock()

		return
	}
	srv.current = nil
	srv.listings = nil
	srv.loading = false
	srv.mu.Unlock()

	srv.logger.Warn("directory live query error, surfacing empty collection",
		slog.Any("error", err))
}
