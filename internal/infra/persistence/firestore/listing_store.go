// Package firestore implements the listing store over Cloud Firestore's
// live query snapshots.
package firestore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"wick/config"
	"wick/internal/domain/entity"
	"wick/internal/domain/service"
	"wick/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewClient initializes the Firestore client through the Firebase app.
// Firebase is optional: without a project ID no client is created and the
// directory resolves to an empty collection instead of hanging.
func NewClient(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	return client, nil
}

type listingStore struct {
	client *firestore.Client
	path   string
	logger *slog.Logger
}

// NewListingStore creates the Firestore-backed listing store. The
// collection lives at artifacts/<appID>/public/data/creators.
func NewListingStore(client *firestore.Client, cfg *config.Config, logger *slog.Logger) service.ListingStore {
	if client == nil {
		return nil
	}

	return &listingStore{
		client: client,
		path:   fmt.Sprintf("artifacts/%s/public/data/creators", cfg.Firebase.AppID),
		logger: logger,
	}
}

// SubscribeApproved attaches a live query filtered server-side on approved
// status and pumps full result-set snapshots to onSnapshot until cancelled
// or failed. Callbacks are gated by a liveness flag: once the returned
// cancel completes, none fire again.
func (s *listingStore) SubscribeApproved(
	ctx context.Context,
	onSnapshot func([]entity.Listing),
	onError func(error),
) (service.CancelFunc, error) {
	subCtx, stopCtx := context.WithCancel(ctx)

	query := s.client.Collection(s.path).Where("status", "==", string(entity.StatusApproved))
	snapshots := query.Snapshots(subCtx)

	var mu sync.Mutex
	closed := false

	emit := func(fn func()) {
		mu.Lock()
		defer mu.Unlock()
		if !closed {
			fn()
		}
	}

	go func() {
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled || errors.Is(err, context.Canceled) {
					return
				}
				emit(func() { onError(err) })

				return
			}

			listings, err := collectListings(snap, s.logger)
			if err != nil {
				emit(func() { onError(err) })

				return
			}

			emit(func() { onSnapshot(listings) })
		}
	}()

	var once sync.Once

	cancel := func() {
		once.Do(func() {
			mu.Lock()
			closed = true
			mu.Unlock()
			stopCtx()
		})
	}

	return cancel, nil
}

// CreateListing appends a new document; Firestore assigns both the document
// id and the createdAt server timestamp.
func (s *listingStore) CreateListing(ctx context.Context, listing *entity.Listing) (string, error) {
	ref, _, err := s.client.Collection(s.path).Add(ctx, model.FromEntity(listing))
	if err != nil {
		return "", errors.Wrap(err, "failed to create listing document")
	}

	return ref.ID, nil
}

func collectListings(snap *firestore.QuerySnapshot, logger *slog.Logger) ([]entity.Listing, error) {
	var listings []entity.Listing

	for {
		doc, err := snap.Documents.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read snapshot document")
		}

		var m model.ListingModel
		if err := doc.DataTo(&m); err != nil {
			// A malformed document must not take down the whole directory.
			logger.Warn("skipping malformed listing document",
				slog.String("doc_id", doc.Ref.ID),
				slog.Any("error", err))

			continue
		}

		listings = append(listings, m.ToEntity(doc.Ref.ID))
	}

	return listings, nil
}
