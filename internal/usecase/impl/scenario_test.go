package impl

import (
	"context"
	"testing"

	"wick/config"
	"wick/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestColdBootToFirstSubmission walks the full controller stack over fakes:
// boot resolves an anonymous identity, the directory attaches its live query
// and renders the first snapshot, a draft is submitted, and the new listing
// stays out of the directory until a later snapshot carries its approved
// version.
func TestColdBootToFirstSubmission(t *testing.T) {
	provider := newFakeIdentityProvider()
	store := newFakeListingStore()
	publisher := &fakePublisher{}
	cfg := &config.Config{}

	session := NewSessionService(provider, cfg, testLogger())
	directory := NewDirectoryService(store, session, testLogger())
	submission := NewSubmissionService(store, session, publisher, testLogger())
	t.Cleanup(func() {
		directory.Close()
		session.Close()
	})

	ctx := context.Background()

	// Directory starts first: it must wait for session readiness.
	require.NoError(t, directory.Start(ctx))
	assert.True(t, directory.Loading())
	assert.Equal(t, 0, store.subscribeCalls)

	// Session boot signs in anonymously and latches readiness, which pulls
	// the directory subscription up behind it.
	require.NoError(t, session.Start(ctx))
	assert.True(t, session.Ready())
	assert.Equal(t, 1, store.subscribeCalls)

	// First snapshot renders the existing public directory.
	store.emitSnapshot(approvedListings("existing-1", "existing-2"))
	assert.False(t, directory.Loading())
	assert.Len(t, directory.Listings(), 2)

	// Submit a new listing.
	listing, err := submission.Submit(ctx, validDraft())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendingApproval, listing.Status)
	assert.Equal(t, "anon-user-1", listing.OwnerID)

	// The pending listing is invisible until moderation approves it and the
	// live query delivers it.
	assert.Len(t, directory.Listings(), 2)

	approved := *listing
	approved.Status = entity.StatusApproved
	store.emitSnapshot(append(approvedListings("existing-1", "existing-2"), approved))

	listings := directory.Listings()
	require.Len(t, listings, 3)
	assert.Equal(t, listing.ID, listings[2].ID)
}

// TestDegradedBootStillServesDirectory covers the sign-in failure path: the
// session resolves ready without an identity, the public directory loads
// anyway, and submissions are refused without touching the store.
func TestDegradedBootStillServesDirectory(t *testing.T) {
	provider := newFakeIdentityProvider()
	provider.anonErr = assert.AnError
	store := newFakeListingStore()

	session := NewSessionService(provider, &config.Config{}, testLogger())
	directory := NewDirectoryService(store, session, testLogger())
	submission := NewSubmissionService(store, session, nil, testLogger())
	t.Cleanup(func() {
		directory.Close()
		session.Close()
	})

	ctx := context.Background()
	require.NoError(t, directory.Start(ctx))
	require.NoError(t, session.Start(ctx))

	assert.True(t, session.Ready())
	_, authenticated := session.Identity()
	assert.False(t, authenticated)

	// Anonymous-but-ready still reads the public directory.
	require.Equal(t, 1, store.subscribeCalls)
	store.emitSnapshot(approvedListings("a"))
	assert.Len(t, directory.Listings(), 1)

	// Submissions stay disabled.
	_, err := submission.Submit(ctx, validDraft())
	require.Error(t, err)
	assert.Equal(t, 0, store.createCalls)
}
