package impl

import (
	"context"
	"sync"

	"wick/internal/domain/entity"
	"wick/internal/domain/service"
	"wick/internal/usecase"
)

// fakeIdentityProvider is an in-memory IdentityProvider driven by the test.
// Sign-in calls succeed synchronously and announce the new identity through
// the registered callbacks, mirroring the real provider's behavior.
type fakeIdentityProvider struct {
	mu       sync.Mutex
	current  *service.Identity
	cbs      map[int]func(*service.Identity)
	next     int
	anonID   string
	tokenID  string
	anonErr  error
	tokenErr error

	anonCalls  int
	tokenCalls int
}

func newFakeIdentityProvider() *fakeIdentityProvider {
	return &fakeIdentityProvider{
		cbs:     make(map[int]func(*service.Identity)),
		anonID:  "anon-user-1",
		tokenID: "token-user-1",
	}
}

func (p *fakeIdentityProvider) OnIdentityChange(cb func(*service.Identity)) service.CancelFunc {
	p.mu.Lock()
	id := p.next
	p.next++
	p.cbs[id] = cb
	current := p.current
	p.mu.Unlock()

	cb(current)

	return func() {
		p.mu.Lock()
		delete(p.cbs, id)
		p.mu.Unlock()
	}
}

func (p *fakeIdentityProvider) SignInAnonymously(ctx context.Context) (*service.Identity, error) {
	p.mu.Lock()
	p.anonCalls++
	err := p.anonErr
	p.mu.Unlock()

	if err != nil {
		return nil, err
	}

	identity := &service.Identity{UserID: p.anonID}
	p.emit(identity)

	return identity, nil
}

func (p *fakeIdentityProvider) SignInWithToken(ctx context.Context, token string) (*service.Identity, error) {
	p.mu.Lock()
	p.tokenCalls++
	err := p.tokenErr
	p.mu.Unlock()

	if err != nil {
		return nil, err
	}

	identity := &service.Identity{UserID: p.tokenID}
	p.emit(identity)

	return identity, nil
}

// emit sets the current identity and fans it out to every registration.
func (p *fakeIdentityProvider) emit(identity *service.Identity) {
	p.mu.Lock()
	p.current = identity
	cbs := make([]func(*service.Identity), 0, len(p.cbs))
	for _, cb := range p.cbs {
		cbs = append(cbs, cb)
	}
	p.mu.Unlock()

	for _, cb := range cbs {
		cb(identity)
	}
}

// fakeListingStore records creates and lets the test drive snapshot and
// error deliveries by hand.
type fakeListingStore struct {
	mu         sync.Mutex
	onSnapshot func([]entity.Listing)
	onError    func(error)

	subscribeErr error
	createErr    error
	createID     string

	subscribeCalls int
	cancelCalls    int
	createCalls    int
	lastCreated    *entity.Listing
}

func newFakeListingStore() *fakeListingStore {
	return &fakeListingStore{createID: "listing-1"}
}

func (s *fakeListingStore) SubscribeApproved(ctx context.Context, onSnapshot func([]entity.Listing), onError func(error)) (service.CancelFunc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribeCalls++
	if s.subscribeErr != nil {
		return nil, s.subscribeErr
	}

	s.onSnapshot = onSnapshot
	s.onError = onError

	return func() {
		s.mu.Lock()
		s.cancelCalls++
		s.onSnapshot = nil
		s.onError = nil
		s.mu.Unlock()
	}, nil
}

func (s *fakeListingStore) CreateListing(ctx context.Context, listing *entity.Listing) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.createCalls++
	if s.createErr != nil {
		return "", s.createErr
	}
	s.lastCreated = listing

	return s.createID, nil
}

func (s *fakeListingStore) emitSnapshot(docs []entity.Listing) {
	s.mu.Lock()
	fn := s.onSnapshot
	s.mu.Unlock()

	if fn != nil {
		fn(docs)
	}
}

// emitError delivers a terminal error. The subscription is released first,
// matching the contract that onError fires after teardown.
func (s *fakeListingStore) emitError(err error) {
	s.mu.Lock()
	fn := s.onError
	s.onSnapshot = nil
	s.onError = nil
	s.mu.Unlock()

	if fn != nil {
		fn(err)
	}
}

func (s *fakeListingStore) subscribed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.onSnapshot != nil
}

// fakeSession is a hand-driven SessionUsecase for directory and submission
// tests that do not exercise the real session controller.
type fakeSession struct {
	mu        sync.Mutex
	ready     bool
	userID    string
	observers *observerSet
}

func newFakeSession() *fakeSession {
	return &fakeSession{observers: newObserverSet()}
}

func (s *fakeSession) set(userID string, ready bool) {
	s.mu.Lock()
	s.userID = userID
	s.ready = ready
	s.mu.Unlock()

	s.observers.notify()
}

func (s *fakeSession) Start(ctx context.Context) error { return nil }
func (s *fakeSession) Close()                          {}

func (s *fakeSession) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ready
}

func (s *fakeSession) Identity() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userID, s.userID != ""
}

func (s *fakeSession) Session() entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return entity.Session{UserID: s.userID, Ready: s.ready}
}

func (s *fakeSession) OnChange(fn func()) service.CancelFunc {
	return s.observers.add(fn)
}

// fakePublisher records published events.
type fakePublisher struct {
	mu         sync.Mutex
	events     []*service.ListingEvent
	publishErr error
}

func (p *fakePublisher) PublishListingSubmitted(ctx context.Context, event *service.ListingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.publishErr != nil {
		return p.publishErr
	}
	p.events = append(p.events, event)

	return nil
}

func (p *fakePublisher) Close() error { return nil }

var _ service.IdentityProvider = (*fakeIdentityProvider)(nil)
var _ service.ListingStore = (*fakeListingStore)(nil)
var _ usecase.SessionUsecase = (*fakeSession)(nil)
var _ service.ListingEventPublisher = (*fakePublisher)(nil)
