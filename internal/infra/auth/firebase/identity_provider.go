// Package firebase implements the identity provider against the Firebase
// Identity Toolkit REST API, mirroring the sign-in flows of the web SDK:
// anonymous sign-up, custom-token exchange, and silent token refresh.
package firebase

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"wick/config"
	"wick/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	identityToolkitBaseURL = "https://identitytoolkit.googleapis.com/v1"
	secureTokenURL         = "https://securetoken.googleapis.com/v1/token"

	requestTimeout = 15 * time.Second

	// refreshSlack is subtracted from the token lifetime so the refresh
	// lands before expiry.
	refreshSlack = 5 * time.Minute
)

// signInResponse is the shared shape of the signUp and
// signInWithCustomToken responses.
type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"` // Seconds, as decimal text.
	LocalID      string `json:"localId"`
}

// refreshResponse is the secure token endpoint response.
type refreshResponse struct {
	UserID       string `json:"user_id"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
}

// callback wraps an identity observer with a liveness flag so a cancelled
// registration receives no further notifications.
type callback struct {
	mu     sync.Mutex
	closed bool
	fn     func(*service.Identity)
}

func (c *callback) deliver(identity *service.Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.fn(identity)
	}
}

type identityProvider struct {
	client *resty.Client
	apiKey string
	logger *slog.Logger

	mu           sync.Mutex
	current      *service.Identity
	refreshToken string
	refreshTimer *time.Timer
	nextID       int
	callbacks    map[int]*callback
}

// NewIdentityProvider creates the REST-backed identity provider. Firebase is
// optional: without an API key the provider is absent and the session layer
// degrades to an unauthenticated-but-ready state.
func NewIdentityProvider(cfg *config.Config, logger *slog.Logger) (service.IdentityProvider, error) {
	if cfg.Firebase == nil || cfg.Firebase.APIKey == "" {
		return nil, nil
	}

	client := resty.New().
		SetBaseURL(identityToolkitBaseURL).
		SetTimeout(requestTimeout)

	return &identityProvider{
		client:    client,
		apiKey:    cfg.Firebase.APIKey,
		logger:    logger,
		callbacks: make(map[int]*callback),
	}, nil
}

// OnIdentityChange registers cb and immediately delivers the current state,
// so a late subscriber still observes the initial resolution.
func (p *identityProvider) OnIdentityChange(fn func(identity *service.Identity)) service.CancelFunc {
	cb := &callback{fn: fn}

	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.callbacks[id] = cb
	current := p.current
	p.mu.Unlock()

	cb.deliver(current)

	var once sync.Once

	return func() {
		once.Do(func() {
			cb.mu.Lock()
			cb.closed = true
			cb.mu.Unlock()

			p.mu.Lock()
			delete(p.callbacks, id)
			p.mu.Unlock()
		})
	}
}

// SignInAnonymously creates a fresh anonymous user.
func (p *identityProvider) SignInAnonymously(ctx context.Context) (*service.Identity, error) {
	return p.signIn(ctx, "/accounts:signUp", map[string]any{
		"returnSecureToken": true,
	})
}

// SignInWithToken exchanges an externally minted custom token for a session.
func (p *identityProvider) SignInWithToken(ctx context.Context, token string) (*service.Identity, error) {
	return p.signIn(ctx, "/accounts:signInWithCustomToken", map[string]any{
		"token":             token,
		"returnSecureToken": true,
	})
}

func (p *identityProvider) signIn(ctx context.Context, endpoint string, body map[string]any) (*service.Identity, error) {
	result := new(signInResponse)

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		SetBody(body).
		SetResult(result).
		Post(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "identity toolkit %s request failed", endpoint)
	}
	if resp.IsError() {
		return nil, errors.Errorf("identity toolkit %s rejected: %s", endpoint, resp.Status())
	}
	if result.LocalID == "" {
		return nil, errors.Errorf("identity toolkit %s returned no user id", endpoint)
	}

	identity := &service.Identity{UserID: result.LocalID}
	p.setIdentity(identity, result.RefreshToken, parseExpiry(result.ExpiresIn))

	return identity, nil
}

// refresh silently renews the session through the secure token endpoint,
// keeping the same user id. A failed refresh clears the identity, which the
// session layer answers with a fresh automatic sign-in.
func (p *identityProvider) refresh() {
	p.mu.Lock()
	refreshToken := p.refreshToken
	p.mu.Unlock()

	if refreshToken == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result := new(refreshResponse)

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		SetFormData(map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": refreshToken,
		}).
		SetResult(result).
		Post(secureTokenURL)

	if err != nil || resp.IsError() || result.UserID == "" {
		p.logger.Warn("identity token refresh failed, clearing identity", slog.Any("error", err))
		p.setIdentity(nil, "", 0)

		return
	}

	p.setIdentity(&service.Identity{UserID: result.UserID}, result.RefreshToken, parseExpiry(result.ExpiresIn))
}

// setIdentity updates state, reschedules the refresh timer and notifies
// every live callback.
func (p *identityProvider) setIdentity(identity *service.Identity, refreshToken string, ttl time.Duration) {
	p.mu.Lock()
	p.current = identity
	p.refreshToken = refreshToken
	if p.refreshTimer != nil {
		p.refreshTimer.Stop()
		p.refreshTimer = nil
	}
	if identity != nil && ttl > refreshSlack {
		p.refreshTimer = time.AfterFunc(ttl-refreshSlack, p.refresh)
	}
	callbacks := make([]*callback, 0, len(p.callbacks))
	for _, cb := range p.callbacks {
		callbacks = append(callbacks, cb)
	}
	p.mu.Unlock()

	for _, cb := range callbacks {
		cb.deliver(identity)
	}
}

func parseExpiry(seconds string) time.Duration {
	n, err := strconv.Atoi(seconds)
	if err != nil || n <= 0 {
		return 0
	}

	return time.Duration(n) * time.Second
}
