package entity

// Session is the local view of the current authenticated actor.
type Session struct {
	// UserID is the opaque identifier issued by the identity provider.
	// Empty before any sign-in completes, or after a definitive sign-in failure.
	UserID string `json:"userId,omitempty"`

	// Ready reports whether the first identity resolution has completed,
	// successfully or not. It latches true exactly once per process lifetime
	// and never reverts; the identity itself may still change afterwards.
	Ready bool `json:"ready"`
}

// Authenticated reports whether the session currently carries an identity.
func (s Session) Authenticated() bool {
	return s.UserID != ""
}
