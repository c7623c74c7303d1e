// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"strings"
	"time"
)

// BioMaxLength is the maximum accepted length of a listing bio at submission time.
// It is not re-validated on read.
const BioMaxLength = 200

// ListingStatus is the moderation state gating a listing's public visibility.
type ListingStatus string

const (
	// StatusPendingApproval is assigned to every new listing. Pending listings
	// never appear in the public directory.
	StatusPendingApproval ListingStatus = "pending_approval"

	// StatusApproved is set out-of-band by an administrator and is the sole
	// gate for directory visibility.
	StatusApproved ListingStatus = "approved"

	// StatusRejected marks listings declined during review.
	StatusRejected ListingStatus = "rejected"
)

// Platform identifies the social platform of a creator's profile link.
type Platform string

const (
	PlatformYouTube Platform = "YouTube"
	PlatformTikTok  Platform = "TikTok"
	PlatformTwitter Platform = "Twitter"
	PlatformTwitch  Platform = "Twitch"
	PlatformOther   Platform = "Other"
)

// ParsePlatform maps free-form input onto the known platform set,
// falling back to PlatformOther for anything unrecognized.
func ParsePlatform(s string) Platform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "youtube":
		return PlatformYouTube
	case "tiktok":
		return PlatformTikTok
	case "twitter":
		return PlatformTwitter
	case "twitch":
		return PlatformTwitch
	default:
		return PlatformOther
	}
}

// PlatformLink is a single entry of a creator's ordered social link list.
type PlatformLink struct {
	Platform Platform `json:"platform"`
	URL      string   `json:"url"`
}

// Listing is a creator's promotional offer as stored in the public directory.
type Listing struct {
	ID          string         `json:"id"`                  // Store-assigned document identifier, immutable.
	OwnerID     string         `json:"userId"`              // Identity of the session that created the listing, set once.
	DisplayName string         `json:"robloxUsername"`      // The creator's public Roblox handle.
	PriceRobux  int            `json:"priceRobux"`          // Price per promotion in Robux, never negative.
	Bio         string         `json:"bio"`                 // Short self-description, capped at BioMaxLength on submission.
	AvatarURL   string         `json:"avatarUrl,omitempty"` // Optional avatar image URL.
	Links       []PlatformLink `json:"platformLinks"`       // Ordered social profile links.
	ContactInfo string         `json:"contactEmailOrDiscord"`
	Status      ListingStatus  `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// AvatarOrPlaceholder returns the listing's avatar URL, or a deterministic
// placeholder derived from the first character of the display name when no
// avatar was provided.
func (l *Listing) AvatarOrPlaceholder() string {
	if l.AvatarURL != "" {
		return l.AvatarURL
	}

	initial := "?"
	if trimmed := strings.TrimSpace(l.DisplayName); trimmed != "" {
		initial = strings.ToUpper(string([]rune(trimmed)[0]))
	}

	return fmt.Sprintf("https://placehold.co/150x150/2D3748/E2E8F0?text=%s", initial)
}
