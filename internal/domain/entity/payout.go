package entity

// PayoutBreakdown documents how a Robux payment splits between Roblox, the
// platform and the creator. Informational only: the platform never moves
// Robux itself, all transactions happen through Roblox's own mechanisms.
type PayoutBreakdown struct {
	GrossRobux       int     `json:"grossRobux"`       // Amount the advertiser pays.
	RobloxCut        int     `json:"robloxCut"`        // Roblox's transaction fee.
	PlatformCut      int     `json:"platformCut"`      // The platform's commission, taken after Roblox's cut.
	CreatorNet       int     `json:"creatorNet"`       // What the creator ends up with.
	RobloxCutRate    float64 `json:"robloxCutRate"`    // e.g. 0.30
	PlatformCutRate  float64 `json:"platformCutRate"`  // e.g. 0.10, applied to the post-Roblox remainder.
	EffectiveNetRate float64 `json:"effectiveNetRate"` // CreatorNet / GrossRobux.
}
