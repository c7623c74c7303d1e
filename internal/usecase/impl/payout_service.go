package impl

import (
	"math"

	"wick/config"
	"wick/internal/domain/entity"
	domainerrors "wick/internal/domain/errors"
	"wick/internal/usecase"
)

const (
	defaultRobloxCutRate   = 0.30
	defaultPlatformCutRate = 0.10
)

// payoutService implements PayoutUsecase. The breakdown is informational:
// Roblox takes its transaction fee first, then the platform commission
// applies to the remainder, and the creator nets the rest.
type payoutService struct {
	robloxCutRate   float64
	platformCutRate float64
}

// NewPayoutService is the constructor for payoutService.
func NewPayoutService(cfg *config.Config) usecase.PayoutUsecase {
	robloxRate := defaultRobloxCutRate
	platformRate := defaultPlatformCutRate
	if cfg.Marketplace != nil {
		if cfg.Marketplace.RobloxCutRate > 0 {
			robloxRate = cfg.Marketplace.RobloxCutRate
		}
		if cfg.Marketplace.PlatformCutRate > 0 {
			platformRate = cfg.Marketplace.PlatformCutRate
		}
	}

	return &payoutService{
		robloxCutRate:   robloxRate,
		platformCutRate: platformRate,
	}
}

// Preview computes the payout split for a gross Robux amount.
func (srv *payoutService) Preview(amountRobux int) (*entity.PayoutBreakdown, error) {
	if amountRobux < 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("amount must not be negative")
	}

	robloxCut := int(math.Round(float64(amountRobux) * srv.robloxCutRate))
	remainder := amountRobux - robloxCut
	platformCut := int(math.Round(float64(remainder) * srv.platformCutRate))
	creatorNet := remainder - platformCut

	effective := 0.0
	if amountRobux > 0 {
		effective = float64(creatorNet) / float64(amountRobux)
	}

	return &entity.PayoutBreakdown{
		GrossRobux:       amountRobux,
		RobloxCut:        robloxCut,
		PlatformCut:      platformCut,
		CreatorNet:       creatorNet,
		RobloxCutRate:    srv.robloxCutRate,
		PlatformCutRate:  srv.platformCutRate,
		EffectiveNetRate: effective,
	}, nil
}
