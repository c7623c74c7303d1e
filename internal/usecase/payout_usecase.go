package usecase

import (
	"wick/internal/domain/entity"
)

// PayoutUsecase computes the informational Robux payout breakdown shown on
// the "How It Works" page. No transaction logic lives here or anywhere else
// in the service.
type PayoutUsecase interface {
	Preview(amountRobux int) (*entity.PayoutBreakdown, error)
}
