package usecase

import (
	"context"
)

// ContactInput is the contact form payload sent to a listed creator.
type ContactInput struct {
	CreatorID       string `json:"creatorId" validate:"required"`
	CreatorUsername string `json:"creatorUsername"`
	Name            string `json:"name" validate:"required"`
	RobloxUsername  string `json:"robloxUsername" validate:"required"`
	BudgetRobux     int    `json:"budgetRobux" validate:"gte=0"`
	GameLink        string `json:"gameLink" validate:"required,url"`
	Message         string `json:"message" validate:"required"`
	ContactInfo     string `json:"contactInfo" validate:"required"`
}

// ContactUsecase accepts contact requests for creators.
//
// Delivery is intentionally a stub: the request is validated and logged,
// nothing is sent anywhere. The returned string is the status line shown
// to the sender.
type ContactUsecase interface {
	Send(ctx context.Context, input *ContactInput) (string, error)
}
