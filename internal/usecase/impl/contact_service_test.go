package impl

import (
	"context"
	"testing"

	domainerrors "wick/internal/domain/errors"
	"wick/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactInput() *usecase.ContactInput {
	return &usecase.ContactInput{
		CreatorID:       "creator-1",
		CreatorUsername: "BuilderBob",
		Name:            "Alice",
		RobloxUsername:  "alice_dev",
		BudgetRobux:     1000,
		GameLink:        "https://www.roblox.com/games/123456",
		Message:         "Would love a shoutout for my new obby.",
		ContactInfo:     "alice@example.com",
	}
}

func TestContactService_Send(t *testing.T) {
	service := NewContactService(testLogger())

	status, err := service.Send(context.Background(), validContactInput())
	require.NoError(t, err)
	assert.Equal(t, "Message prepared for BuilderBob. In a real app, this would be sent.", status)
}

func TestContactService_Send_FallsBackToCreatorID(t *testing.T) {
	service := NewContactService(testLogger())

	input := validContactInput()
	input.CreatorUsername = ""

	status, err := service.Send(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "Message prepared for creator-1. In a real app, this would be sent.", status)
}

func TestContactService_Send_ValidationFailure(t *testing.T) {
	service := NewContactService(testLogger())

	tests := []struct {
		name   string
		mutate func(*usecase.ContactInput)
	}{
		{name: "missing message", mutate: func(in *usecase.ContactInput) { in.Message = "" }},
		{name: "missing creator", mutate: func(in *usecase.ContactInput) { in.CreatorID = "" }},
		{name: "invalid game link", mutate: func(in *usecase.ContactInput) { in.GameLink = "not-a-url" }},
		{name: "negative budget", mutate: func(in *usecase.ContactInput) { in.BudgetRobux = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validContactInput()
			tt.mutate(input)

			_, err := service.Send(context.Background(), input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "INVALID_CONTACT", appErr.ErrorCode())
		})
	}
}
