package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "wick/internal/delivery/context"
	domainerrors "wick/internal/domain/errors"
	"wick/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// contactService implements ContactUsecase. Delivery is a deliberate stub:
// the request is validated and logged, nothing is sent to the creator.
type contactService struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(logger *slog.Logger) usecase.ContactUsecase {
	return &contactService{
		validate: validator.New(),
		logger:   logger,
	}
}

// Send validates and records a contact request without delivering it.
func (srv *contactService) Send(ctx context.Context, input *usecase.ContactInput) (string, error) {
	if err := srv.validate.Struct(input); err != nil {
		return "", domainerrors.ErrInvalidContact.WithDetails(err.Error())
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("contact request recorded",
		slog.String("creator_id", input.CreatorID),
		slog.String("from", input.Name),
		slog.Int("budget_robux", input.BudgetRobux),
	)

	recipient := input.CreatorUsername
	if recipient == "" {
		recipient = input.CreatorID
	}

	return fmt.Sprintf("Message prepared for %s. In a real app, this would be sent.", recipient), nil
}
