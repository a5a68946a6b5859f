package usecase

import (
	"context"

	"courtcrowd/internal/domain/service"
)

// ConfirmationUsecase turns presence events into user-visible push confirmations.
type ConfirmationUsecase interface {
	// DeliverPresenceEvent notifies the user's active devices and prunes devices with invalid tokens.
	DeliverPresenceEvent(ctx context.Context, event *service.PresenceEvent) error
}
