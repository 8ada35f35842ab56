package contracts

import (
	"context"

	"safeclinic-web/internal/pkg/dto/responses"
)

type NotificationBackendClient interface {
	List(ctx context.Context) ([]responses.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context) error
}
