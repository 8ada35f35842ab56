package notifications

import (
	"context"
	"fmt"
	"sync"

	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/app/services/shared/restclient"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

var (
	notificationBackendClientInstance contracts.NotificationBackendClient
	onceNotificationBackendClient     sync.Once
)

type notificationBackendClient struct {
	Rest *restclient.Client
	Log  *zap.Logger
}

func NewNotificationBackendClient(rest *restclient.Client, logger *zap.Logger) contracts.NotificationBackendClient {
	onceNotificationBackendClient.Do(func() {
		notificationBackendClientInstance = &notificationBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return notificationBackendClientInstance
}

func (c *notificationBackendClient) List(ctx context.Context) ([]responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("notificationBackendClient.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := c.Rest.Do(ctx, constvars.MethodGet, constvars.EndpointNotifications, constvars.ResourceNotification, nil)
	if err != nil {
		return nil, err
	}
	notifications, _, err := restclient.DecodeList[responses.Notification](payload, constvars.ResourceNotification)
	return notifications, err
}

func (c *notificationBackendClient) MarkRead(ctx context.Context, notificationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("notificationBackendClient.MarkRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	_, err := c.Rest.Do(ctx, constvars.MethodPost, fmt.Sprintf("%s/%s/read", constvars.EndpointNotifications, notificationID), constvars.ResourceNotification, nil)
	return err
}

func (c *notificationBackendClient) MarkAllRead(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("notificationBackendClient.MarkAllRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	_, err := c.Rest.Do(ctx, constvars.MethodPost, constvars.EndpointNotificationsReadAll, constvars.ResourceNotification, nil)
	return err
}
