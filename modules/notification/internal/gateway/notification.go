package gateway

import (
	"context"
	"encoding/json"
	"time"

	"edu-client/modules/notification/internal/model"
	"edu-client/util/errs"
	"edu-client/util/httpclient"
)

type NotificationGateway interface {
	ListNotifications(ctx context.Context) ([]model.Notification, error)
}

type notificationGateway struct {
	api *httpclient.Client
}

func NewNotificationGateway(api *httpclient.Client) NotificationGateway {
	return &notificationGateway{api: api}
}

type notificationRecord struct {
	ID             json.Number `json:"id"`
	RecipientEmail string      `json:"recipientEmail"`
	Message        string      `json:"message"`
	SentAt         time.Time   `json:"sentAt"`
}

func (g *notificationGateway) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var records []notificationRecord
	if err := g.api.Get(ctx, "/api/notifications", &records); err != nil {
		return nil, errs.HandleRemoteError(err)
	}

	notifications := make([]model.Notification, 0, len(records))
	for _, r := range records {
		notifications = append(notifications, model.Notification{
			ID:             r.ID.String(),
			RecipientEmail: r.RecipientEmail,
			Message:        r.Message,
			SentAt:         r.SentAt,
		})
	}
	return notifications, nil
}
