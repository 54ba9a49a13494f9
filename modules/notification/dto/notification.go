package dto

import (
	"time"

	"edu-client/modules/notification/internal/model"
)

type NotificationResponse struct {
	ID             string    `json:"id"`
	RecipientEmail string    `json:"recipient_email"`
	Message        string    `json:"message"`
	SentAt         time.Time `json:"sent_at"`
}

func NewNotificationListResponse(notifications []model.Notification) []*NotificationResponse {
	resp := make([]*NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, &NotificationResponse{
			ID:             n.ID,
			RecipientEmail: n.RecipientEmail,
			Message:        n.Message,
			SentAt:         n.SentAt,
		})
	}
	return resp
}
