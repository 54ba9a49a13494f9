package handler

import (
	"edu-client/modules/notification/dto"
	"edu-client/modules/notification/service"

	"github.com/gofiber/fiber/v3"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// ListNotifications godoc
// @Summary		List Notifications
// @Description	List recent notifications, newest first
// @Tags			Notification
// @Produce		json
// @Success		200	{array}	dto.NotificationResponse
// @Router			/notifications [get]
func (h *NotificationHandler) ListNotifications(c fiber.Ctx) error {
	feed := h.notificationSvc.Feed()
	return c.Status(fiber.StatusOK).JSON(dto.NewNotificationListResponse(feed))
}
