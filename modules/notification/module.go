package notification

import (
	"context"
	"time"

	"edu-client/modules/notification/handler"
	"edu-client/modules/notification/internal/gateway"
	"edu-client/modules/notification/service"
	"edu-client/util/logger"
	"edu-client/util/module"
	"edu-client/util/poller"
	"edu-client/util/registry"

	"github.com/gofiber/fiber/v3"
)

func NewModule(mCtx *module.ModuleContext, pollInterval time.Duration) module.Module {
	return &moduleImp{mCtx: mCtx, pollInterval: pollInterval}
}

type moduleImp struct {
	mCtx             *module.ModuleContext
	pollInterval     time.Duration
	notificationSvc  service.NotificationService
	notificationPoll *poller.Poller
}

func (m *moduleImp) APIVersion() string {
	return "v1"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry) error {
	notificationGW := gateway.NewNotificationGateway(m.mCtx.NotificationAPI)
	m.notificationSvc = service.NewNotificationService(notificationGW)
	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	hdl := handler.NewNotificationHandler(m.notificationSvc)

	notifications := router.Group("/notifications")
	notifications.Get("", hdl.ListNotifications)
}

func (m *moduleImp) Start() {
	m.notificationPoll = poller.Start(m.pollInterval, func(ctx context.Context) {
		_ = m.notificationSvc.Refresh(logger.NewContext(ctx, logger.Log))
	})
}

func (m *moduleImp) Shutdown() {
	if m.notificationPoll != nil {
		m.notificationPoll.Stop()
	}
}
