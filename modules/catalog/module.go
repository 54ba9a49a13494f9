package catalog

import (
	"context"
	"time"

	"edu-client/modules/catalog/handler"
	"edu-client/modules/catalog/internal/gateway"
	"edu-client/modules/catalog/service"
	identityModule "edu-client/modules/identity"
	identityService "edu-client/modules/identity/service"
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
	mCtx         *module.ModuleContext
	pollInterval time.Duration
	catalogSvc   service.CatalogService
	catalogPoll  *poller.Poller
}

func (m *moduleImp) APIVersion() string {
	return "v1"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry) error {
	sessionSvc, err := registry.ResolveAs[identityService.SessionService](reg, identityModule.SessionServiceKey)
	if err != nil {
		return err
	}

	catalogGW := gateway.NewCatalogGateway(m.mCtx.CourseAPI)
	m.catalogSvc = service.NewCatalogService(sessionSvc, catalogGW)

	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	hdl := handler.NewCatalogHandler(m.catalogSvc)

	courses := router.Group("/courses")
	courses.Get("", hdl.ListCourses)
	courses.Post("", hdl.CreateCourse)
}

// Start เริ่ม poll catalog ตามรอบเวลา คอร์สใหม่จากปลายทางจะโผล่เองโดย
// ผู้ใช้ไม่ต้องสั่ง refresh
func (m *moduleImp) Start() {
	m.catalogPoll = poller.Start(m.pollInterval, func(ctx context.Context) {
		_ = m.catalogSvc.Refresh(logger.NewContext(ctx, logger.Log))
	})
}

func (m *moduleImp) Shutdown() {
	if m.catalogPoll != nil {
		m.catalogPoll.Stop()
	}
}
