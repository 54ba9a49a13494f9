package entitlement

import (
	"edu-client/modules/entitlement/handler"
	"edu-client/modules/entitlement/internal/gateway"
	identityIntegration "edu-client/modules/entitlement/internal/integration/identity"
	"edu-client/modules/entitlement/service"
	identityModule "edu-client/modules/identity"
	identityService "edu-client/modules/identity/service"
	"edu-client/util/module"
	"edu-client/util/registry"

	"github.com/gofiber/fiber/v3"
)

const EntitlementServiceKey registry.ServiceKey = "entitlement.EntitlementService"

func NewModule(mCtx *module.ModuleContext) module.Module {
	return &moduleImp{mCtx: mCtx}
}

type moduleImp struct {
	mCtx           *module.ModuleContext
	entitlementSvc service.EntitlementService
}

func (m *moduleImp) APIVersion() string {
	return "v1"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry) error {
	sessionSvc, err := registry.ResolveAs[identityService.SessionService](reg, identityModule.SessionServiceKey)
	if err != nil {
		return err
	}

	userGW := gateway.NewUserRecordGateway(m.mCtx.CourseAPI)
	m.entitlementSvc = service.NewEntitlementService(sessionSvc, userGW)

	// ผูกการล้าง/sync state เข้ากับ event เปลี่ยน identity
	m.mCtx.Bus.Subscribe(
		identityService.IdentityChangedEventName,
		identityIntegration.NewIdentityChangedHandler(m.entitlementSvc),
	)

	reg.Register(EntitlementServiceKey, m.entitlementSvc)

	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	hdl := handler.NewEntitlementHandler(m.entitlementSvc)

	me := router.Group("/me")
	me.Get("", hdl.OwnedCoursesAndBalance)
}
