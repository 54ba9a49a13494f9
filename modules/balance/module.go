package balance

import (
	"edu-client/modules/balance/handler"
	"edu-client/modules/balance/internal/gateway"
	"edu-client/modules/balance/service"
	entitlementModule "edu-client/modules/entitlement"
	entitlementService "edu-client/modules/entitlement/service"
	identityModule "edu-client/modules/identity"
	identityService "edu-client/modules/identity/service"
	"edu-client/util/module"
	"edu-client/util/registry"

	"github.com/gofiber/fiber/v3"
)

func NewModule(mCtx *module.ModuleContext) module.Module {
	return &moduleImp{mCtx: mCtx}
}

type moduleImp struct {
	mCtx       *module.ModuleContext
	balanceSvc service.BalanceService
}

func (m *moduleImp) APIVersion() string {
	return "v1"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry) error {
	sessionSvc, err := registry.ResolveAs[identityService.SessionService](reg, identityModule.SessionServiceKey)
	if err != nil {
		return err
	}

	entitlementSvc, err := registry.ResolveAs[entitlementService.EntitlementService](reg, entitlementModule.EntitlementServiceKey)
	if err != nil {
		return err
	}

	balanceGW := gateway.NewBalanceGateway(m.mCtx.CourseAPI)
	m.balanceSvc = service.NewBalanceService(sessionSvc, entitlementSvc, balanceGW)

	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	hdl := handler.NewBalanceHandler(m.balanceSvc)

	me := router.Group("/me")
	me.Post("/topup", hdl.TopUp)
}
