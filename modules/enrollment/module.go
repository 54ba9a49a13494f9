package enrollment

import (
	"edu-client/modules/enrollment/handler"
	"edu-client/modules/enrollment/internal/gateway"
	"edu-client/modules/enrollment/service"
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
	mCtx          *module.ModuleContext
	enrollmentSvc service.EnrollmentService
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

	enrollmentGW := gateway.NewEnrollmentGateway(m.mCtx.CourseAPI)
	m.enrollmentSvc = service.NewEnrollmentService(sessionSvc, entitlementSvc, enrollmentGW)

	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	hdl := handler.NewEnrollmentHandler(m.enrollmentSvc)

	courses := router.Group("/courses")
	courses.Post("/:courseID/enroll", hdl.Enroll)
	courses.Post("/:courseID/cancel", hdl.Cancel)
}
