package identity

import (
	"edu-client/modules/identity/handler"
	"edu-client/modules/identity/service"
	"edu-client/util/module"
	"edu-client/util/registry"

	"github.com/gofiber/fiber/v3"
)

// key สำหรับ export service ให้โมดูลอื่น resolve ผ่าน registry
const (
	SessionServiceKey      registry.ServiceKey = "identity.SessionService"
	CredentialInspectorKey registry.ServiceKey = "identity.CredentialInspector"
)

func NewModule(mCtx *module.ModuleContext) module.Module {
	return &moduleImp{mCtx: mCtx}
}

type moduleImp struct {
	mCtx       *module.ModuleContext
	sessionSvc service.SessionService
}

func (m *moduleImp) APIVersion() string {
	return "v1"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry) error {
	inspector := service.NewCredentialInspector()
	m.sessionSvc = service.NewSessionService(inspector, m.mCtx.Bus)

	reg.Register(CredentialInspectorKey, inspector)
	reg.Register(SessionServiceKey, m.sessionSvc)

	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	hdl := handler.NewSessionHandler(m.sessionSvc)

	session := router.Group("/session")
	session.Post("", hdl.SignIn)
	session.Get("", hdl.CurrentSession)
	session.Delete("", hdl.SignOut)
}
