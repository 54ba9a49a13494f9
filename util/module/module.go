package module

import (
	"edu-client/util/eventbus"
	"edu-client/util/httpclient"
	"edu-client/util/registry"

	"github.com/gofiber/fiber/v3"
)

type Module interface {
	APIVersion() string
	Init(reg registry.ServiceRegistry) error
	RegisterRoutes(r fiber.Router)
}

// Runnable สำหรับโมดูลที่มีงาน background เช่น การ poll ข้อมูลจาก service ปลายทาง
// application จะเรียก Start หลังลงทะเบียนทุกโมดูลแล้ว และเรียก Shutdown ตอนปิดระบบ
type Runnable interface {
	Start()
	Shutdown()
}

// ModuleContext รวม dependency กลางที่ทุกโมดูลใช้ร่วมกัน
type ModuleContext struct {
	CourseAPI       *httpclient.Client // client ของ course service (catalog, enroll, user record)
	NotificationAPI *httpclient.Client // client ของ notification service
	Bus             eventbus.EventBus
}

func NewModuleContext(courseAPI, notificationAPI *httpclient.Client, bus eventbus.EventBus) *ModuleContext {
	return &ModuleContext{
		CourseAPI:       courseAPI,
		NotificationAPI: notificationAPI,
		Bus:             bus,
	}
}
