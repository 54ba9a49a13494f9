package application

import (
	"fmt"

	"edu-client/config"
	"edu-client/util/logger"
	"edu-client/util/module"
	"edu-client/util/registry"
)

type Application struct {
	config     config.Config
	httpServer HTTPServer
	registry   registry.ServiceRegistry
	runnables  []module.Runnable
}

func New(config config.Config) *Application {
	return &Application{
		config:     config,
		httpServer: newHTTPServer(config),
		registry:   registry.NewServiceRegistry(),
	}
}

// RegisterModules ลงทะเบียนทุกโมดูลตามลำดับ โมดูลที่มาทีหลัง resolve service
// ของโมดูลก่อนหน้าผ่าน registry ได้
func (app *Application) RegisterModules(modules ...module.Module) error {
	for _, m := range modules {
		if err := m.Init(app.registry); err != nil {
			return fmt.Errorf("failed to init module %T: %w", m, err)
		}

		m.RegisterRoutes(app.httpServer.Group(fmt.Sprintf("/api/%s", m.APIVersion())))

		// เก็บโมดูลที่มีงาน background ไว้ start/stop ตอน Run/Shutdown
		if r, ok := m.(module.Runnable); ok {
			app.runnables = append(app.runnables, r)
		}
	}
	return nil
}

func (app *Application) Run() error {
	app.httpServer.Start()

	for _, r := range app.runnables {
		r.Start()
	}

	return nil
}

func (app *Application) Shutdown() error {
	// หยุด background งานก่อน ไม่ให้ poller อัปเดต state ระหว่างปิดระบบ
	for _, r := range app.runnables {
		r.Shutdown()
	}

	logger.Log.Info("Shutting down server")
	if err := app.httpServer.Shutdown(); err != nil {
		logger.Log.Error(fmt.Sprintf("Error shutting down server: %v", err))
		return err
	}
	logger.Log.Info("Server stopped")

	return nil
}
