package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"edu-client/application"
	"edu-client/config"
	"edu-client/modules/balance"
	"edu-client/modules/catalog"
	"edu-client/modules/enrollment"
	"edu-client/modules/entitlement"
	"edu-client/modules/identity"
	"edu-client/modules/notification"
	"edu-client/util/eventbus"
	"edu-client/util/httpclient"
	"edu-client/util/logger"
	"edu-client/util/module"
	"edu-client/util/observability"
)

func main() {
	closeLog, err := logger.Init()
	if err != nil {
		panic(err.Error())
	}
	defer closeLog()

	config, err := config.Load()
	if err != nil {
		panic(err.Error())
	}

	shutdownOtlp, err := observability.InitOtlp(context.Background(), config.OtelCollectorAddr, "edu-client")
	if err != nil {
		panic(err.Error())
	}
	defer func() { // ใช่ท่า IIFE เพราะต้องการแสดง error ถ้าปิดไม่ได้
		if err := shutdownOtlp(context.Background()); err != nil {
			logger.Log.Error(fmt.Sprintf("Error shutting down otlp: %v", err))
		}
	}()

	app := application.New(*config)

	courseAPI := httpclient.New(config.CourseServiceURL, config.RemoteTimeout)
	notificationAPI := httpclient.New(config.NotificationServiceURL, config.RemoteTimeout)
	bus := eventbus.NewInMemoryEventBus()
	mCtx := module.NewModuleContext(courseAPI, notificationAPI, bus)
	err = app.RegisterModules(
		identity.NewModule(mCtx),
		entitlement.NewModule(mCtx),
		enrollment.NewModule(mCtx),
		balance.NewModule(mCtx),
		catalog.NewModule(mCtx, config.CatalogPollInterval),
		notification.NewModule(mCtx, config.NotificationPollInterval),
	)
	if err != nil {
		panic(err.Error())
	}

	app.Run()

	// รอสัญญาณการปิด
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Log.Info("Shutting down...")

	app.Shutdown()

	logger.Log.Info("Shutdown complete.")
}
