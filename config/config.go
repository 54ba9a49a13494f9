package config

import (
	"errors"
	"time"

	"edu-client/util/env"
)

var (
	ErrInvalidHTTPPort          = errors.New("HTTP_PORT must be a positive integer")
	ErrGracefulTimeout          = errors.New("GRACEFUL_TIMEOUT must be a positive duration")
	ErrCourseServiceURL         = errors.New("COURSE_SERVICE_URL must be set")
	ErrNotificationServiceURL   = errors.New("NOTIFICATION_SERVICE_URL must be set")
	ErrRemoteTimeout            = errors.New("REMOTE_TIMEOUT must be a positive duration")
	ErrCatalogPollInterval      = errors.New("CATALOG_POLL_INTERVAL must be a positive duration")
	ErrNotificationPollInterval = errors.New("NOTIFICATION_POLL_INTERVAL must be a positive duration")
)

// รวมการโหลดค่าคอนฟิกทั้งหมดไว้ในจุดเดียว
type Config struct {
	HTTPPort                 int
	GracefulTimeout          time.Duration
	CourseServiceURL         string
	NotificationServiceURL   string
	RemoteTimeout            time.Duration
	CatalogPollInterval      time.Duration
	NotificationPollInterval time.Duration
	OtelCollectorAddr        string
	GatewayHost              string
	GatewayBasePath          string
}

func Load() (*Config, error) {
	config := &Config{
		HTTPPort:                 env.GetIntDefault("HTTP_PORT", 8090),
		GracefulTimeout:          env.GetDurationDefault("GRACEFUL_TIMEOUT", 5*time.Second),
		CourseServiceURL:         env.GetDefault("COURSE_SERVICE_URL", "http://localhost:8081"),
		NotificationServiceURL:   env.GetDefault("NOTIFICATION_SERVICE_URL", "http://localhost:8082"),
		RemoteTimeout:            env.GetDurationDefault("REMOTE_TIMEOUT", 10*time.Second),
		CatalogPollInterval:      env.GetDurationDefault("CATALOG_POLL_INTERVAL", 30*time.Second),
		NotificationPollInterval: env.GetDurationDefault("NOTIFICATION_POLL_INTERVAL", 2*time.Second),
		OtelCollectorAddr:        env.Get("OTEL_COLLECTOR_ADDR"),
		GatewayHost:              env.Get("GATEWAY_HOST"),
		GatewayBasePath:          env.GetDefault("GATEWAY_BASEURL", "/api/v1"),
	}
	err := config.Validate()
	if err != nil {
		return nil, err
	}
	return config, err
}

func (c *Config) Validate() error {
	if c.HTTPPort <= 0 {
		return ErrInvalidHTTPPort
	}
	if c.GracefulTimeout <= 0 {
		return ErrGracefulTimeout
	}
	if len(c.CourseServiceURL) == 0 {
		return ErrCourseServiceURL
	}
	if len(c.NotificationServiceURL) == 0 {
		return ErrNotificationServiceURL
	}
	if c.RemoteTimeout <= 0 {
		return ErrRemoteTimeout
	}
	if c.CatalogPollInterval <= 0 {
		return ErrCatalogPollInterval
	}
	if c.NotificationPollInterval <= 0 {
		return ErrNotificationPollInterval
	}

	return nil
}
