package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"edu-client/util/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func Observability() fiber.Handler {

	tracer := otel.GetTracerProvider().Tracer("http_request")
	meter := otel.GetMeterProvider().Meter("http_request")

	// ----- OTel Instruments -----
	requestCounter, _ := meter.Int64Counter("http_requests_total")
	requestDuration, _ := meter.Float64Histogram("http_request_duration_ms")
	inflightCounter, _ := meter.Int64UpDownCounter("http_requests_inflight")
	errorCounter, _ := meter.Int64Counter("http_requests_error_total")

	// Skip Paths ที่ไม่ต้องการ trace
	skipPaths := map[string]bool{
		"/":        true,
		"/health":  true,
		"/metrics": true,
	}
	skipPrefixes := []string{"/docs", "/favicon"}

	return func(c fiber.Ctx) error {
		start := time.Now()
		method := c.Method()
		path := c.Path()

		// ตรวจสอบ path ที่เรียกมา
		skip := skipPaths[path]
		for _, prefix := range skipPrefixes {
			if strings.HasPrefix(path, prefix) {
				skip = true
				break
			}
		}

		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// Bind Request ID ลง Response Header
		c.Set("X-Request-ID", requestID)

		var (
			ctx  context.Context
			span trace.Span
		)

		if skip {
			ctx = c.Context()
		} else {
			// สร้าง span ใหม่
			ctx, span = tracer.Start(c.Context(), "HTTP "+method+" "+path,
				trace.WithAttributes(attribute.String("http.request_id", requestID)),
				trace.WithAttributes(attribute.String("http.request.method", method)),
				trace.WithAttributes(attribute.String("url.path", path)),
			)
			defer span.End()
		}

		// สร้าง child logger แล้วฝากไว้ใน context ให้ layer อื่นใช้ต่อ
		reqLogger := logger.With(
			zap.String("request_id", requestID),
			zap.String("http.request.method", method),
			zap.String("url.path", path),
		)
		ctx = logger.NewContext(ctx, reqLogger)
		c.SetContext(ctx)

		if !skip {
			inflightCounter.Add(ctx, 1)
		}

		err := c.Next()

		duration := time.Since(start).Milliseconds()
		status := c.Response().StatusCode()

		if !skip {
			labels := []attribute.KeyValue{
				attribute.String("http.request.method", method),
				attribute.String("url.path", path),
				attribute.Int("http.response.status_code", status),
			}

			requestCounter.Add(ctx, 1, metric.WithAttributes(labels...))
			requestDuration.Record(ctx, float64(duration), metric.WithAttributes(labels...))
			inflightCounter.Add(ctx, -1)

			if status >= 400 {
				errorCounter.Add(ctx, 1, metric.WithAttributes(labels...))
			}

			span.SetAttributes(
				attribute.Int("http.response.status_code", status),
			)
			if status >= 400 {
				span.SetStatus(codes.Error, "")
			} else {
				span.SetStatus(codes.Ok, "")
			}

			reqLogger.Info(fmt.Sprintf("%d - %s %s", status, method, path),
				zap.Int("http.response.status_code", status),
				zap.Int64("duration_ms", duration),
				zap.String("trace_id", span.SpanContext().TraceID().String()),
				zap.String("span_id", span.SpanContext().SpanID().String()),
			)
		}

		return err
	}
}
