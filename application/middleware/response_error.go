package middleware

import (
	"errors"

	"edu-client/util/errs"
	"edu-client/util/logger"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ResponseError แปลง error จาก handler/service เป็น HTTP response ที่เดียว
// handler แค่ return error ออกมาก็พอ ไม่ต้องจัดการ status code เอง
func ResponseError() fiber.Handler {
	return func(c fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		var appErr *errs.AppError
		if errors.As(err, &appErr) {
			return c.Status(errs.GetStatusCode(appErr)).JSON(fiber.Map{
				"code":  string(appErr.Type),
				"error": appErr.Message,
			})
		}

		// error ที่ไม่รู้จัก ไม่ส่งรายละเอียดภายในออกไป
		logger.FromContext(c.Context()).Error("unhandled error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":  string(errs.TypeInternal),
			"error": "internal server error",
		})
	}
}
