package handler

import (
	"edu-client/modules/enrollment/service"
	"edu-client/util/errs"

	"github.com/gofiber/fiber/v3"
)

type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
}

func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc}
}

// Enroll godoc
// @Summary		Enroll Course
// @Description	Purchase a course for the signed-in user
// @Tags			Enrollment
// @Produce		json
// @Param			courseID	path	string	true	"course id"
// @Failure		401
// @Failure		409
// @Failure		422
// @Success		200	{object}	dto.EnrollmentResult
// @Router			/courses/{courseID}/enroll [post]
func (h *EnrollmentHandler) Enroll(c fiber.Ctx) error {
	courseID := c.Params("courseID")
	if len(courseID) == 0 {
		return errs.InputValidationError("invalid course id")
	}

	// ส่งไปที่ Service Layer
	resp, err := h.enrollmentSvc.Enroll(c.Context(), courseID)
	if err != nil {
		// จัดการ error response ที่ middleware
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// Cancel godoc
// @Summary		Cancel Enrollment
// @Description	Refund a course for the signed-in user
// @Tags			Enrollment
// @Produce		json
// @Param			courseID	path	string	true	"course id"
// @Failure		401
// @Failure		409
// @Failure		422
// @Success		200	{object}	dto.EnrollmentResult
// @Router			/courses/{courseID}/cancel [post]
func (h *EnrollmentHandler) Cancel(c fiber.Ctx) error {
	courseID := c.Params("courseID")
	if len(courseID) == 0 {
		return errs.InputValidationError("invalid course id")
	}

	resp, err := h.enrollmentSvc.Cancel(c.Context(), courseID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
