package handler

import (
	"edu-client/modules/catalog/dto"
	"edu-client/modules/catalog/service"
	"edu-client/util/errs"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// ListCourses godoc
// @Summary		List Courses
// @Description	List all courses in the catalog
// @Tags			Catalog
// @Produce		json
// @Success		200	{array}	dto.CourseResponse
// @Router			/courses [get]
func (h *CatalogHandler) ListCourses(c fiber.Ctx) error {
	courses := h.catalogSvc.Courses()
	return c.Status(fiber.StatusOK).JSON(dto.NewCourseListResponse(courses))
}

// CreateCourse godoc
// @Summary		Create Course
// @Description	Create a new course, instructors only
// @Tags			Catalog
// @Accept			json
// @Produce		json
// @Param			request	body	dto.CreateCourseRequest	true	"course details"
// @Failure		400
// @Failure		401
// @Failure		403
// @Success		201	{object}	dto.CourseResponse
// @Router			/courses [post]
func (h *CatalogHandler) CreateCourse(c fiber.Ctx) error {
	// แปลง request body -> struct
	var req dto.CreateCourseRequest
	if err := c.Bind().Body(&req); err != nil {
		// จัดการ error response ที่ middleware
		return errs.InputValidationError(err.Error())
	}

	// ตรวจสอบ dto ก่อนยิงไป course service
	if err := req.Validate(); err != nil {
		return errs.InputValidationError(err.Error())
	}

	course, err := h.catalogSvc.CreateCourse(c.Context(), req.ToDraft())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewCourseResponse(*course))
}
