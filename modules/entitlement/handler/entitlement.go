package handler

import (
	"edu-client/modules/entitlement/service"
	"edu-client/util/errs"

	"github.com/gofiber/fiber/v3"
)

type EntitlementHandler struct {
	entitlementSvc service.EntitlementService
}

func NewEntitlementHandler(entitlementSvc service.EntitlementService) *EntitlementHandler {
	return &EntitlementHandler{entitlementSvc: entitlementSvc}
}

// OwnedCoursesAndBalance godoc
// @Summary		Owned Courses And Balance
// @Description	Last confirmed owned-course set and balance of the signed-in user
// @Tags			Entitlement
// @Produce		json
// @Failure		401
// @Success		200	{object}	dto.Entitlements
// @Router			/me [get]
func (h *EntitlementHandler) OwnedCoursesAndBalance(c fiber.Ctx) error {
	snapshot, ok := h.entitlementSvc.Snapshot()
	if !ok {
		return errs.UnauthenticatedError("sign in required")
	}

	return c.Status(fiber.StatusOK).JSON(snapshot)
}
