package handler

import (
	"edu-client/modules/balance/dto"
	"edu-client/modules/balance/service"
	"edu-client/util/errs"

	"github.com/gofiber/fiber/v3"
)

type BalanceHandler struct {
	balanceSvc service.BalanceService
}

func NewBalanceHandler(balanceSvc service.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceSvc: balanceSvc}
}

// TopUp godoc
// @Summary		Top Up Balance
// @Description	Add funds to the signed-in user's balance
// @Tags			Balance
// @Accept			json
// @Produce		json
// @Param			request	body	dto.TopUpRequest	true	"top-up amount"
// @Failure		400
// @Failure		401
// @Success		200	{object}	dto.TopUpResult
// @Router			/me/topup [post]
func (h *BalanceHandler) TopUp(c fiber.Ctx) error {
	// แปลง request body -> struct
	var req dto.TopUpRequest
	if err := c.Bind().Body(&req); err != nil {
		// จัดการ error response ที่ middleware
		return errs.InputValidationError(err.Error())
	}

	resp, err := h.balanceSvc.TopUp(c.Context(), req.Amount)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
