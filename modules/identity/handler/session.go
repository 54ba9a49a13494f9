package handler

import (
	"edu-client/modules/identity/dto"
	"edu-client/modules/identity/service"
	"edu-client/util/errs"

	"github.com/gofiber/fiber/v3"
)

type SessionHandler struct {
	sessionSvc service.SessionService
}

func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// SignIn godoc
// @Summary		Sign In
// @Description	Start a session from a bearer credential issued by the identity provider
// @Tags			Session
// @Accept			json
// @Produce		json
// @Param			request	body	dto.SignInRequest	true	"bearer credential"
// @Failure		400
// @Success		200	{object}	dto.SessionResponse
// @Router			/session [post]
func (h *SessionHandler) SignIn(c fiber.Ctx) error {
	// แปลง request body -> struct
	var req dto.SignInRequest
	if err := c.Bind().Body(&req); err != nil {
		// จัดการ error response ที่ middleware
		return errs.InputValidationError(err.Error())
	}

	// ตรวจสอบ input fields
	if err := req.Validate(); err != nil {
		return errs.InputValidationError(err.Error())
	}

	// ส่งไปที่ Service Layer
	resp, err := h.sessionSvc.Login(c.Context(), req.AccessToken)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// SignOut godoc
// @Summary		Sign Out
// @Description	End the current session and drop every identity-scoped state
// @Tags			Session
// @Success		204
// @Router			/session [delete]
func (h *SessionHandler) SignOut(c fiber.Ctx) error {
	h.sessionSvc.Logout(c.Context())

	// ตอบกลับด้วย status code 204 (no content)
	return c.SendStatus(fiber.StatusNoContent)
}

// CurrentSession godoc
// @Summary		Current Session
// @Description	Identity and roles of the signed-in user
// @Tags			Session
// @Produce		json
// @Failure		401
// @Success		200	{object}	dto.SessionResponse
// @Router			/session [get]
func (h *SessionHandler) CurrentSession(c fiber.Ctx) error {
	identity, ok := h.sessionSvc.Current()
	if !ok {
		return errs.UnauthenticatedError("sign in required")
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewSessionResponse(identity))
}
