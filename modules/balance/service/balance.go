package service

import (
	"context"
	"fmt"
	"math"

	"edu-client/modules/balance/dto"
	"edu-client/modules/balance/internal/gateway"
	entitlementService "edu-client/modules/entitlement/service"
	identityService "edu-client/modules/identity/service"
	"edu-client/util/errs"
	"edu-client/util/logger"
)

var (
	ErrSignInRequired = errs.UnauthenticatedError("sign in required to top up balance")
	ErrInvalidAmount  = errs.InputValidationError("amount must be a positive number")
)

// BalanceService รับ intent เติมเงิน
type BalanceService interface {
	TopUp(ctx context.Context, amount float64) (*dto.TopUpResult, error)
}

type balanceService struct {
	sessionSvc     identityService.SessionService
	entitlementSvc entitlementService.EntitlementService
	balanceGW      gateway.BalanceGateway
}

func NewBalanceService(
	sessionSvc identityService.SessionService,
	entitlementSvc entitlementService.EntitlementService,
	balanceGW gateway.BalanceGateway,
) BalanceService {
	return &balanceService{
		sessionSvc:     sessionSvc,
		entitlementSvc: entitlementSvc,
		balanceGW:      balanceGW,
	}
}

func (s *balanceService) TopUp(ctx context.Context, amount float64) (*dto.TopUpResult, error) {
	// ตรวจสอบ business rule: จำนวนเงินต้องเป็นตัวเลขปกติและมากกว่า 0
	// ค่าที่ไม่ผ่านห้ามหลุดไปถึง server
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, ErrInvalidAmount
	}

	identity, ok := s.sessionSvc.Current()
	if !ok {
		return nil, ErrSignInRequired
	}

	credential, _ := s.sessionSvc.Credential()
	epoch := s.sessionSvc.Epoch()

	logger.FromContext(ctx).Info(fmt.Sprintf("topping up %s", identity.Email))

	newBalance, err := s.balanceGW.TopUp(ctx, credential, identity.Email, amount)
	if err != nil {
		return nil, err
	}

	// ใช้ยอดเงินที่ ledger ตอบกลับมาเท่านั้น ไม่เอา balance เดิมมาบวกเอง
	// เพราะ server อาจมีโบนัส เพดาน หรือมีการเติมจาก session อื่นพร้อมกัน
	s.entitlementSvc.ApplyTopUp(epoch, newBalance)

	return dto.NewTopUpResult(newBalance), nil
}
