package identity

import (
	"context"
	"fmt"

	"edu-client/modules/entitlement/service"
	identityService "edu-client/modules/identity/service"
	"edu-client/util/eventbus"
)

// identityChangedHandler ผูกวงจรชีวิตของ entitlement เข้ากับ identity:
// ทุกครั้งที่ identity เปลี่ยนต้องล้างของเดิมก่อน แล้วค่อย sync ของ identity ใหม่
type identityChangedHandler struct {
	entitlementSvc service.EntitlementService
}

func NewIdentityChangedHandler(entitlementSvc service.EntitlementService) eventbus.EventHandler {
	return &identityChangedHandler{entitlementSvc: entitlementSvc}
}

func (h *identityChangedHandler) Handle(ctx context.Context, event eventbus.Event) error {
	evt, ok := event.(identityService.IdentityChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	// ล้างก่อนเสมอ แม้ sync ของ identity ใหม่จะยังไม่เสร็จ
	h.entitlementSvc.Reset()

	if !evt.SignedIn {
		return nil
	}

	// sync ไม่สำเร็จไม่ถือว่า sign-in พัง แค่แจ้งเตือนผ่าน log (bus เป็นคน log ให้)
	if err := h.entitlementSvc.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to sync entitlements after identity change: %w", err)
	}
	return nil
}
