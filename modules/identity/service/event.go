package service

import (
	"edu-client/modules/identity/dto"
	"edu-client/util/eventbus"
)

const IdentityChangedEventName eventbus.EventName = "identity.changed"

// IdentityChangedEvent ถูก publish ทุกครั้งที่ sign-in/sign-out
// โมดูลที่ถือ state ผูกกับ identity (เช่น entitlement) ต้องล้างของเดิมทิ้งก่อนเสมอ
type IdentityChangedEvent struct {
	Identity dto.Identity
	SignedIn bool
	Epoch    uint64
}

func (e IdentityChangedEvent) EventName() eventbus.EventName {
	return IdentityChangedEventName
}
