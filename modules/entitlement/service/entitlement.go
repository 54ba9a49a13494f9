package service

import (
	"context"
	"fmt"
	"sync"

	"edu-client/modules/entitlement/dto"
	"edu-client/modules/entitlement/internal/gateway"
	identityService "edu-client/modules/identity/service"
	"edu-client/util/logger"
)

// EntitlementService เป็นกระจกเงาฝั่ง client ของ {คอร์สที่เป็นเจ้าของ, ยอดเงิน}
// ความจริงอยู่ที่ ledger ฝั่ง server เสมอ ฝั่งนี้เป็นแค่ cache ที่ต้อง refresh
// หลังทุก action ที่แก้ state และหลังเปลี่ยน identity
//
// กติกาการเขียน: มีแค่ enrollment กับ balance controller เท่านั้นที่เรียก Apply*
// และเรียกได้เฉพาะหลัง server ยืนยันผลแล้ว ห้ามเดาค่าล่วงหน้า
type EntitlementService interface {
	Refresh(ctx context.Context) error
	Owns(courseID string) bool
	Snapshot() (dto.Entitlements, bool)
	ApplyEnrollmentResult(sessionEpoch uint64, courseID string, newBalance float64)
	ApplyCancelResult(sessionEpoch uint64, courseID string, newBalance float64)
	ApplyTopUp(sessionEpoch uint64, newBalance float64)
	Reset()
}

type entitlementService struct {
	sessionSvc identityService.SessionService
	userGW     gateway.UserRecordGateway

	mu      sync.RWMutex
	owned   map[string]struct{}
	balance float64
	epoch   uint64 // session epoch ที่ state ชุดนี้เป็นของ
}

func NewEntitlementService(sessionSvc identityService.SessionService, userGW gateway.UserRecordGateway) EntitlementService {
	return &entitlementService{
		sessionSvc: sessionSvc,
		userGW:     userGW,
		owned:      make(map[string]struct{}),
	}
}

// Refresh ดึง owned-set กับ balance ล่าสุดมาแทนของเดิมทั้งชุด (ไม่ merge)
// ถ้าดึงไม่สำเร็จให้เก็บค่าเดิมไว้ เพราะค่าว่างแยกไม่ออกจาก "ไม่มีคอร์สเลย"
func (s *entitlementService) Refresh(ctx context.Context) error {
	identity, ok := s.sessionSvc.Current()
	if !ok {
		return nil
	}
	credential, _ := s.sessionSvc.Credential()

	// จำ epoch ตอนเริ่มดึงไว้ ถ้า identity เปลี่ยนระหว่างรอ response ต้องทิ้งผลนั้น
	epoch := s.sessionSvc.Epoch()

	record, err := s.userGW.Me(ctx, credential, identity.Email)
	if err != nil {
		logger.FromContext(ctx).Warn(fmt.Sprintf("failed to refresh entitlements for %s: %v", identity.Email, err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.sessionSvc.Epoch() {
		// response ของ identity เก่า มาถึงหลังเปลี่ยน session แล้ว
		logger.FromContext(ctx).Info("discarding stale entitlement refresh for " + identity.Email)
		return nil
	}

	owned := make(map[string]struct{}, len(record.CourseIDs))
	for _, id := range record.CourseIDs {
		owned[id] = struct{}{}
	}
	s.owned = owned
	s.balance = record.Balance
	s.epoch = epoch

	return nil
}

func (s *entitlementService) Owns(courseID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.owned[courseID]
	return ok
}

func (s *entitlementService) Snapshot() (dto.Entitlements, bool) {
	identity, ok := s.sessionSvc.Current()
	if !ok {
		return dto.Entitlements{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	courseIDs := make([]string, 0, len(s.owned))
	for id := range s.owned {
		courseIDs = append(courseIDs, id)
	}

	return dto.Entitlements{
		Email:     identity.Email,
		Balance:   s.balance,
		CourseIDs: courseIDs,
	}, true
}

func (s *entitlementService) ApplyEnrollmentResult(sessionEpoch uint64, courseID string, newBalance float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionEpoch != s.epoch {
		return
	}
	s.owned[courseID] = struct{}{}
	s.balance = newBalance
}

func (s *entitlementService) ApplyCancelResult(sessionEpoch uint64, courseID string, newBalance float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionEpoch != s.epoch {
		return
	}
	delete(s.owned, courseID)
	s.balance = newBalance
}

func (s *entitlementService) ApplyTopUp(sessionEpoch uint64, newBalance float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionEpoch != s.epoch {
		return
	}
	s.balance = newBalance
}

// Reset ล้าง state ทั้งหมดตอน identity เปลี่ยน
// state ของ identity เก่าห้ามหลุดไปให้ session ใหม่เห็นเด็ดขาด
func (s *entitlementService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.owned = make(map[string]struct{})
	s.balance = 0
	s.epoch = s.sessionSvc.Epoch()
}
