package service

import (
	"context"
	"fmt"
	"sync"

	"edu-client/modules/enrollment/dto"
	"edu-client/modules/enrollment/internal/gateway"
	entitlementService "edu-client/modules/entitlement/service"
	identityService "edu-client/modules/identity/service"
	"edu-client/util/errs"
	"edu-client/util/logger"
)

var (
	ErrSignInRequired  = errs.UnauthenticatedError("sign in required to manage enrollments")
	ErrActionInFlight  = errs.ConflictError("another request for this course is still in progress")
	ErrAlreadyEnrolled = errs.BusinessRuleError("course is already enrolled")
	ErrNotEnrolled     = errs.BusinessRuleError("course is not enrolled")
)

// EnrollmentService รับ intent ซื้อ/ยกเลิกคอร์ส
// state ต่อ course id: ไม่เป็นเจ้าของ → (enroll สำเร็จ) → เป็นเจ้าของ → (cancel สำเร็จ) → ไม่เป็นเจ้าของ
// ระหว่างรอ server ยืนยัน course id นั้นถือว่า "ค้างอยู่" รับ intent ซ้ำไม่ได้
// ถ้า server ตอบ error ให้คงสถานะเดิมไว้ทั้งหมด ไม่มีการแก้ state ล่วงหน้า
type EnrollmentService interface {
	Enroll(ctx context.Context, courseID string) (*dto.EnrollmentResult, error)
	Cancel(ctx context.Context, courseID string) (*dto.EnrollmentResult, error)
}

type enrollmentService struct {
	sessionSvc     identityService.SessionService
	entitlementSvc entitlementService.EntitlementService
	enrollmentGW   gateway.EnrollmentGateway

	mu      sync.Mutex
	pending map[string]struct{} // course id ที่มี request ค้างอยู่
}

func NewEnrollmentService(
	sessionSvc identityService.SessionService,
	entitlementSvc entitlementService.EntitlementService,
	enrollmentGW gateway.EnrollmentGateway,
) EnrollmentService {
	return &enrollmentService{
		sessionSvc:     sessionSvc,
		entitlementSvc: entitlementSvc,
		enrollmentGW:   enrollmentGW,
		pending:        make(map[string]struct{}),
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, courseID string) (*dto.EnrollmentResult, error) {
	// intent ที่ยังไม่ได้ sign-in ให้ frontend พาไปหน้า login ไม่ใช่ความผิดพลาด
	identity, ok := s.sessionSvc.Current()
	if !ok {
		return nil, ErrSignInRequired
	}

	// กันกดซื้อรัว ๆ: course id เดียวกันมี mutating request ค้างได้แค่ตัวเดียว
	if err := s.acquire(courseID); err != nil {
		return nil, err
	}
	defer s.release(courseID)

	if s.entitlementSvc.Owns(courseID) {
		return nil, ErrAlreadyEnrolled
	}

	credential, _ := s.sessionSvc.Credential()
	epoch := s.sessionSvc.Epoch()

	logger.FromContext(ctx).Info(fmt.Sprintf("enrolling %s in course %s", identity.Email, courseID))

	newBalance, err := s.enrollmentGW.Enroll(ctx, credential, courseID, identity.Email)
	if err != nil {
		// ไม่ได้แตะ state ไว้ก่อนหน้า สถานะเดิมจึงยังถูกต้องอยู่แล้ว
		return nil, err
	}

	// server ยืนยันแล้วเท่านั้นถึงอัปเดตกระจกเงา และใช้ยอดเงินที่ server ส่งกลับมา
	// ห้ามคำนวณ oldBalance - price เองเด็ดขาด
	s.entitlementSvc.ApplyEnrollmentResult(epoch, courseID, newBalance)

	return dto.NewEnrollmentResult(courseID, newBalance), nil
}

func (s *enrollmentService) Cancel(ctx context.Context, courseID string) (*dto.EnrollmentResult, error) {
	identity, ok := s.sessionSvc.Current()
	if !ok {
		return nil, ErrSignInRequired
	}

	if err := s.acquire(courseID); err != nil {
		return nil, err
	}
	defer s.release(courseID)

	if !s.entitlementSvc.Owns(courseID) {
		return nil, ErrNotEnrolled
	}

	credential, _ := s.sessionSvc.Credential()
	epoch := s.sessionSvc.Epoch()

	logger.FromContext(ctx).Info(fmt.Sprintf("cancelling course %s for %s", courseID, identity.Email))

	newBalance, err := s.enrollmentGW.Cancel(ctx, credential, courseID, identity.Email)
	if err != nil {
		return nil, err
	}

	s.entitlementSvc.ApplyCancelResult(epoch, courseID, newBalance)

	return dto.NewEnrollmentResult(courseID, newBalance), nil
}

func (s *enrollmentService) acquire(courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, inFlight := s.pending[courseID]; inFlight {
		// reject ทันที ไม่เข้าคิวรอ
		return ErrActionInFlight
	}
	s.pending[courseID] = struct{}{}
	return nil
}

func (s *enrollmentService) release(courseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, courseID)
}
