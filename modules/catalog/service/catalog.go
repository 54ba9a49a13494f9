package service

import (
	"context"
	"fmt"
	"sync"

	"edu-client/modules/catalog/internal/gateway"
	"edu-client/modules/catalog/internal/model"
	identityService "edu-client/modules/identity/service"
	"edu-client/util/errs"
	"edu-client/util/logger"
)

var (
	ErrSignInRequired = errs.UnauthenticatedError("sign in required to create a course")
	ErrInstructorOnly = errs.AuthorizationError("only instructors can create courses")
)

// CatalogService เก็บ cache ของรายการคอร์สทั้งหมดจาก course service
// และเป็นทางเข้าเดียวสำหรับ instructor ที่จะสร้างคอร์สใหม่
type CatalogService interface {
	Refresh(ctx context.Context) error
	Courses() []model.Course
	CreateCourse(ctx context.Context, draft model.CourseDraft) (*model.Course, error)
}

type catalogService struct {
	sessionSvc identityService.SessionService
	catalogGW  gateway.CatalogGateway

	mu      sync.RWMutex
	courses []model.Course
}

func NewCatalogService(sessionSvc identityService.SessionService, catalogGW gateway.CatalogGateway) CatalogService {
	return &catalogService{
		sessionSvc: sessionSvc,
		catalogGW:  catalogGW,
	}
}

// Refresh ดึง catalog ทั้งชุดมาแทนของเดิม
// ถ้าดึงไม่สำเร็จให้คง list เดิมไว้ ผู้ใช้ยังเห็นคอร์สชุดล่าสุดที่เคยดึงได้
func (s *catalogService) Refresh(ctx context.Context) error {
	courses, err := s.catalogGW.ListCourses(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(fmt.Sprintf("failed to refresh course catalog: %v", err))
		return err
	}

	s.mu.Lock()
	s.courses = courses
	s.mu.Unlock()

	return nil
}

func (s *catalogService) Courses() []model.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

func (s *catalogService) CreateCourse(ctx context.Context, draft model.CourseDraft) (*model.Course, error) {
	identity, ok := s.sessionSvc.Current()
	if !ok {
		return nil, ErrSignInRequired
	}

	// gate ตาม role ปัจจุบันจาก credential ห้ามยิง request ถ้าไม่ใช่ instructor
	if !s.sessionSvc.HasRole(identityService.RoleInstructor) {
		return nil, ErrInstructorOnly
	}

	credential, _ := s.sessionSvc.Credential()

	logger.FromContext(ctx).Info(fmt.Sprintf("creating course %q by %s", draft.Title, identity.Email))

	course, err := s.catalogGW.CreateCourse(ctx, credential, draft)
	if err != nil {
		return nil, err
	}

	// เอาคอร์สใหม่เข้า cache ทันที ไม่ต้องรอรอบ poll ถัดไป
	s.mu.Lock()
	s.courses = append(s.courses, *course)
	s.mu.Unlock()

	return course, nil
}
