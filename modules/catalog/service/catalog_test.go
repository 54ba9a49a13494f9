package service

import (
	"context"
	"errors"
	"testing"

	"edu-client/modules/catalog/internal/model"
	identityDTO "edu-client/modules/identity/dto"
	identityService "edu-client/modules/identity/service"
)

type fakeSession struct {
	identity identityDTO.Identity
	signedIn bool
	epoch    uint64
}

func (s *fakeSession) Login(ctx context.Context, credential string) (*identityDTO.SessionResponse, error) {
	return nil, nil
}

func (s *fakeSession) Logout(ctx context.Context) {}

func (s *fakeSession) Current() (identityDTO.Identity, bool) { return s.identity, s.signedIn }

func (s *fakeSession) Epoch() uint64 { return s.epoch }

func (s *fakeSession) Credential() (string, bool) { return "token", s.signedIn }

func (s *fakeSession) HasRole(role string) bool { return s.signedIn && s.identity.HasRole(role) }

func instructorSession() *fakeSession {
	return &fakeSession{
		identity: identityDTO.Identity{
			Email: "teach@example.com",
			Roles: []string{identityService.RoleInstructor},
		},
		signedIn: true,
	}
}

func studentSession() *fakeSession {
	return &fakeSession{
		identity: identityDTO.Identity{
			Email: "learn@example.com",
			Roles: []string{identityService.RoleStudent},
		},
		signedIn: true,
	}
}

type fakeCatalogGW struct {
	courses     []model.Course
	created     *model.Course
	listErr     error
	createErr   error
	listCalls   int
	createCalls int
}

func (g *fakeCatalogGW) ListCourses(ctx context.Context) ([]model.Course, error) {
	g.listCalls++
	if g.listErr != nil {
		return nil, g.listErr
	}
	return g.courses, nil
}

func (g *fakeCatalogGW) CreateCourse(ctx context.Context, credential string, draft model.CourseDraft) (*model.Course, error) {
	g.createCalls++
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.created, nil
}

func TestRefreshReplacesCatalog(t *testing.T) {
	gw := &fakeCatalogGW{courses: []model.Course{
		{ID: "1", Title: "Go Basics", Price: 50},
		{ID: "2", Title: "Advanced Go", Price: 80},
	}}
	svc := NewCatalogService(studentSession(), gw)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	courses := svc.Courses()
	if len(courses) != 2 || courses[0].ID != "1" || courses[1].ID != "2" {
		t.Fatalf("unexpected catalog: %+v", courses)
	}

	gw.courses = []model.Course{{ID: "2", Title: "Advanced Go", Price: 80}}
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if courses := svc.Courses(); len(courses) != 1 || courses[0].ID != "2" {
		t.Fatalf("expected wholesale replacement, got %+v", courses)
	}
}

func TestRefreshKeepsCatalogOnFailure(t *testing.T) {
	gw := &fakeCatalogGW{courses: []model.Course{{ID: "1", Title: "Go Basics"}}}
	svc := NewCatalogService(studentSession(), gw)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	gw.listErr = errors.New("connection refused")
	if err := svc.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh error")
	}
	if courses := svc.Courses(); len(courses) != 1 {
		t.Fatalf("expected last good catalog kept, got %+v", courses)
	}
}

func TestCreateCourseRequiresInstructor(t *testing.T) {
	draft := model.CourseDraft{Title: "Go Basics", Price: 50}

	t.Run("signed out", func(t *testing.T) {
		gw := &fakeCatalogGW{}
		svc := NewCatalogService(&fakeSession{}, gw)

		if _, err := svc.CreateCourse(context.Background(), draft); err != ErrSignInRequired {
			t.Fatalf("expected ErrSignInRequired, got %v", err)
		}
		if gw.createCalls != 0 {
			t.Fatalf("expected no remote call, got %d", gw.createCalls)
		}
	})

	t.Run("student", func(t *testing.T) {
		gw := &fakeCatalogGW{}
		svc := NewCatalogService(studentSession(), gw)

		// gate อยู่ฝั่งนี้ ไม่ใช่รอให้ server ปฏิเสธ
		if _, err := svc.CreateCourse(context.Background(), draft); err != ErrInstructorOnly {
			t.Fatalf("expected ErrInstructorOnly, got %v", err)
		}
		if gw.createCalls != 0 {
			t.Fatalf("expected no remote call, got %d", gw.createCalls)
		}
	})
}

func TestCreateCourseMergesIntoCache(t *testing.T) {
	gw := &fakeCatalogGW{
		courses: []model.Course{{ID: "1", Title: "Go Basics", Price: 50}},
		created: &model.Course{ID: "7", Title: "Testing in Go", Price: 65},
	}
	svc := NewCatalogService(instructorSession(), gw)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	course, err := svc.CreateCourse(context.Background(), model.CourseDraft{Title: "Testing in Go", Price: 65})
	if err != nil {
		t.Fatalf("create course failed: %v", err)
	}
	// id มาจาก server เสมอ
	if course.ID != "7" {
		t.Fatalf("expected server assigned id 7, got %s", course.ID)
	}

	courses := svc.Courses()
	if len(courses) != 2 || courses[1].ID != "7" {
		t.Fatalf("expected new course merged into cache, got %+v", courses)
	}
}

func TestCreateCourseRemoteErrorKeepsCache(t *testing.T) {
	gw := &fakeCatalogGW{
		courses:   []model.Course{{ID: "1", Title: "Go Basics"}},
		createErr: errors.New("duplicate title"),
	}
	svc := NewCatalogService(instructorSession(), gw)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if _, err := svc.CreateCourse(context.Background(), model.CourseDraft{Title: "Go Basics", Price: 1}); err == nil {
		t.Fatalf("expected create error")
	}
	if courses := svc.Courses(); len(courses) != 1 {
		t.Fatalf("expected cache untouched, got %+v", courses)
	}
}
