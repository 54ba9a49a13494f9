package service

import (
	"context"
	"sync"
	"testing"
	"time"

	entitlementDTO "edu-client/modules/entitlement/dto"
	identityDTO "edu-client/modules/identity/dto"
	"edu-client/util/errs"
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

func (s *fakeSession) HasRole(role string) bool { return s.identity.HasRole(role) }

func signedInSession() *fakeSession {
	return &fakeSession{
		identity: identityDTO.Identity{Email: "jane@example.com"},
		signedIn: true,
		epoch:    1,
	}
}

// fakeEntitlements สะท้อนพฤติกรรมของกระจกเงาจริงแบบย่อ พอให้เห็นว่า
// controller อัปเดตอะไรหลัง server ยืนยัน
type fakeEntitlements struct {
	mu      sync.Mutex
	owned   map[string]struct{}
	balance float64
	applies []uint64 // epoch ของแต่ละ apply ที่ถูกเรียก
}

func newFakeEntitlements(balance float64, owned ...string) *fakeEntitlements {
	set := make(map[string]struct{}, len(owned))
	for _, id := range owned {
		set[id] = struct{}{}
	}
	return &fakeEntitlements{owned: set, balance: balance}
}

func (f *fakeEntitlements) Refresh(ctx context.Context) error { return nil }

func (f *fakeEntitlements) Owns(courseID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.owned[courseID]
	return ok
}

func (f *fakeEntitlements) Snapshot() (entitlementDTO.Entitlements, bool) {
	return entitlementDTO.Entitlements{}, false
}

func (f *fakeEntitlements) ApplyEnrollmentResult(sessionEpoch uint64, courseID string, newBalance float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.owned[courseID] = struct{}{}
	f.balance = newBalance
	f.applies = append(f.applies, sessionEpoch)
}

func (f *fakeEntitlements) ApplyCancelResult(sessionEpoch uint64, courseID string, newBalance float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.owned, courseID)
	f.balance = newBalance
	f.applies = append(f.applies, sessionEpoch)
}

func (f *fakeEntitlements) ApplyTopUp(sessionEpoch uint64, newBalance float64) {}

func (f *fakeEntitlements) Reset() {}

func (f *fakeEntitlements) currentBalance() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balance
}

type fakeEnrollmentGW struct {
	mu          sync.Mutex
	balance     float64
	err         error
	enrollCalls int
	cancelCalls int
	block       chan struct{} // ถ้า set จะค้างจนกว่า channel ถูกปิด
	entered     chan struct{}
}

func (g *fakeEnrollmentGW) Enroll(ctx context.Context, credential, courseID, email string) (float64, error) {
	g.mu.Lock()
	g.enrollCalls++
	g.mu.Unlock()
	return g.respond()
}

func (g *fakeEnrollmentGW) Cancel(ctx context.Context, credential, courseID, email string) (float64, error) {
	g.mu.Lock()
	g.cancelCalls++
	g.mu.Unlock()
	return g.respond()
}

func (g *fakeEnrollmentGW) respond() (float64, error) {
	if g.entered != nil {
		g.entered <- struct{}{}
	}
	if g.block != nil {
		<-g.block
	}
	if g.err != nil {
		return 0, g.err
	}
	return g.balance, nil
}

func TestEnrollRequiresSignIn(t *testing.T) {
	gw := &fakeEnrollmentGW{}
	svc := NewEnrollmentService(&fakeSession{}, newFakeEntitlements(0), gw)

	if _, err := svc.Enroll(context.Background(), "1"); err != ErrSignInRequired {
		t.Fatalf("expected ErrSignInRequired, got %v", err)
	}
	if errs.GetStatusCode(ErrSignInRequired) != 401 {
		t.Fatalf("expected 401 for sign-in required")
	}
	if gw.enrollCalls != 0 {
		t.Fatalf("expected no remote call, got %d", gw.enrollCalls)
	}
}

func TestEnrollThenCancelUsesConfirmedBalance(t *testing.T) {
	entitlements := newFakeEntitlements(100)
	gw := &fakeEnrollmentGW{balance: 50}
	svc := NewEnrollmentService(signedInSession(), entitlements, gw)

	result, err := svc.Enroll(context.Background(), "1")
	if err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	if result.CourseID != "1" || result.Balance != 50 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if !entitlements.Owns("1") {
		t.Fatalf("expected course 1 owned after confirmed enroll")
	}
	if entitlements.currentBalance() != 50 {
		t.Fatalf("expected balance 50, got %f", entitlements.currentBalance())
	}

	gw.balance = 100
	result, err = svc.Cancel(context.Background(), "1")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if result.Balance != 100 {
		t.Fatalf("expected refunded balance 100, got %f", result.Balance)
	}
	if entitlements.Owns("1") {
		t.Fatalf("expected course 1 released after cancel")
	}
}

func TestEnrollRejectsOwnedCourse(t *testing.T) {
	gw := &fakeEnrollmentGW{balance: 50}
	svc := NewEnrollmentService(signedInSession(), newFakeEntitlements(100, "1"), gw)

	if _, err := svc.Enroll(context.Background(), "1"); err != ErrAlreadyEnrolled {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
	if gw.enrollCalls != 0 {
		t.Fatalf("expected no remote call for owned course, got %d", gw.enrollCalls)
	}
}

func TestCancelRejectsUnownedCourse(t *testing.T) {
	gw := &fakeEnrollmentGW{}
	svc := NewEnrollmentService(signedInSession(), newFakeEntitlements(100), gw)

	if _, err := svc.Cancel(context.Background(), "1"); err != ErrNotEnrolled {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
	if gw.cancelCalls != 0 {
		t.Fatalf("expected no remote call, got %d", gw.cancelCalls)
	}
}

func TestEnrollRejectsConcurrentIntentForSameCourse(t *testing.T) {
	entitlements := newFakeEntitlements(100)
	gw := &fakeEnrollmentGW{
		balance: 50,
		block:   make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	svc := NewEnrollmentService(signedInSession(), entitlements, gw)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Enroll(context.Background(), "1")
		done <- err
	}()

	// รอให้ request แรกไปค้างอยู่ที่ server ก่อน
	select {
	case <-gw.entered:
	case <-time.After(time.Second):
		t.Fatalf("first enroll never reached the gateway")
	}

	// intent ที่สองของ course เดียวกันต้องถูก reject ทันที ไม่เข้าคิว
	if _, err := svc.Enroll(context.Background(), "1"); err != ErrActionInFlight {
		t.Fatalf("expected ErrActionInFlight, got %v", err)
	}
	if _, err := svc.Cancel(context.Background(), "1"); err != ErrActionInFlight {
		t.Fatalf("expected ErrActionInFlight for cancel too, got %v", err)
	}

	close(gw.block)
	if err := <-done; err != nil {
		t.Fatalf("first enroll failed: %v", err)
	}

	if gw.enrollCalls != 1 {
		t.Fatalf("expected exactly 1 remote enroll call, got %d", gw.enrollCalls)
	}

	// พอ request แรกจบแล้ว course นี้กลายเป็นของเรา enroll ซ้ำต้องโดน business rule แทน
	if _, err := svc.Enroll(context.Background(), "1"); err != ErrAlreadyEnrolled {
		t.Fatalf("expected ErrAlreadyEnrolled after completion, got %v", err)
	}
}

func TestEnrollRemoteErrorLeavesStateUntouched(t *testing.T) {
	entitlements := newFakeEntitlements(100)
	remoteErr := errs.BusinessRuleError("insufficient balance")
	gw := &fakeEnrollmentGW{err: remoteErr}
	svc := NewEnrollmentService(signedInSession(), entitlements, gw)

	_, err := svc.Enroll(context.Background(), "1")
	if err == nil {
		t.Fatalf("expected error from remote")
	}
	// ข้อความของ server ต้องส่งต่อแบบ verbatim
	if err.Error() != "insufficient balance" {
		t.Fatalf("expected verbatim remote message, got %q", err.Error())
	}

	if entitlements.Owns("1") {
		t.Fatalf("expected no ownership after failed enroll")
	}
	if entitlements.currentBalance() != 100 {
		t.Fatalf("expected balance untouched, got %f", entitlements.currentBalance())
	}
	if len(entitlements.applies) != 0 {
		t.Fatalf("expected no apply after failed enroll")
	}

	// ความล้มเหลวต้องปลด pending ให้ลองใหม่ได้
	gw.err = nil
	gw.balance = 50
	if _, err := svc.Enroll(context.Background(), "1"); err != nil {
		t.Fatalf("retry after failure should succeed, got %v", err)
	}
	if gw.enrollCalls != 2 {
		t.Fatalf("expected 2 remote calls, got %d", gw.enrollCalls)
	}
}
