package identity

import (
	"context"
	"testing"

	"edu-client/modules/entitlement/dto"
	identityService "edu-client/modules/identity/service"
	"edu-client/util/eventbus"
)

type fakeEntitlements struct {
	resets    int
	refreshes int
	calls     []string
}

func (f *fakeEntitlements) Refresh(ctx context.Context) error {
	f.refreshes++
	f.calls = append(f.calls, "refresh")
	return nil
}

func (f *fakeEntitlements) Owns(courseID string) bool { return false }

func (f *fakeEntitlements) Snapshot() (dto.Entitlements, bool) { return dto.Entitlements{}, false }

func (f *fakeEntitlements) ApplyEnrollmentResult(sessionEpoch uint64, courseID string, newBalance float64) {
}

func (f *fakeEntitlements) ApplyCancelResult(sessionEpoch uint64, courseID string, newBalance float64) {
}

func (f *fakeEntitlements) ApplyTopUp(sessionEpoch uint64, newBalance float64) {}

func (f *fakeEntitlements) Reset() {
	f.resets++
	f.calls = append(f.calls, "reset")
}

func TestSignInResetsThenRefreshes(t *testing.T) {
	svc := &fakeEntitlements{}
	handler := NewIdentityChangedHandler(svc)

	err := handler.Handle(context.Background(), identityService.IdentityChangedEvent{
		SignedIn: true,
		Epoch:    1,
	})
	if err != nil {
		t.Fatalf("handle failed: %v", err)
	}

	if len(svc.calls) != 2 || svc.calls[0] != "reset" || svc.calls[1] != "refresh" {
		t.Fatalf("expected reset before refresh, got %v", svc.calls)
	}
}

func TestSignOutOnlyResets(t *testing.T) {
	svc := &fakeEntitlements{}
	handler := NewIdentityChangedHandler(svc)

	err := handler.Handle(context.Background(), identityService.IdentityChangedEvent{
		SignedIn: false,
		Epoch:    2,
	})
	if err != nil {
		t.Fatalf("handle failed: %v", err)
	}

	if svc.resets != 1 {
		t.Fatalf("expected 1 reset, got %d", svc.resets)
	}
	if svc.refreshes != 0 {
		t.Fatalf("expected no refresh on sign-out, got %d", svc.refreshes)
	}
}

func TestRejectsUnexpectedEvent(t *testing.T) {
	svc := &fakeEntitlements{}
	handler := NewIdentityChangedHandler(svc)

	if err := handler.Handle(context.Background(), fakeEvent{}); err == nil {
		t.Fatalf("expected error for unexpected event type")
	}
}

type fakeEvent struct{}

func (fakeEvent) EventName() eventbus.EventName { return "other.event" }
