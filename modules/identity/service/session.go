package service

import (
	"context"
	"sync"

	"edu-client/modules/identity/dto"
	"edu-client/util/errs"
	"edu-client/util/eventbus"
	"edu-client/util/logger"
)

var (
	ErrCredentialRequired = errs.InputValidationError("access_token is required")
	ErrCredentialInvalid  = errs.InputValidationError("credential does not identify a user")
)

// SessionService ถือ identity ปัจจุบันของ client หนึ่ง session มีได้แค่ identity เดียว
type SessionService interface {
	Login(ctx context.Context, credential string) (*dto.SessionResponse, error)
	Logout(ctx context.Context)
	Current() (dto.Identity, bool)
	// Epoch เพิ่มขึ้นทุกครั้งที่ identity เปลี่ยน ใช้เป็นตัวกันไม่ให้
	// response ช้า ๆ ของ identity เก่าถูกเอามาใส่ session ใหม่
	Epoch() uint64
	Credential() (string, bool)
	HasRole(role string) bool
}

type sessionService struct {
	inspector CredentialInspector
	bus       eventbus.EventBus

	mu         sync.RWMutex
	credential string
	identity   dto.Identity
	signedIn   bool
	epoch      uint64
}

func NewSessionService(inspector CredentialInspector, bus eventbus.EventBus) SessionService {
	return &sessionService{
		inspector: inspector,
		bus:       bus,
	}
}

func (s *sessionService) Login(ctx context.Context, credential string) (*dto.SessionResponse, error) {
	if len(credential) == 0 {
		return nil, ErrCredentialRequired
	}

	// แปลง credential → identity ถ้า decode ไม่ได้หรือไม่มี user key ถือว่าใช้ไม่ได้
	identity, ok := s.inspector.IdentityFromCredential(credential)
	if !ok {
		return nil, ErrCredentialInvalid
	}

	s.mu.Lock()
	s.credential = credential
	s.identity = identity
	s.signedIn = true
	s.epoch++
	epoch := s.epoch
	s.mu.Unlock()

	logger.FromContext(ctx).Info("signed in as " + identity.Email)

	// แจ้งโมดูลอื่นว่า identity เปลี่ยนแล้ว (publish หลังปล่อย lock เสมอ
	// เพราะ handler อาจย้อนกลับมาอ่าน session)
	s.bus.Publish(ctx, IdentityChangedEvent{
		Identity: identity,
		SignedIn: true,
		Epoch:    epoch,
	})

	return dto.NewSessionResponse(identity), nil
}

func (s *sessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	wasSignedIn := s.signedIn
	s.credential = ""
	s.identity = dto.Identity{}
	s.signedIn = false
	s.epoch++
	epoch := s.epoch
	s.mu.Unlock()

	if wasSignedIn {
		logger.FromContext(ctx).Info("signed out")
	}

	s.bus.Publish(ctx, IdentityChangedEvent{
		SignedIn: false,
		Epoch:    epoch,
	})
}

func (s *sessionService) Current() (dto.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.signedIn
}

func (s *sessionService) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

func (s *sessionService) Credential() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential, s.signedIn
}

// HasRole คำนวณ capability จาก credential ปัจจุบันใหม่ทุกครั้ง
// ไม่ cache ข้าม identity เพื่อไม่ให้ role ของ session เก่าหลงเหลืออยู่
func (s *sessionService) HasRole(role string) bool {
	credential, ok := s.Credential()
	if !ok {
		return false
	}
	for _, r := range s.inspector.RolesFromCredential(credential) {
		if r == role {
			return true
		}
	}
	return false
}
