package dto

import "errors"

// Identity คือผู้ใช้ที่ sign-in อยู่ในมุมมองของ client ตัวนี้
// แปลงมาจาก bearer credential ทั้งก้อน จะถูกสร้างใหม่ทุกครั้งที่ credential เปลี่ยน
type Identity struct {
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name"`
	Roles       []string `json:"roles"`
}

func (i Identity) HasRole(role string) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type SignInRequest struct {
	AccessToken string `json:"access_token"`
}

func (r *SignInRequest) Validate() error {
	if len(r.AccessToken) == 0 {
		return errors.New("access_token is required")
	}
	return nil
}

type SessionResponse struct {
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name"`
	Roles       []string `json:"roles"`
}

func NewSessionResponse(identity Identity) *SessionResponse {
	return &SessionResponse{
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		Roles:       identity.Roles,
	}
}
