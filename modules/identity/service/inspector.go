package service

import (
	"fmt"

	"edu-client/modules/identity/dto"
	"edu-client/util/logger"

	"github.com/golang-jwt/jwt/v5"
)

// role ที่ระบบใช้ตัดสินใจ ฝั่ง identity provider เป็นคนกำหนดมาใน credential
const (
	RoleInstructor = "INSTRUCTOR"
	RoleStudent    = "STUDENT"
)

// CredentialInspector อ่าน role กับข้อมูลผู้ใช้จาก bearer credential
// credential ที่หายไปหรือ decode ไม่ได้จะได้ role ว่างกลับไปเสมอ ห้าม panic/throw
// เพราะ UI ที่ gate ด้วย role ต้อง degrade เป็น "ไม่มีสิทธิ์" ไม่ใช่พัง
type CredentialInspector interface {
	RolesFromCredential(credential string) []string
	IdentityFromCredential(credential string) (dto.Identity, bool)
}

type credentialInspector struct{}

func NewCredentialInspector() CredentialInspector {
	return &credentialInspector{}
}

func (i *credentialInspector) RolesFromCredential(credential string) []string {
	claims, ok := decodeClaims(credential)
	if !ok {
		return []string{}
	}
	return realmRoles(claims)
}

func (i *credentialInspector) IdentityFromCredential(credential string) (dto.Identity, bool) {
	claims, ok := decodeClaims(credential)
	if !ok {
		return dto.Identity{}, false
	}

	email := stringClaim(claims, "email")
	if len(email) == 0 {
		// keycloak บางตั้งค่าไม่ใส่ email claim ให้ใช้ preferred_username แทน
		email = stringClaim(claims, "preferred_username")
	}
	if len(email) == 0 {
		return dto.Identity{}, false
	}

	displayName := stringClaim(claims, "name")
	if len(displayName) == 0 {
		displayName = email
	}

	return dto.Identity{
		Email:       email,
		DisplayName: displayName,
		Roles:       realmRoles(claims),
	}, true
}

// decodeClaims ทำแค่ structural decode เท่านั้น ไม่ verify ลายเซ็น
// เพราะ identity provider เป็นคน verify ให้แล้ว ฝั่งนี้ token เป็นแค่ opaque credential
func decodeClaims(credential string) (jwt.MapClaims, bool) {
	if len(credential) == 0 {
		return nil, false
	}

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(credential, claims)
	if err != nil {
		// decode ไม่ได้ถือเป็น credential เสีย แจ้งผ่าน log แล้วให้ role ว่าง
		logger.Log.Warn(fmt.Sprintf("failed to decode bearer credential: %v", err))
		return nil, false
	}
	return claims, true
}

// realmRoles ดึง roles จาก realm-level access claim ของ keycloak
// ไม่มี claim นี้ไม่ถือว่า error แค่แปลว่าไม่มี role
func realmRoles(claims jwt.MapClaims) []string {
	roles := []string{}

	realmAccess, ok := claims["realm_access"].(map[string]any)
	if !ok {
		return roles
	}
	rawRoles, ok := realmAccess["roles"].([]any)
	if !ok {
		return roles
	}

	// คงลำดับตามที่มาใน claim แต่ตัดตัวซ้ำออก
	seen := make(map[string]struct{}, len(rawRoles))
	for _, raw := range rawRoles {
		role, ok := raw.(string)
		if !ok {
			continue
		}
		if _, dup := seen[role]; dup {
			continue
		}
		seen[role] = struct{}{}
		roles = append(roles, role)
	}
	return roles
}

func stringClaim(claims jwt.MapClaims, name string) string {
	value, _ := claims[name].(string)
	return value
}
