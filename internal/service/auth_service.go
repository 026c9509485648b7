package service

import "crypto/subtle"

// AuthService verifies the single shared admin credential.
type AuthService interface {
	// VerifyPassword reports whether the given password matches the
	// configured admin secret.
	VerifyPassword(password string) bool
}

type authServiceImpl struct {
	adminPassword string
}

// NewAuthService creates an AuthService for the configured admin password.
func NewAuthService(adminPassword string) AuthService {
	return &authServiceImpl{adminPassword: adminPassword}
}

// VerifyPassword compares in constant time to avoid leaking the match
// position through timing.
func (s *authServiceImpl) VerifyPassword(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
}
