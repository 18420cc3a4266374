package usecase

import (
	"group-deal-engine/internal/domain/user"
	"group-deal-engine/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	principal, err := t.jwtService.Verify(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	return principal.UserID, principal.Role, nil
}
