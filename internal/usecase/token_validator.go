package usecase

import (
	"tastybite-booking/internal/pkg/jwt"
	"tastybite-booking/internal/usecase/commands"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*commands.Identity, error)
}

// TokenIdentity validates bearer tokens and doubles as the workflow's
// identity provider: the same claims that authenticate a request seed the
// guest detail defaults.
type TokenIdentity struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) *TokenIdentity {
	return &TokenIdentity{jwtService: jwtService}
}

func (t *TokenIdentity) ValidateToken(tokenString string) (*commands.Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	return &commands.Identity{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
		Phone:  claims.Phone,
		Token:  tokenString,
	}, nil
}

func (t *TokenIdentity) Identify(tokenString string) (*commands.Identity, error) {
	return t.ValidateToken(tokenString)
}
