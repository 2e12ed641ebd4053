package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims the planner reads from backend-issued access tokens.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the backend.
// The planner never issues tokens itself.
type TokenService interface {
	// ValidateToken checks the signature and expiry of an access token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
