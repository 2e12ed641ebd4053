// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/config"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/service"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
)

const accessTokenType = "access"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are issued by the booking backend; this service only verifies them.
type jwtService struct {
	accessSecret string // Secret key the backend signs access tokens with.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{accessSecret: cfg.SecretKey.Access}, nil
}

// ValidateToken checks the signature and expiry of an access token and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.Wrap(err, "failed to parse token structure")
		}

		return nil, errors.Wrap(err, "invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	if tokenType, _ := mapClaims["type"].(string); tokenType != "" && tokenType != accessTokenType {
		return nil, errors.Errorf("unexpected token type: %s", tokenType)
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "subject is not a user id")
	}

	expiresAt, err := mapClaims.GetExpirationTime()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	issuedAt, err := mapClaims.GetIssuedAt()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &service.Claims{
		UserID: userID,
		Roles:  rolesFrom(mapClaims["roles"]),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: expiresAt,
			IssuedAt:  issuedAt,
		},
	}, nil
}

// rolesFrom converts the decoded JSON roles array; non-string entries are skipped.
func rolesFrom(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(list))
	for _, r := range list {
		if role, ok := r.(string); ok {
			roles = append(roles, role)
		}
	}

	return roles
}
