package usecase

import (
	"lease-engine/internal/pkg/jwt"
)

// TokenValidator resolves a bearer token to the calling project.
type TokenValidator interface {
	ValidateToken(token string) (projectID string, err error)
}

type jwtTokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(svc *jwt.Service) TokenValidator {
	return jwtTokenValidator{jwt: svc}
}

func (v jwtTokenValidator) ValidateToken(token string) (string, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return "", err
	}
	return claims.Project(), nil
}
