// Package jwt signs and verifies the HS256 bearer tokens that identify a
// calling project.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// clock skew tolerated between the identity provider and this service
const leeway = 30 * time.Second

// Claims carry the project both as a dedicated claim and as the subject;
// tokens from older providers only set the subject.
type Claims struct {
	ProjectID string `json:"project_id,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Project() string {
	if c.ProjectID != "" {
		return c.ProjectID
	}
	return c.Subject
}

type Service struct {
	key      []byte
	issuer   string
	lifetime time.Duration
	parser   *jwt.Parser
}

func NewService(secretKey, issuer string, lifetime time.Duration) *Service {
	return &Service{
		key:      []byte(secretKey),
		issuer:   issuer,
		lifetime: lifetime,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(leeway),
		),
	}
}

// GenerateToken mints a token for projectID. Production tokens come from the
// identity provider; this serves operators and tests.
func (s *Service) GenerateToken(projectID string) (string, error) {
	now := time.Now()
	claims := Claims{
		ProjectID: projectID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   projectID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

func (s *Service) ValidateToken(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := s.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.Project() == "":
		return nil, ErrInvalidToken
	}
	return claims, nil
}
