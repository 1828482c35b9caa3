package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/conexa/starwars-api/internal/core/domain"
	"github.com/conexa/starwars-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// TokenService issues and verifies HS256-signed JWTs carrying the subject
// identity and role. Tokens are stateless: validity is signature plus expiry,
// there is no refresh path.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(claims ports.Claims) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.Subject,
		"email": claims.Email,
		"role":  claims.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	})
	return t.SignedString(s.secret)
}

// Verify parses and validates a token string. Any failure — bad signature,
// malformed payload, passed expiry — collapses into domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (*ports.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return nil, domain.ErrInvalidToken
	}

	return &ports.Claims{Subject: sub, Email: email, Role: role}, nil
}
