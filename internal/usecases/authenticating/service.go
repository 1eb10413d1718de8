package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/seo-audit-api/internal/config"
	"github.com/vfg2006/seo-audit-api/internal/domain"
	"github.com/vfg2006/seo-audit-api/pkg/apiErrors"
)

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateToken(role domain.Role, email string, ttl time.Duration) (string, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

// GenerateToken emite um token HS256 para o papel informado. Usado para tokens de serviço.
func (s *Service) GenerateToken(role domain.Role, email string, ttl time.Duration) (string, error) {
	if s.cfg.Auth.JWTSecret == "" {
		return "", NewAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "")
	}

	if ttl <= 0 {
		return "", NewAuthError(ErrInvalidLifetime, apiErrors.ErrInvalidRequest, ttl.String())
	}

	if len(domain.ScopesFor(role)) == 0 {
		return "", NewAuthError(ErrUnknownRole, apiErrors.ErrInvalidRequest, string(role))
	}

	now := time.Now()
	claims := domain.Claims{
		Role:  role,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.JWTSecret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if s.cfg.Auth.JWTSecret == "" {
		return nil, NewAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if len(domain.ScopesFor(claims.Role)) == 0 {
		return nil, NewAuthError(ErrUnknownRole, apiErrors.ErrInvalidToken, string(claims.Role))
	}

	return claims, nil
}
