package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/maxreviewer/reviews-api/internal/config"
	"github.com/maxreviewer/reviews-api/internal/domain"
	"github.com/maxreviewer/reviews-api/pkg/apiErrors"
)

const defaultTokenTTL = 24 * time.Hour

// Authenticator valida os tokens emitidos pelo serviço de login do dashboard
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateToken(claims domain.Claims, ttl time.Duration) (string, error)
}

type Service struct {
	cfg *config.Config
	now func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

// GenerateToken assina claims com HS256; usado pela ferramenta de seed e nos testes
func (s *Service) GenerateToken(claims domain.Claims, ttl time.Duration) (string, error) {
	if s.cfg.Auth.Secret == "" {
		return "", NewAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "AUTH_SECRET vazio")
	}

	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := s.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrInvalidToken, "")
	}

	if s.cfg.Auth.Secret == "" {
		return nil, NewAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "AUTH_SECRET vazio")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithTimeFunc(s.now))
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

	if claims.UserID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "user_id ausente")
	}

	return claims, nil
}
