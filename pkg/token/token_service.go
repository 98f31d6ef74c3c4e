package token

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"freezer-backend/domain"

	"github.com/golang-jwt/jwt/v4"
)

const (
	ModeSecret = "secret"
	ModeJWKS   = "jwks"
)

type (
	// TokenService exchanges a bearer credential for the stable user id the
	// identity provider issued it to. Every call re-verifies; nothing is
	// cached beyond the JWKS key set itself.
	TokenService interface {
		VerifyToken(ctx context.Context, token string) (string, error)
		GenerateToken(userID string, duration time.Duration) (string, error)
	}

	Config struct {
		Mode     string // ModeSecret (HS256 shared key) or ModeJWKS (RS256 provider keys)
		Secret   string
		Issuer   string
		JWKSURL  string
		Audience string
	}

	tokenService struct {
		cfg  Config
		jwks *jwksClient
	}
)

func NewTokenService(cfg Config) TokenService {
	s := &tokenService{cfg: cfg}
	if cfg.Mode == ModeJWKS {
		s.jwks = newJWKSClient(cfg.JWKSURL)
	}
	return s
}

func (s *tokenService) VerifyToken(ctx context.Context, token string) (string, error) {
	switch s.cfg.Mode {
	case ModeJWKS:
		return s.verifyWithJWKS(ctx, token)
	case ModeSecret, "":
		return s.verifyWithSecret(token)
	default:
		return "", domain.ErrServiceNotConfigured
	}
}

func (s *tokenService) verifyWithSecret(token string) (string, error) {
	if s.cfg.Secret == "" {
		return "", domain.ErrServiceNotConfigured
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return "", domain.ErrTokenInvalid
	}

	return s.subject(claims)
}

func (s *tokenService) verifyWithJWKS(ctx context.Context, token string) (string, error) {
	if s.jwks == nil || s.cfg.JWKSURL == "" {
		return "", domain.ErrServiceNotConfigured
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("token header has no kid")
		}
		return s.jwks.GetPublicKey(ctx, kid)
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return "", domain.ErrTokenInvalid
	}

	if s.cfg.Audience != "" && !claims.VerifyAudience(s.cfg.Audience, true) {
		return "", domain.ErrTokenInvalid
	}

	return s.subject(claims)
}

func (s *tokenService) subject(claims *jwt.RegisteredClaims) (string, error) {
	if s.cfg.Issuer != "" && claims.Issuer != s.cfg.Issuer {
		return "", domain.ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}

// GenerateToken issues an HS256 token for the given user. Only available in
// secret mode; jwks mode trusts the external provider to mint tokens.
func (s *tokenService) GenerateToken(userID string, duration time.Duration) (string, error) {
	if s.cfg.Mode == ModeJWKS {
		return "", domain.ErrServiceNotConfigured
	}
	if s.cfg.Secret == "" {
		return "", domain.ErrServiceNotConfigured
	}

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    s.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		log.Println(err)
		return "", err
	}
	return signed, nil
}
