package token

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freezer-backend/domain"

	"github.com/golang-jwt/jwt/v4"
)

func TestSecretModeRoundTrip(t *testing.T) {
	svc := NewTokenService(Config{Mode: ModeSecret, Secret: "test-secret", Issuer: "freezer-backend"})

	signed, err := svc.GenerateToken("user-123", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	userID, err := svc.VerifyToken(context.Background(), signed)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("got user id %q, want %q", userID, "user-123")
	}
}

func TestSecretModeRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService(Config{Mode: ModeSecret, Secret: "test-secret"})

	signed, err := svc.GenerateToken("user-123", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.VerifyToken(context.Background(), signed); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("got %v, want ErrTokenExpired", err)
	}
}

func TestSecretModeRejectsForeignSignature(t *testing.T) {
	issuer := NewTokenService(Config{Mode: ModeSecret, Secret: "other-secret"})
	svc := NewTokenService(Config{Mode: ModeSecret, Secret: "test-secret"})

	signed, err := issuer.GenerateToken("user-123", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.VerifyToken(context.Background(), signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("got %v, want ErrTokenInvalid", err)
	}
}

func TestSecretModeRejectsGarbage(t *testing.T) {
	svc := NewTokenService(Config{Mode: ModeSecret, Secret: "test-secret"})

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.VerifyToken(context.Background(), token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Errorf("VerifyToken(%q) = %v, want ErrTokenInvalid", token, err)
		}
	}
}

func TestSecretModeRejectsWrongIssuer(t *testing.T) {
	issuer := NewTokenService(Config{Mode: ModeSecret, Secret: "test-secret", Issuer: "someone-else"})
	svc := NewTokenService(Config{Mode: ModeSecret, Secret: "test-secret", Issuer: "freezer-backend"})

	signed, err := issuer.GenerateToken("user-123", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.VerifyToken(context.Background(), signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("got %v, want ErrTokenInvalid", err)
	}
}

func jwksServer(t *testing.T, kid string, key *rsa.PublicKey) *httptest.Server {
	t.Helper()
	doc := jwksDocument{Keys: []jwksKey{{
		Kty: "RSA",
		Kid: kid,
		Use: "sig",
		Alg: "RS256",
		N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
	}}}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc)
	}))
}

func signRS256(t *testing.T, key *rsa.PrivateKey, kid, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = kid

	signed, err := tok.SignedString(key)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return signed
}

func TestJWKSModeVerifiesProviderToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	srv := jwksServer(t, "key-1", &key.PublicKey)
	defer srv.Close()

	svc := NewTokenService(Config{Mode: ModeJWKS, JWKSURL: srv.URL})

	userID, err := svc.VerifyToken(context.Background(), signRS256(t, key, "key-1", "provider-uid"))
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if userID != "provider-uid" {
		t.Errorf("got user id %q, want %q", userID, "provider-uid")
	}
}

func TestJWKSModeRejectsUnknownKid(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	srv := jwksServer(t, "key-1", &key.PublicKey)
	defer srv.Close()

	svc := NewTokenService(Config{Mode: ModeJWKS, JWKSURL: srv.URL})

	if _, err := svc.VerifyToken(context.Background(), signRS256(t, key, "key-2", "provider-uid")); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("got %v, want ErrTokenInvalid", err)
	}
}

func TestJWKSModeCannotMintTokens(t *testing.T) {
	svc := NewTokenService(Config{Mode: ModeJWKS, JWKSURL: "http://localhost:0"})

	if _, err := svc.GenerateToken("user-123", time.Hour); !errors.Is(err, domain.ErrServiceNotConfigured) {
		t.Errorf("got %v, want ErrServiceNotConfigured", err)
	}
}
