package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestSignAndValidate(t *testing.T) {
	svc := NewTestService("test-secret", "test-issuer", time.Hour)

	token, err := svc.Sign("user:abc123", "alice@example.com")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if claims.UserID() != "user:abc123" {
		t.Errorf("UserID() = %q, want user:abc123", claims.UserID())
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Email = %q, want alice@example.com", claims.Email)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("Issuer = %q, want test-issuer", claims.Issuer)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewTestService("test-secret", "test-issuer", -time.Minute)

	token, err := svc.Sign("user:abc123", "alice@example.com")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Validate() error = %v, want ErrTokenExpired", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	signer := NewTestService("secret-a", "test-issuer", time.Hour)
	verifier := NewTestService("secret-b", "test-issuer", time.Hour)

	token, err := signer.Sign("user:abc123", "alice@example.com")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	_, err = verifier.Validate(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateWrongIssuer(t *testing.T) {
	signer := NewTestService("test-secret", "issuer-a", time.Hour)
	verifier := NewTestService("test-secret", "issuer-b", time.Hour)

	token, err := signer.Sign("user:abc123", "alice@example.com")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	_, err = verifier.Validate(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateMalformedToken(t *testing.T) {
	svc := NewTestService("test-secret", "test-issuer", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestNewServiceRequiresSecret(t *testing.T) {
	if _, err := NewService(Config{Issuer: "x", ExpirationMins: 60}); err == nil {
		t.Error("NewService() with empty secret = nil error, want error")
	}
}
