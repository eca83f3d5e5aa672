package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	login := "admin"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, login, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Login != login {
		t.Errorf("expected login %s, got %s", login, token.Login)
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != login {
		t.Errorf("expected subject %s, got %s", login, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		login    string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "admin", time.Hour, "key"},
		{"empty login", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "admin", 0, "key"},
		{"empty key", "iss", "admin", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.login, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	genToken, _ := GenerateJWTToken(issuer, "admin", 5*time.Minute, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Login != "admin" {
		t.Errorf("expected login admin, got %s", parsedToken.Login)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "admin", time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	// Token that expired 1 second ago
	genToken, _ := GenerateJWTToken("test-issuer", "admin", -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired in chain, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "admin", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header    string
		wantToken string
		wantErr   error
	}{
		{header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{header: "bearer abc", wantToken: "abc"},
		{header: "  Bearer   abc  ", wantToken: "abc"},
		{header: "", wantErr: ErrNotBearerScheme},
		{header: "Basic dXNlcjpwYXNz", wantErr: ErrNotBearerScheme},
		{header: "BearerTokenWithoutSpace", wantErr: ErrNotBearerScheme},
		{header: "Bearer", wantErr: ErrEmptyBearerToken},
		{header: "Bearer ", wantErr: ErrEmptyBearerToken},
		{header: "Bearer a b", wantErr: ErrNotBearerScheme},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || token != "" {
					t.Errorf("ParseBearerToken(%q) = %q, %v; want error %v", tt.header, token, err, tt.wantErr)
				}
				return
			}
			if err != nil || token != tt.wantToken {
				t.Errorf("ParseBearerToken(%q) = %q, %v; want %q", tt.header, token, err, tt.wantToken)
			}
		})
	}
}
