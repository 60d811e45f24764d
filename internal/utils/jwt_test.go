package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/pvaldera/go-game-catalog/models"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "7d4e9c52-0000-0000-0000-000000000001"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, models.RoleUser, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.UserID != userID {
		t.Errorf("expected userID %s, got %s", userID, token.UserID)
	}
	if token.Role != models.RoleUser {
		t.Errorf("expected role %s, got %s", models.RoleUser, token.Role)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		role     models.Role
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u1", models.RoleUser, time.Hour, "key"},
		{"empty user id", "iss", "", models.RoleUser, time.Hour, "key"},
		{"unknown role", "iss", "u1", models.Role("SUPERVISOR"), time.Hour, "key"},
		{"zero duration", "iss", "u1", models.RoleUser, 0, "key"},
		{"empty key", "iss", "u1", models.RoleUser, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.role, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "7d4e9c52-0000-0000-0000-000000000002"
	key := "secret-key"

	genToken, err := GenerateJWTToken(issuer, userID, models.RoleAdmin, 5*time.Minute, key)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %s, got %s", userID, parsedToken.UserID)
	}
	if parsedToken.Role != models.RoleAdmin {
		t.Errorf("expected role %s, got %s", models.RoleAdmin, parsedToken.Role)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	genToken, err := GenerateJWTToken("iss", "u1", models.RoleUser, time.Hour, "right-key")
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	_, err = ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "iss")
	if !errors.Is(err, ErrTokenBadSignature) {
		t.Fatalf("expected ErrTokenBadSignature, got %v", err)
	}
}

func TestValidateAndParseJWTToken_TamperedPayload(t *testing.T) {
	genToken, err := GenerateJWTToken("iss", "u1", models.RoleUser, time.Hour, "key")
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	// flip one byte of the compact serialization
	raw := []byte(genToken.SignedString)
	mid := len(raw) / 2
	if raw[mid] == 'a' {
		raw[mid] = 'b'
	} else {
		raw[mid] = 'a'
	}

	_, err = ValidateAndParseJWTToken(string(raw), "key", "iss")
	if err == nil {
		t.Fatal("expected error for tampered token, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, err := GenerateJWTToken("iss", "u1", models.RoleUser, -time.Minute, "key")
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	_, err = ValidateAndParseJWTToken(genToken.SignedString, "key", "iss")
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, err := GenerateJWTToken("issuer-a", "u1", models.RoleUser, time.Hour, "key")
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	_, err = ValidateAndParseJWTToken(genToken.SignedString, "key", "issuer-b")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"scheme only", "Bearer", "", true},
		{"scheme with empty token", "Bearer ", "", true},
		{"too many parts", "Bearer abc def", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
