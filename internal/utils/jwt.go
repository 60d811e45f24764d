package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pvaldera/go-game-catalog/models"
)

// Token validation failure kinds. They are distinguishable inside the server
// for logging, but the service layer collapses all of them into a single
// generic "invalid token" error before anything reaches a client, so that a
// caller cannot fingerprint why a token was rejected.
var (
	// ErrTokenMalformed indicates the compact JWS wire format could not be
	// parsed at all.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenBadSignature indicates the recomputed HMAC signature does not
	// match the one carried by the token.
	ErrTokenBadSignature = errors.New("token signature mismatch")

	// ErrTokenExpired indicates the token parsed and verified correctly but
	// its "exp" claim is in the past.
	ErrTokenExpired = errors.New("token is expired")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss):  identifies the service that issued the token
//   - Subject   (sub):  the user ID
//   - IssuedAt  (iat):  the current time
//   - ExpiresAt (exp):  the current time plus tokenDuration
//   - role:             the subject's authorization role at issuance time
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Parameters:
//
//	issuer        - identifier of the token issuer (e.g. service name)
//	userID        - ID of the user the token is issued for
//	role          - authorization role embedded as the "role" claim
//	tokenDuration - how long the token remains valid
//	signKey       - secret key used to sign the token with HMAC-SHA256
//
// Returns:
//
//	models.Token - contains the signed token string and the jwt.Token object
//	error        - non-nil if parameters are invalid or signing fails
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("my-service", "7d4e...", models.RoleUser, time.Hour, "secret")
func GenerateJWTToken(issuer, userID string, role models.Role, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || !role.Valid() || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Role: role, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//   - "role" claim presence and membership in the known role set
//
// Failures are mapped to the sentinel errors of this package:
// [ErrTokenExpired], [ErrTokenBadSignature], [ErrTokenMalformed]. Any
// validation failure not covered by a more specific sentinel (e.g. issuer
// mismatch, missing claims) is reported as [ErrTokenMalformed].
//
// Parameters:
//
//	tokenString   - the raw signed JWT string to validate and parse
//	tokenSignKey  - secret key used to verify the token signature
//	tokenIssuer   - expected issuer value to validate against the iss claim
//
// Returns:
//
//	models.Token - contains the parsed jwt.Token object, the UserID and the Role
//	error        - non-nil if validation fails or claims are missing
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenBadSignature, err)
		default:
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		}
	}

	claims, ok := token.Claims.(*models.Token)
	if !ok {
		return models.Token{}, fmt.Errorf("%w: unexpected claims type", ErrTokenMalformed)
	}

	userID, err := token.Claims.GetSubject()
	if err != nil || userID == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrTokenMalformed)
	}

	if !claims.Role.Valid() {
		return models.Token{}, fmt.Errorf("%w: unknown role claim %q", ErrTokenMalformed, claims.Role)
	}

	return models.Token{Token: token, Role: claims.Role, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token part of a bearer-scheme Authorization
// header value. An empty or single-part header yields an error; the caller
// treats that as an anonymous request, never as a transport-level failure.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
