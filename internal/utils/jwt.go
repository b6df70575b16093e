package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-travel-journal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors of the bearer token helpers.
var (
	// ErrInvalidTokenParams is returned when a token cannot be issued
	// because the issuer, duration or sign key is empty.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

	// ErrInvalidAuthorizationHeader is returned when no bearer token can be
	// extracted from an Authorization header value.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for userID.
//
// The token carries the standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a decimal string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("travel-journal", 42, 72*time.Hour, "secret")
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		UserID:       userID,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its owner.
//
// Validation includes the HS256 signature, the issuer, the presence and
// validity of the expiration claim, and a numeric subject. Expired tokens
// yield an error matching [jwt.ErrTokenExpired].
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(raw, "secret", "travel-journal")
//	if errors.Is(err, jwt.ErrTokenExpired) {
//	    // ask the client to log in again
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		UserID:       userID,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
