package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenSessionMismatch is returned when a token was issued for a session that is no longer live.
var ErrTokenSessionMismatch = errors.New("token does not belong to the active session")

// GenerateSessionJWT signs an HS256 token for memberID bound to sessionID through the jti claim.
// It returns the token and its expiry time.
func GenerateSessionJWT(memberID int, sessionID, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiryDuration)
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Issuer:    issuer,
		Subject:   strconv.Itoa(memberID),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAndValidateJWT parses a JWT token string, validates its signature and standard claims.
// It returns the RegisteredClaims if the token is valid, or an error otherwise.
func ParseAndValidateJWT(tokenString string, secretKey string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err // This will include errors like token expired, signature invalid, etc.
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}

// ValidateSessionClaims checks that claims were issued for the live session
// (sessionID) and member (memberID).
func ValidateSessionClaims(claims *jwt.RegisteredClaims, sessionID string, memberID int) error {
	if claims == nil || claims.ID == "" || claims.ID != sessionID {
		return ErrTokenSessionMismatch
	}
	if claims.Subject != strconv.Itoa(memberID) {
		return ErrTokenSessionMismatch
	}
	return nil
}
