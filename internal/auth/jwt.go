// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 7 * 24 * time.Hour

// Claims is the identity carried in a verified session token.
type Claims struct {
	UserID    string
	Email     string
	Role      string
	FirstName string
	LastName  string
}

// TokenManager issues and verifies HS256-signed session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration

	// now is swappable in tests.
	now func() time.Time
}

// NewTokenManager creates a token manager with the default 7-day TTL.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// Issue creates a signed token embedding the user's identity and role.
func (m *TokenManager) Issue(u *model.User) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"userId":    u.ID,
		"email":     u.Email,
		"role":      u.Role,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"iat":       now.Unix(),
		"exp":       now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims. Expired or
// tampered tokens fail validation inside Parse.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims := &Claims{
		UserID:    stringClaim(mapClaims, "userId"),
		Email:     stringClaim(mapClaims, "email"),
		Role:      stringClaim(mapClaims, "role"),
		FirstName: stringClaim(mapClaims, "firstName"),
		LastName:  stringClaim(mapClaims, "lastName"),
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token missing user id")
	}
	return claims, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
