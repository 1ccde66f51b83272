// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

// Package token issues and verifies the signed credential cookie that
// authenticates FoodLane requests.
package token

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/foodlane/server/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a credential fails verification for any
// reason (bad signature, malformed token, or expiry passed).
var ErrInvalidToken = errors.New("invalid token")

// Claims are the statements encoded in a credential: the standard
// registered claims plus the caller's email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Service signs and verifies credentials and builds the matching cookie.
// The secret and cookie attributes are read-only after construction.
type Service struct {
	secret     []byte
	cookieName string
	lifetime   time.Duration
	production bool
}

// New creates a token service. An empty signing secret is a fatal
// misconfiguration and fails here rather than per request.
func New(cfg *config.AuthConfig, production bool) (*Service, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("auth secret must not be empty")
	}

	lifetime := time.Duration(cfg.TokenLifetime) * time.Second
	if lifetime <= 0 {
		lifetime = time.Hour
	}

	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = "accessToken"
	}

	return &Service{
		secret:     []byte(cfg.Secret),
		cookieName: cookieName,
		lifetime:   lifetime,
		production: production,
	}, nil
}

// Lifetime returns the credential lifetime.
func (s *Service) Lifetime() time.Duration {
	return s.lifetime
}

// Issue creates a signed, time-limited credential for the given email.
func (s *Service) Issue(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the email claim.
// Any failure maps to ErrInvalidToken.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Email, nil
}

// Cookie wraps a credential in the HTTP-only cookie the client stores.
// Production mode uses Secure + SameSite=None for cross-site frontends;
// development mode uses SameSite=Strict without Secure.
func (s *Service) Cookie(token string) *http.Cookie {
	cookie := s.baseCookie()
	cookie.Value = token
	cookie.MaxAge = int(s.lifetime.Seconds())
	return cookie
}

// ClearCookie returns an immediately-expiring cookie under the same name.
// This is client-side revocation only: an already-issued credential stays
// verifiable until its expiry.
func (s *Service) ClearCookie() *http.Cookie {
	cookie := s.baseCookie()
	cookie.Value = ""
	cookie.MaxAge = -1
	return cookie
}

func (s *Service) baseCookie() *http.Cookie {
	cookie := &http.Cookie{
		Name:     s.cookieName,
		Path:     "/",
		HttpOnly: true,
	}
	if s.production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.Secure = false
		cookie.SameSite = http.SameSiteStrictMode
	}
	return cookie
}

// Name returns the credential cookie name.
func (s *Service) Name() string {
	return s.cookieName
}
