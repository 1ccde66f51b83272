// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Verifier validates a credential string and returns the email it encodes.
type Verifier interface {
	Verify(tokenString string) (string, error)
	Name() string
}

// RequireAuth returns middleware that verifies the credential cookie before
// the handler runs. Missing or invalid credentials end the request with 401
// and the handler is never invoked. On success the verified email is stored
// in the request context.
func RequireAuth(verifier Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(verifier.Name())
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "unauthorized access"})
			}

			email, err := verifier.Verify(cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "unauthorized access"})
			}

			ctx := SetIdentity(c.Request().Context(), email)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
