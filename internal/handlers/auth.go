// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/foodlane/server/internal/models"
	"github.com/foodlane/server/internal/services/token"
	"github.com/labstack/echo/v4"
)

// AuthHandlers contains handlers for credential issuance and logout.
type AuthHandlers struct {
	tokens *token.Service
}

// NewAuth creates a new AuthHandlers instance.
func NewAuth(tokens *token.Service) *AuthHandlers {
	return &AuthHandlers{tokens: tokens}
}

// Login issues a credential cookie for the claimed email. The identity is
// taken as submitted; there is no password check in this service.
func (h *AuthHandlers) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "email is required"})
	}

	signed, err := h.tokens.Issue(req.Email)
	if err != nil {
		slog.Error("failed to issue credential", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}

	c.SetCookie(h.tokens.Cookie(signed))
	return c.JSON(http.StatusOK, map[string]bool{"status": true})
}

// Logout clears the credential cookie. An already-issued credential stays
// valid until its expiry; only the client copy is removed.
func (h *AuthHandlers) Logout(c echo.Context) error {
	c.SetCookie(h.tokens.ClearCookie())
	return c.JSON(http.StatusOK, map[string]bool{"status": true})
}
