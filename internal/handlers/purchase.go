// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/foodlane/server/internal/auth"
	"github.com/foodlane/server/internal/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Purchase inserts a purchase record. The ownership field comes from the
// request body as submitted; the server assigns the reference code and a
// buying date when the client omits one.
func (h *Handlers) Purchase(c echo.Context) error {
	var purchase models.Purchase
	if err := c.Bind(&purchase); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
	}

	purchase.Reference = uuid.NewString()
	if purchase.BuyingDate.IsZero() {
		purchase.BuyingDate = time.Now()
	}

	result, err := h.purchases.Add(c.Request().Context(), &purchase)
	if err != nil {
		slog.Error("failed to add purchase", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, result)
}

// MyPurchases lists the caller's own purchases. The email query parameter
// must equal the verified identity; a mismatch is rejected before any
// database access.
func (h *Handlers) MyPurchases(c echo.Context) error {
	email := c.QueryParam("email")
	if email != auth.Identity(c.Request().Context()) {
		return c.JSON(http.StatusForbidden, map[string]string{"message": "forbidden access"})
	}

	purchases, err := h.purchases.ByBuyer(c.Request().Context(), email)
	if err != nil {
		slog.Error("failed to list purchases", "error", err, "email", email)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, purchases)
}

// RemovePurchase deletes a purchase record by the id query parameter.
func (h *Handlers) RemovePurchase(c echo.Context) error {
	id := c.QueryParam("id")
	result, err := h.purchases.Remove(c.Request().Context(), id)
	if err != nil {
		slog.Error("failed to remove purchase", "error", err, "id", id)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, result)
}
