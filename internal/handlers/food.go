// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/foodlane/server/internal/auth"
	"github.com/foodlane/server/internal/models"
	"github.com/labstack/echo/v4"
)

// AllFoods lists every food listing. Public.
func (h *Handlers) AllFoods(c echo.Context) error {
	foods, err := h.foods.All(c.Request().Context())
	if err != nil {
		slog.Error("failed to list foods", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, foods)
}

// SearchFoods lists listings matching the name query on name or category.
// Public.
func (h *Handlers) SearchFoods(c echo.Context) error {
	name := c.QueryParam("name")
	foods, err := h.foods.Search(c.Request().Context(), name)
	if err != nil {
		slog.Error("failed to search foods", "error", err, "name", name)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, foods)
}

// GetFood fetches one listing by id. A missing document is an empty
// success, not a 404.
func (h *Handlers) GetFood(c echo.Context) error {
	food, err := h.foods.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		slog.Error("failed to get food", "error", err, "id", c.Param("id"))
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, food)
}

// AddFood inserts a listing. The ownership field comes from the request
// body as submitted.
func (h *Handlers) AddFood(c echo.Context) error {
	var food models.Food
	if err := c.Bind(&food); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
	}

	result, err := h.foods.Add(c.Request().Context(), &food)
	if err != nil {
		slog.Error("failed to add food", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, result)
}

// MyAddedFoods lists the caller's own listings. The email query parameter
// must equal the verified identity; a mismatch is rejected before any
// database access.
func (h *Handlers) MyAddedFoods(c echo.Context) error {
	email := c.QueryParam("email")
	if email != auth.Identity(c.Request().Context()) {
		return c.JSON(http.StatusForbidden, map[string]string{"message": "forbidden access"})
	}

	foods, err := h.foods.ByOwner(c.Request().Context(), email)
	if err != nil {
		slog.Error("failed to list own foods", "error", err, "email", email)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, foods)
}

// UpdateFoodRequest is the body of PUT /food/myadded/update.
type UpdateFoodRequest struct {
	ID string `json:"id"`
	models.Food
}

// UpdateMyAdded updates the editable fields of a listing by id.
func (h *Handlers) UpdateMyAdded(c echo.Context) error {
	var req UpdateFoodRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
	}

	result, err := h.foods.Update(c.Request().Context(), req.ID, &req.Food)
	if err != nil {
		slog.Error("failed to update food", "error", err, "id", req.ID)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, result)
}

// UpdateStockRequest is the body of PUT /food/update.
type UpdateStockRequest struct {
	ID       string `json:"id"`
	Count    int64  `json:"count"`
	Quantity int64  `json:"quantity"`
}

// UpdateStock sets the purchase count and remaining quantity of a listing.
func (h *Handlers) UpdateStock(c echo.Context) error {
	var req UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
	}

	result, err := h.foods.UpdateStock(c.Request().Context(), req.ID, req.Count, req.Quantity)
	if err != nil {
		slog.Error("failed to update stock", "error", err, "id", req.ID)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, result)
}
