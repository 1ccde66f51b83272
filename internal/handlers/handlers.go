// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

// Package handlers contains the HTTP handlers for every FoodLane route.
package handlers

import (
	"net/http"

	"github.com/foodlane/server/internal/repository"
	"github.com/labstack/echo/v4"
)

// Handlers contains the resource handlers and their collaborators.
type Handlers struct {
	foods     repository.FoodStore
	purchases repository.PurchaseStore
	gallery   repository.GalleryStore
}

// New creates a new Handlers instance.
func New(foods repository.FoodStore, purchases repository.PurchaseStore, gallery repository.GalleryStore) *Handlers {
	return &Handlers{
		foods:     foods,
		purchases: purchases,
		gallery:   gallery,
	}
}

// Health returns the health status.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
