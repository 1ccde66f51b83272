// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/foodlane/server/internal/models"
	"github.com/labstack/echo/v4"
)

// AddGalleryPost inserts a gallery/feedback record.
func (h *Handlers) AddGalleryPost(c echo.Context) error {
	var post models.GalleryPost
	if err := c.Bind(&post); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
	}

	result, err := h.gallery.Add(c.Request().Context(), &post)
	if err != nil {
		slog.Error("failed to add gallery post", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, result)
}

// AllFeedback lists every gallery post. Public.
func (h *Handlers) AllFeedback(c echo.Context) error {
	posts, err := h.gallery.All(c.Request().Context())
	if err != nil {
		slog.Error("failed to list gallery posts", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, posts)
}
