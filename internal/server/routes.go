// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package server

import (
	"github.com/foodlane/server/internal/auth"
	"github.com/foodlane/server/internal/handlers"
	"github.com/foodlane/server/internal/repository"
	"github.com/foodlane/server/internal/services/token"
	"github.com/labstack/echo/v4"
)

// setupRoutes configures all HTTP routes on the given router. Protection is
// deliberately uneven: the "my records" reads and the insert routes sit
// behind RequireAuth, while the update and delete routes do not. This
// mirrors the behavior the frontend was built against.
func setupRoutes(e *echo.Echo, foods repository.FoodStore, purchases repository.PurchaseStore, gallery repository.GalleryStore, tokens *token.Service) {
	h := handlers.New(foods, purchases, gallery)
	authHandler := handlers.NewAuth(tokens)
	protected := auth.RequireAuth(tokens)

	e.GET("/health", h.Health)

	// Credential issuance and logout
	e.POST("/user", authHandler.Login)
	e.GET("/user/logout", authHandler.Logout)
	e.POST("/user/logout", authHandler.Logout)

	// Food listings
	e.GET("/allfoods", h.AllFoods)
	e.GET("/allfood/search", h.SearchFoods)
	e.GET("/food/:id", h.GetFood)
	e.POST("/food/add", h.AddFood, protected)
	e.GET("/food/my/added", h.MyAddedFoods, protected)
	e.PUT("/food/myadded/update", h.UpdateMyAdded)
	e.PUT("/food/update", h.UpdateStock)

	// Purchases
	e.POST("/food/purchase", h.Purchase, protected)
	e.GET("/food/my/purchase", h.MyPurchases, protected)
	e.DELETE("/food/my/purchase/remove", h.RemovePurchase)

	// Gallery
	e.POST("/gallery/add", h.AddGalleryPost, protected)
	e.GET("/gallery/allfeedback", h.AllFeedback)
}
