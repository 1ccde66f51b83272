// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

// Package repository provides collection-scoped access to the FoodLane
// documents. Handlers depend on the interfaces so tests can substitute
// spies; the mongo-backed implementations live alongside.
package repository

import (
	"context"
	"fmt"

	"github.com/foodlane/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names in the FoodLane database.
const (
	FoodCollection     = "foods"
	PurchaseCollection = "purchases"
	GalleryCollection  = "gallery"
)

// FoodStore is the food-listing collaborator the handlers depend on.
type FoodStore interface {
	All(ctx context.Context) ([]models.Food, error)
	Search(ctx context.Context, name string) ([]models.Food, error)
	Get(ctx context.Context, id string) (*models.Food, error)
	Add(ctx context.Context, food *models.Food) (*mongo.InsertOneResult, error)
	ByOwner(ctx context.Context, email string) ([]models.Food, error)
	Update(ctx context.Context, id string, food *models.Food) (*mongo.UpdateResult, error)
	UpdateStock(ctx context.Context, id string, count, quantity int64) (*mongo.UpdateResult, error)
}

// PurchaseStore is the purchase-record collaborator.
type PurchaseStore interface {
	Add(ctx context.Context, purchase *models.Purchase) (*mongo.InsertOneResult, error)
	ByBuyer(ctx context.Context, email string) ([]models.Purchase, error)
	Remove(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// GalleryStore is the gallery/feedback collaborator.
type GalleryStore interface {
	Add(ctx context.Context, post *models.GalleryPost) (*mongo.InsertOneResult, error)
	All(ctx context.Context) ([]models.GalleryPost, error)
}

// Repository bundles the mongo-backed stores for one database handle.
type Repository struct {
	Foods     *FoodRepository
	Purchases *PurchaseRepository
	Gallery   *GalleryRepository
}

// New creates a Repository over the given database.
func New(db *mongo.Database) *Repository {
	return &Repository{
		Foods:     &FoodRepository{coll: db.Collection(FoodCollection)},
		Purchases: &PurchaseRepository{coll: db.Collection(PurchaseCollection)},
		Gallery:   &GalleryRepository{coll: db.Collection(GalleryCollection)},
	}
}

// objectID parses a hex document identifier.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid document id %q: %w", id, err)
	}
	return oid, nil
}
