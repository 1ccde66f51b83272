// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"github.com/foodlane/server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PurchaseRepository is the mongo-backed PurchaseStore.
type PurchaseRepository struct {
	coll *mongo.Collection
}

// Add inserts a purchase record and returns the acknowledgment.
func (r *PurchaseRepository) Add(ctx context.Context, purchase *models.Purchase) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, purchase)
}

// ByBuyer returns purchases whose ownership field equals the given email.
func (r *PurchaseRepository) ByBuyer(ctx context.Context, email string) ([]models.Purchase, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"buyerEmail": email})
	if err != nil {
		return nil, err
	}
	var purchases []models.Purchase
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

// Remove deletes a purchase record by id.
func (r *PurchaseRepository) Remove(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.coll.DeleteOne(ctx, bson.M{"_id": oid})
}
