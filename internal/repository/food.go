// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"errors"

	"github.com/foodlane/server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FoodRepository is the mongo-backed FoodStore.
type FoodRepository struct {
	coll *mongo.Collection
}

// All returns every food listing.
func (r *FoodRepository) All(ctx context.Context) ([]models.Food, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// searchFilter matches name or category case-insensitively.
func searchFilter(name string) bson.M {
	regex := primitive.Regex{Pattern: name, Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"foodName": regex},
		bson.M{"foodCategory": regex},
	}}
}

// Search returns listings whose name or category matches the given text.
func (r *FoodRepository) Search(ctx context.Context, name string) ([]models.Food, error) {
	cursor, err := r.coll.Find(ctx, searchFilter(name))
	if err != nil {
		return nil, err
	}
	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// Get returns one listing by id. A missing document is returned as nil
// without an error; callers treat it as an empty success.
func (r *FoodRepository) Get(ctx context.Context, id string) (*models.Food, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var food models.Food
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// Add inserts a listing and returns the acknowledgment.
func (r *FoodRepository) Add(ctx context.Context, food *models.Food) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, food)
}

// ByOwner returns listings whose ownership field equals the given email.
func (r *FoodRepository) ByOwner(ctx context.Context, email string) ([]models.Food, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, err
	}
	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// Update replaces the editable fields of a listing.
func (r *FoodRepository) Update(ctx context.Context, id string, food *models.Food) (*mongo.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{
		"foodName":     food.Name,
		"foodImage":    food.Image,
		"foodCategory": food.Category,
		"foodOrigin":   food.Origin,
		"description":  food.Description,
		"price":        food.Price,
		"quantity":     food.Quantity,
	}}
	return r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
}

// UpdateStock sets the purchase count and remaining quantity of a listing.
func (r *FoodRepository) UpdateStock(ctx context.Context, id string, count, quantity int64) (*mongo.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{
		"count":    count,
		"quantity": quantity,
	}}
	return r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
}
