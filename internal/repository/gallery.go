// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"github.com/foodlane/server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GalleryRepository is the mongo-backed GalleryStore.
type GalleryRepository struct {
	coll *mongo.Collection
}

// Add inserts a gallery post and returns the acknowledgment.
func (r *GalleryRepository) Add(ctx context.Context, post *models.GalleryPost) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, post)
}

// All returns every gallery post.
func (r *GalleryRepository) All(ctx context.Context) ([]models.GalleryPost, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var posts []models.GalleryPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
