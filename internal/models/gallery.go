// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryPost is a user-submitted gallery/feedback entry.
type GalleryPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	UserName  string             `bson:"userName" json:"userName"`
	Feedback  string             `bson:"feedback" json:"feedback"`
	ImageURL  string             `bson:"imageUrl" json:"imageUrl"`
}
