// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

// Package models holds the documents stored in the FoodLane collections.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a food listing. UserEmail is the ownership field set by the
// client at creation time.
type Food struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"foodName" json:"foodName"`
	Image       string             `bson:"foodImage" json:"foodImage"`
	Category    string             `bson:"foodCategory" json:"foodCategory"`
	Origin      string             `bson:"foodOrigin" json:"foodOrigin"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int64              `bson:"quantity" json:"quantity"`
	Count       int64              `bson:"count" json:"count"`
	UserEmail   string             `bson:"userEmail" json:"userEmail"`
	UserName    string             `bson:"userName" json:"userName"`
}
