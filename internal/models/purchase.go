// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Purchase records one buy of a food listing. BuyerEmail is the ownership
// field set by the client at creation time. Reference is assigned by the
// server on insert.
type Purchase struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodID     string             `bson:"foodId" json:"foodId"`
	FoodName   string             `bson:"foodName" json:"foodName"`
	FoodImage  string             `bson:"foodImage" json:"foodImage"`
	Price      float64            `bson:"price" json:"price"`
	Quantity   int64              `bson:"quantity" json:"quantity"`
	BuyerEmail string             `bson:"buyerEmail" json:"buyerEmail"`
	BuyerName  string             `bson:"buyerName" json:"buyerName"`
	BuyingDate time.Time          `bson:"buyingDate" json:"buyingDate"`
	Reference  string             `bson:"reference" json:"reference"`
}
