// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package testutil

import (
	"context"

	"github.com/foodlane/server/internal/models"
	"github.com/foodlane/server/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	_ repository.FoodStore     = (*FoodStoreSpy)(nil)
	_ repository.PurchaseStore = (*PurchaseStoreSpy)(nil)
	_ repository.GalleryStore  = (*GalleryStoreSpy)(nil)
)

// FoodStoreSpy records calls so tests can assert the collaborator was (or
// was not) invoked, and with which predicate.
type FoodStoreSpy struct {
	AllCalls         int
	SearchCalls      []string
	GetCalls         []string
	AddCalls         []*models.Food
	ByOwnerCalls     []string
	UpdateCalls      []string
	UpdateStockCalls []string

	Foods     []models.Food
	Food      *models.Food
	InsertRes *mongo.InsertOneResult
	UpdateRes *mongo.UpdateResult
	Err       error
}

func (s *FoodStoreSpy) All(_ context.Context) ([]models.Food, error) {
	s.AllCalls++
	return s.Foods, s.Err
}

func (s *FoodStoreSpy) Search(_ context.Context, name string) ([]models.Food, error) {
	s.SearchCalls = append(s.SearchCalls, name)
	return s.Foods, s.Err
}

func (s *FoodStoreSpy) Get(_ context.Context, id string) (*models.Food, error) {
	s.GetCalls = append(s.GetCalls, id)
	return s.Food, s.Err
}

func (s *FoodStoreSpy) Add(_ context.Context, food *models.Food) (*mongo.InsertOneResult, error) {
	s.AddCalls = append(s.AddCalls, food)
	return s.InsertRes, s.Err
}

func (s *FoodStoreSpy) ByOwner(_ context.Context, email string) ([]models.Food, error) {
	s.ByOwnerCalls = append(s.ByOwnerCalls, email)
	return s.Foods, s.Err
}

func (s *FoodStoreSpy) Update(_ context.Context, id string, _ *models.Food) (*mongo.UpdateResult, error) {
	s.UpdateCalls = append(s.UpdateCalls, id)
	return s.UpdateRes, s.Err
}

func (s *FoodStoreSpy) UpdateStock(_ context.Context, id string, _, _ int64) (*mongo.UpdateResult, error) {
	s.UpdateStockCalls = append(s.UpdateStockCalls, id)
	return s.UpdateRes, s.Err
}

// PurchaseStoreSpy records purchase-store calls.
type PurchaseStoreSpy struct {
	AddCalls     []*models.Purchase
	ByBuyerCalls []string
	RemoveCalls  []string

	Purchases []models.Purchase
	InsertRes *mongo.InsertOneResult
	DeleteRes *mongo.DeleteResult
	Err       error
}

func (s *PurchaseStoreSpy) Add(_ context.Context, purchase *models.Purchase) (*mongo.InsertOneResult, error) {
	s.AddCalls = append(s.AddCalls, purchase)
	return s.InsertRes, s.Err
}

func (s *PurchaseStoreSpy) ByBuyer(_ context.Context, email string) ([]models.Purchase, error) {
	s.ByBuyerCalls = append(s.ByBuyerCalls, email)
	return s.Purchases, s.Err
}

func (s *PurchaseStoreSpy) Remove(_ context.Context, id string) (*mongo.DeleteResult, error) {
	s.RemoveCalls = append(s.RemoveCalls, id)
	return s.DeleteRes, s.Err
}

// GalleryStoreSpy records gallery-store calls.
type GalleryStoreSpy struct {
	AddCalls  []*models.GalleryPost
	AllCalls  int
	Posts     []models.GalleryPost
	InsertRes *mongo.InsertOneResult
	Err       error
}

func (s *GalleryStoreSpy) Add(_ context.Context, post *models.GalleryPost) (*mongo.InsertOneResult, error) {
	s.AddCalls = append(s.AddCalls, post)
	return s.InsertRes, s.Err
}

func (s *GalleryStoreSpy) All(_ context.Context) ([]models.GalleryPost, error) {
	s.AllCalls++
	return s.Posts, s.Err
}
