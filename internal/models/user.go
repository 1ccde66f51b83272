// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package models

// LoginRequest is the body of POST /user. The email is taken as claimed;
// there is no password or external-provider check in this service.
type LoginRequest struct {
	Email string `json:"email"`
}
