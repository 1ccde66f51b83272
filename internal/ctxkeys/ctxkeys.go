// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

// Package ctxkeys defines typed context keys used across packages.
package ctxkeys

// Identity is the context key for the verified caller identity (email).
type Identity struct{}
