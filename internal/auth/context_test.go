// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package auth_test

import (
	"context"
	"testing"

	"github.com/foodlane/server/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestIdentity_RoundTrip(t *testing.T) {
	ctx := auth.SetIdentity(context.Background(), "a@b.com")

	assert.Equal(t, "a@b.com", auth.Identity(ctx))
	assert.True(t, auth.IsAuthenticated(ctx))
}

func TestIdentity_Empty(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, auth.Identity(ctx))
	assert.False(t, auth.IsAuthenticated(ctx))
}
