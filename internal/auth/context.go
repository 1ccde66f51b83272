// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

// Package auth attaches the verified caller identity to requests and
// guards protected routes.
package auth

import (
	"context"

	"github.com/foodlane/server/internal/ctxkeys"
)

// SetIdentity returns a context carrying the verified email.
func SetIdentity(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ctxkeys.Identity{}, email)
}

// Identity returns the verified email from the context, or "" if the
// request did not pass verification.
func Identity(ctx context.Context) string {
	if email, ok := ctx.Value(ctxkeys.Identity{}).(string); ok {
		return email
	}
	return ""
}

// IsAuthenticated returns true if the context has a verified identity.
func IsAuthenticated(ctx context.Context) bool {
	return Identity(ctx) != ""
}
