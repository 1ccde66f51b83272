// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchFilter(t *testing.T) {
	filter := searchFilter("burger")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok, "filter must be an $or branch")
	require.Len(t, or, 2)

	name, ok := or[0].(bson.M)
	require.True(t, ok)
	regex, ok := name["foodName"].(primitive.Regex)
	require.True(t, ok, "name branch must be a regex match")
	assert.Equal(t, "burger", regex.Pattern)
	assert.Equal(t, "i", regex.Options)

	category, ok := or[1].(bson.M)
	require.True(t, ok)
	regex, ok = category["foodCategory"].(primitive.Regex)
	require.True(t, ok, "category branch must be a regex match")
	assert.Equal(t, "burger", regex.Pattern)
}

func TestObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	parsed, err := objectID(oid.Hex())

	require.NoError(t, err)
	assert.Equal(t, oid, parsed)
}

func TestObjectID_Invalid(t *testing.T) {
	_, err := objectID("not-a-hex-id")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid document id")
}
