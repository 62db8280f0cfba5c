package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickupStores(t *testing.T) {
	stores := PickupStores()
	require.Len(t, stores, 3)

	// Callers get a copy, not the backing array.
	stores[0].Name = "mutated"
	assert.NotEqual(t, "mutated", PickupStores()[0].Name)
}

func TestPickupStoreByID(t *testing.T) {
	store := PickupStoreByID(2)
	require.NotNil(t, store)
	assert.Equal(t, "Monash Clayton Campus Store", store.Name)

	assert.Nil(t, PickupStoreByID(0))
	assert.Nil(t, PickupStoreByID(99))
}
