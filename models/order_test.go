package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered} {
		assert.True(t, ValidOrderStatus(s), s)
	}
	assert.False(t, ValidOrderStatus("cancelled"))
	assert.False(t, ValidOrderStatus(""))
}

func TestOrderStatusTransitionsOnlyMoveForward(t *testing.T) {
	assert.True(t, CanTransitionOrderStatus(OrderStatusPending, OrderStatusConfirmed))
	assert.True(t, CanTransitionOrderStatus(OrderStatusPending, OrderStatusDelivered))
	assert.True(t, CanTransitionOrderStatus(OrderStatusShipped, OrderStatusDelivered))

	assert.False(t, CanTransitionOrderStatus(OrderStatusConfirmed, OrderStatusPending))
	assert.False(t, CanTransitionOrderStatus(OrderStatusDelivered, OrderStatusShipped))
	assert.False(t, CanTransitionOrderStatus(OrderStatusPending, OrderStatusPending))
	assert.False(t, CanTransitionOrderStatus("cancelled", OrderStatusConfirmed))
}
