package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransition(OrderStatusPaid))
	assert.True(t, OrderStatusPending.CanTransition(OrderStatusCancelled))
	assert.True(t, OrderStatusPaid.CanTransition(OrderStatusShipped))
	assert.True(t, OrderStatusPaid.CanTransition(OrderStatusCancelled))
	assert.True(t, OrderStatusShipped.CanTransition(OrderStatusCompleted))

	// No skipping ahead or moving backwards.
	assert.False(t, OrderStatusPending.CanTransition(OrderStatusShipped))
	assert.False(t, OrderStatusPending.CanTransition(OrderStatusCompleted))
	assert.False(t, OrderStatusShipped.CanTransition(OrderStatusCancelled))
	assert.False(t, OrderStatusPaid.CanTransition(OrderStatusPending))

	// Terminal states.
	assert.False(t, OrderStatusCompleted.CanTransition(OrderStatusPending))
	assert.False(t, OrderStatusCancelled.CanTransition(OrderStatusPaid))
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled,
	} {
		assert.True(t, status.Valid(), string(status))
	}

	assert.False(t, OrderStatus("refunded").Valid())
	assert.False(t, OrderStatus("").Valid())
}
