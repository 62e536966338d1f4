package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ForwardPath(t *testing.T) {
	steps := []struct {
		from, to OrderStatus
	}{
		{OrderStatusPending, OrderStatusConfirmed},
		{OrderStatusConfirmed, OrderStatusProcessing},
		{OrderStatusProcessing, OrderStatusShipped},
		{OrderStatusShipped, OrderStatusDelivered},
	}

	for _, step := range steps {
		assert.NoError(t, CanTransition(step.from, step.to),
			"expected %s -> %s to be allowed", step.from, step.to)
	}
}

func TestCanTransition_SkippingStatesRejected(t *testing.T) {
	assert.Error(t, CanTransition(OrderStatusPending, OrderStatusProcessing))
	assert.Error(t, CanTransition(OrderStatusPending, OrderStatusShipped))
	assert.Error(t, CanTransition(OrderStatusConfirmed, OrderStatusDelivered))
}

func TestCanTransition_BackwardsRejected(t *testing.T) {
	assert.Error(t, CanTransition(OrderStatusShipped, OrderStatusConfirmed))
	assert.Error(t, CanTransition(OrderStatusDelivered, OrderStatusPending))
}

func TestCanTransition_CancelFromNonTerminal(t *testing.T) {
	for _, from := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped,
	} {
		assert.NoError(t, CanTransition(from, OrderStatusCancelled),
			"expected %s -> cancelled to be allowed", from)
	}
}

func TestCanTransition_TerminalStates(t *testing.T) {
	assert.Error(t, CanTransition(OrderStatusDelivered, OrderStatusCancelled))
	assert.Error(t, CanTransition(OrderStatusCancelled, OrderStatusPending))
	assert.True(t, IsTerminalStatus(OrderStatusDelivered))
	assert.True(t, IsTerminalStatus(OrderStatusCancelled))
	assert.False(t, IsTerminalStatus(OrderStatusPending))
}

func TestCanTransition_SameStatusIdempotent(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.NoError(t, CanTransition(s, s))
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	assert.Error(t, CanTransition(OrderStatusPending, OrderStatus("returned")))
}

func TestNextStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]OrderStatus{OrderStatusConfirmed, OrderStatusCancelled},
		NextStatuses(OrderStatusPending))
	assert.Empty(t, NextStatuses(OrderStatusDelivered))
}

func TestCanArchive(t *testing.T) {
	assert.True(t, CanArchive(OrderStatusDelivered))
	assert.False(t, CanArchive(OrderStatusPending))
	assert.False(t, CanArchive(OrderStatusCancelled))
}
