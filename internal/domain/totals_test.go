package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Tax)
	assert.Equal(t, 0.0, totals.Total)
}

func TestComputeTotals_SingleItem(t *testing.T) {
	totals := ComputeTotals([]OrderItem{
		{Price: 100.0, Quantity: 2},
	})

	assert.InDelta(t, 200.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 36.0, totals.Tax, 1e-9)
	assert.InDelta(t, 236.0, totals.Total, 1e-9)
}

func TestComputeTotals_CheckoutScenario(t *testing.T) {
	totals := ComputeTotals([]OrderItem{
		{Price: 25.50, Quantity: 5},
		{Price: 18.75, Quantity: 10},
	})

	assert.InDelta(t, 315.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 56.70, totals.Tax, 1e-9)
	assert.InDelta(t, 371.70, totals.Total, 1e-9)
}

func TestComputeTotals_Consistency(t *testing.T) {
	items := []OrderItem{
		{Price: 12.34, Quantity: 3},
		{Price: 0, Quantity: 7},
		{Price: 999.99, Quantity: 1},
	}

	totals := ComputeTotals(items)

	var expected float64
	for _, it := range items {
		expected += it.Price * float64(it.Quantity)
	}
	assert.InDelta(t, expected, totals.Subtotal, 1e-9)
	assert.InDelta(t, expected*TaxRate, totals.Tax, 1e-9)
	assert.InDelta(t, totals.Subtotal+totals.Tax, totals.Total, 1e-9)
}

func TestLineSubtotal(t *testing.T) {
	assert.InDelta(t, 127.50, LineSubtotal(25.50, 5), 1e-9)
	assert.Equal(t, 0.0, LineSubtotal(0, 100))
}
