package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltline/internal/domain"
)

func cartProduct(id string, price float64) domain.Product {
	return domain.Product{
		ID:        id,
		Name:      "Product " + id,
		Reference: "REF-" + id,
		Images:    []string{id + ".jpg"},
		Price:     &price,
		IsActive:  true,
	}
}

func TestCartStore_AddItem(t *testing.T) {
	cart := NewCartStore()

	require.NoError(t, cart.AddItem(cartProduct("p1", 25.50), 2))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, "Product p1", lines[0].Name)
	assert.Equal(t, "p1.jpg", lines[0].Image)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCartStore_AddItemMergesQuantities(t *testing.T) {
	cart := NewCartStore()

	require.NoError(t, cart.AddItem(cartProduct("p1", 10), 2))
	require.NoError(t, cart.AddItem(cartProduct("p1", 10), 3))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5, cart.ItemCount())
}

func TestCartStore_AddItemRejectsBadInput(t *testing.T) {
	cart := NewCartStore()

	assert.Error(t, cart.AddItem(cartProduct("p1", 10), 0))

	inactive := cartProduct("p2", 10)
	inactive.IsActive = false
	assert.Error(t, cart.AddItem(inactive, 1))

	priceless := domain.Product{ID: "p3", Name: "Devis", IsActive: true}
	assert.Error(t, cart.AddItem(priceless, 1))

	assert.Empty(t, cart.Lines())
}

func TestCartStore_UpdateQuantity(t *testing.T) {
	cart := NewCartStore()
	require.NoError(t, cart.AddItem(cartProduct("p1", 10), 2))

	cart.UpdateQuantity("p1", 7)
	assert.Equal(t, 7, cart.Lines()[0].Quantity)

	cart.UpdateQuantity("p1", 0)
	assert.Empty(t, cart.Lines())
}

func TestCartStore_RemoveAndClear(t *testing.T) {
	cart := NewCartStore()
	require.NoError(t, cart.AddItem(cartProduct("p1", 10), 1))
	require.NoError(t, cart.AddItem(cartProduct("p2", 20), 1))

	cart.RemoveItem("p1")
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ProductID)

	cart.Clear()
	assert.Empty(t, cart.Lines())
	assert.Equal(t, 0, cart.ItemCount())
}

func TestCartStore_Subtotal(t *testing.T) {
	cart := NewCartStore()
	require.NoError(t, cart.AddItem(cartProduct("p1", 25.50), 5))
	require.NoError(t, cart.AddItem(cartProduct("p2", 18.75), 10))

	assert.InDelta(t, 315.00, cart.Subtotal(), 1e-9)
}

func TestCartStore_SubscribersNotifiedOnEveryMutation(t *testing.T) {
	cart := NewCartStore()

	calls := 0
	unsubscribe := cart.Subscribe(func() { calls++ })

	require.NoError(t, cart.AddItem(cartProduct("p1", 10), 1))
	cart.UpdateQuantity("p1", 3)
	cart.RemoveItem("p1")
	cart.Clear()
	assert.Equal(t, 4, calls)

	unsubscribe()
	require.NoError(t, cart.AddItem(cartProduct("p2", 10), 1))
	assert.Equal(t, 4, calls)
}

func TestCartStore_SubscriberMayReadBackIntoStore(t *testing.T) {
	cart := NewCartStore()

	var seenCount int
	cart.Subscribe(func() { seenCount = cart.ItemCount() })

	require.NoError(t, cart.AddItem(cartProduct("p1", 10), 3))
	assert.Equal(t, 3, seenCount)
}

func TestCartStore_LinesReturnsCopy(t *testing.T) {
	cart := NewCartStore()
	require.NoError(t, cart.AddItem(cartProduct("p1", 10), 1))

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}
