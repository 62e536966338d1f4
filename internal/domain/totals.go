package domain

// TaxRate is the fixed national VAT rate applied to every order.
// Totals are computed once at checkout and frozen, so historical orders
// keep the rate that was in force when they were placed.
const TaxRate = 0.18

type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// ComputeTotals derives the order totals from its line items. Pure and
// deterministic; values are raw float64 doubles, display layers round
// to two decimals for presentation only.
func ComputeTotals(items []OrderItem) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	tax := subtotal * TaxRate
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// LineSubtotal computes a single item's subtotal snapshot.
func LineSubtotal(unitPrice float64, quantity int) float64 {
	return unitPrice * float64(quantity)
}
