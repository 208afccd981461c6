package gen

import "ecomgen/internal/models"

// ReconcileOrderTotals sets each order's authoritative total from its items:
// the sum of item subtotals plus the order's shipping cost, rounded once
// after summation. Subtotals accumulate in item-generation order, which
// keeps the float summation (and therefore the rounded result)
// reproducible across runs.
//
// Orders with no items get total = shipping cost; the sum of zero items is
// zero. Only TotalAmount is touched, so running the pass again over the same
// items yields bit-for-bit identical totals.
func ReconcileOrderTotals(orders []models.Order, items []models.OrderItem) {
	subtotals := make(map[int64]float64, len(orders))
	for _, item := range items {
		subtotals[item.OrderID] += item.Subtotal
	}

	for i := range orders {
		orders[i].TotalAmount = models.Round2(subtotals[orders[i].ID] + orders[i].ShippingCost)
	}
}
