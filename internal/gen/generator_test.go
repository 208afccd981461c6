package gen

import (
	"strings"
	"testing"

	"ecomgen/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomersContiguousIDsAndUniqueEmails(t *testing.T) {
	g := New(42)
	customers, err := g.Customers(200)
	require.NoError(t, err)
	require.Len(t, customers, 200)

	emails := make(map[string]struct{}, len(customers))
	for i, c := range customers {
		assert.Equal(t, int64(i+1), c.ID)
		assert.NotEmpty(t, c.Email)
		_, dup := emails[c.Email]
		assert.False(t, dup, "duplicate email %s", c.Email)
		emails[c.Email] = struct{}{}
	}
}

func TestProductsCostIsFractionOfPrice(t *testing.T) {
	g := New(42)
	products, err := g.Products(200)
	require.NoError(t, err)

	skus := make(map[string]struct{}, len(products))
	for i, p := range products {
		assert.Equal(t, int64(i+1), p.ID)
		assert.GreaterOrEqual(t, p.Price, 10.0)
		assert.LessOrEqual(t, p.Price, 500.0)
		// Half-cent tolerance: cost is rounded after the fraction is applied.
		assert.GreaterOrEqual(t, p.Cost, 0.3*p.Price-0.005, "product %d cost below 30%% of price", p.ID)
		assert.LessOrEqual(t, p.Cost, 0.7*p.Price+0.005, "product %d cost above 70%% of price", p.ID)
		assert.True(t, strings.HasPrefix(p.SKU, "SKU-"), "unexpected sku %s", p.SKU)
		assert.Contains(t, models.ProductCategories, p.Category)

		_, dup := skus[p.SKU]
		assert.False(t, dup, "duplicate sku %s", p.SKU)
		skus[p.SKU] = struct{}{}
	}
}

func TestOrdersReferenceExistingCustomers(t *testing.T) {
	g := New(42)
	orders := g.Orders(100, 7)

	for i, o := range orders {
		assert.Equal(t, int64(i+1), o.ID)
		assert.GreaterOrEqual(t, o.CustomerID, int64(1))
		assert.LessOrEqual(t, o.CustomerID, int64(7))
		assert.Contains(t, models.OrderStatuses, o.Status)
		assert.GreaterOrEqual(t, o.ShippingCost, 5.0)
		assert.LessOrEqual(t, o.ShippingCost, 25.0)
		assert.Zero(t, o.TotalAmount, "total must stay at the placeholder until reconciliation")
	}
}

func TestOrderItemsDistinctProductsPerOrder(t *testing.T) {
	g := New(42)
	orders := g.Orders(50, 10)
	items := g.OrderItems(orders, 20)

	perOrder := make(map[int64]map[int64]struct{})
	for i, it := range items {
		assert.Equal(t, int64(i+1), it.ID)
		assert.GreaterOrEqual(t, it.Quantity, 1)
		assert.LessOrEqual(t, it.Quantity, 5)
		assert.Equal(t, models.Round2(it.UnitPrice*float64(it.Quantity)), it.Subtotal)

		products := perOrder[it.OrderID]
		if products == nil {
			products = make(map[int64]struct{})
			perOrder[it.OrderID] = products
		}
		_, dup := products[it.ProductID]
		assert.False(t, dup, "order %d references product %d twice", it.OrderID, it.ProductID)
		products[it.ProductID] = struct{}{}
	}

	for _, o := range orders {
		n := len(perOrder[o.ID])
		assert.GreaterOrEqual(t, n, 1, "order %d has no items", o.ID)
		assert.LessOrEqual(t, n, 5, "order %d has too many items", o.ID)
	}
}

func TestOrderItemsCappedByProductCount(t *testing.T) {
	g := New(42)
	orders := g.Orders(30, 5)
	items := g.OrderItems(orders, 2)

	perOrder := make(map[int64]int)
	for _, it := range items {
		assert.LessOrEqual(t, it.ProductID, int64(2))
		perOrder[it.OrderID]++
	}
	for orderID, n := range perOrder {
		assert.LessOrEqual(t, n, 2, "order %d oversampled the product universe", orderID)
	}
}

func TestReviewsReferenceExistingRows(t *testing.T) {
	g := New(42)
	reviews := g.Reviews(100, 9, 4)

	for i, r := range reviews {
		assert.Equal(t, int64(i+1), r.ID)
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.GreaterOrEqual(t, r.CustomerID, int64(1))
		assert.LessOrEqual(t, r.CustomerID, int64(9))
		assert.GreaterOrEqual(t, r.ProductID, int64(1))
		assert.LessOrEqual(t, r.ProductID, int64(4))
		assert.NotEmpty(t, r.ReviewText)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, err := New(7).Customers(20)
	require.NoError(t, err)
	b, err := New(7).Customers(20)
	require.NoError(t, err)

	// Dates are sampled relative to the wall clock, so compare the
	// seed-determined fields.
	for i := range a {
		assert.Equal(t, a[i].Email, b[i].Email)
		assert.Equal(t, a[i].FirstName, b[i].FirstName)
		assert.Equal(t, a[i].LastName, b[i].LastName)
		assert.Equal(t, a[i].City, b[i].City)
	}
}

func TestUniqueExhaustsRetryBudget(t *testing.T) {
	g := New(1)
	seen := map[string]struct{}{"constant": {}}

	_, err := g.unique(seen, func() string { return "constant" })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no unique value")
}
