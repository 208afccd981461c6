package models

import (
	"math"
	"time"
)

// DateFormat is how all date fields are serialized in the CSV files.
const DateFormat = "2006-01-02"

// Customer represents a registered customer
type Customer struct {
	ID         int64     `db:"customer_id"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	Address    string    `db:"address"`
	City       string    `db:"city"`
	State      string    `db:"state"`
	ZipCode    string    `db:"zip_code"`
	Country    string    `db:"country"`
	DateJoined time.Time `db:"date_joined"`
}

// Product represents a catalog product
type Product struct {
	ID            int64     `db:"product_id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	Category      string    `db:"category"`
	Price         float64   `db:"price"`
	Cost          float64   `db:"cost"`
	StockQuantity int       `db:"stock_quantity"`
	Brand         string    `db:"brand"`
	SKU           string    `db:"sku"`
	CreatedAt     time.Time `db:"created_at"`
}

// Order represents a customer order. TotalAmount stays at its zero
// placeholder until the reconciliation pass has run over the order items.
type Order struct {
	ID              int64     `db:"order_id"`
	CustomerID      int64     `db:"customer_id"`
	OrderDate       time.Time `db:"order_date"`
	Status          string    `db:"status"`
	ShippingAddress string    `db:"shipping_address"`
	ShippingCity    string    `db:"shipping_city"`
	ShippingState   string    `db:"shipping_state"`
	ShippingZip     string    `db:"shipping_zip"`
	ShippingCost    float64   `db:"shipping_cost"`
	TotalAmount     float64   `db:"total_amount"`
}

// OrderItem represents one line of an order. UnitPrice is sampled
// independently of the product's catalog price.
type OrderItem struct {
	ID        int64   `db:"order_item_id"`
	OrderID   int64   `db:"order_id"`
	ProductID int64   `db:"product_id"`
	Quantity  int     `db:"quantity"`
	UnitPrice float64 `db:"unit_price"`
	Subtotal  float64 `db:"subtotal"`
}

// Review represents a product review by a customer. VerifiedPurchase is
// sampled independently of actual purchase history.
type Review struct {
	ID               int64     `db:"review_id"`
	ProductID        int64     `db:"product_id"`
	CustomerID       int64     `db:"customer_id"`
	Rating           int       `db:"rating"`
	ReviewText       string    `db:"review_text"`
	ReviewDate       time.Time `db:"review_date"`
	VerifiedPurchase bool      `db:"verified_purchase"`
}

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses is the set an order's status is drawn from.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ProductCategories is the fixed category set for generated products.
var ProductCategories = []string{
	"Electronics",
	"Clothing",
	"Home & Garden",
	"Sports & Outdoors",
	"Books",
	"Toys & Games",
	"Health & Beauty",
	"Automotive",
	"Food & Beverages",
	"Office Supplies",
}

// Dataset bundles the five collections handed from the generator to the
// CSV layer and from the CSV layer to the loader.
type Dataset struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Reviews    []Review
}

// Round2 rounds a monetary amount to two decimal places. Every stored money
// value passes through this exactly once; the reconciler relies on that for
// bit-for-bit reproducible totals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
