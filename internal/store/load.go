package store

import (
	"context"
	"fmt"

	"ecomgen/internal/models"

	"github.com/jmoiron/sqlx"
)

// chunkSize keeps each multi-row INSERT under the bind-parameter limits of
// both engines (65535 for postgres, 32766 for bundled sqlite).
const chunkSize = 500

const (
	insertCustomersSQL = `
		INSERT INTO customers (customer_id, first_name, last_name, email, phone,
			address, city, state, zip_code, country, date_joined)
		VALUES (:customer_id, :first_name, :last_name, :email, :phone,
			:address, :city, :state, :zip_code, :country, :date_joined)`

	insertProductsSQL = `
		INSERT INTO products (product_id, name, description, category, price,
			cost, stock_quantity, brand, sku, created_at)
		VALUES (:product_id, :name, :description, :category, :price,
			:cost, :stock_quantity, :brand, :sku, :created_at)`

	insertOrdersSQL = `
		INSERT INTO orders (order_id, customer_id, order_date, status,
			shipping_address, shipping_city, shipping_state, shipping_zip,
			shipping_cost, total_amount)
		VALUES (:order_id, :customer_id, :order_date, :status,
			:shipping_address, :shipping_city, :shipping_state, :shipping_zip,
			:shipping_cost, :total_amount)`

	insertOrderItemsSQL = `
		INSERT INTO order_items (order_item_id, order_id, product_id, quantity,
			unit_price, subtotal)
		VALUES (:order_item_id, :order_id, :product_id, :quantity,
			:unit_price, :subtotal)`

	insertReviewsSQL = `
		INSERT INTO reviews (review_id, product_id, customer_id, rating,
			review_text, review_date, verified_purchase)
		VALUES (:review_id, :product_id, :customer_id, :rating,
			:review_text, :review_date, :verified_purchase)`
)

// Load bulk-inserts the dataset inside a single transaction, in dependency
// order. Any failure (uniqueness violation, check constraint, malformed
// value) rolls back the whole load and surfaces with its cause, leaving the
// store schema-only.
func (s *Store) Load(ctx context.Context, ds *models.Dataset) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertChunked(ctx, tx, insertCustomersSQL, ds.Customers); err != nil {
		return fmt.Errorf("failed to insert customers: %w", err)
	}
	if err := insertChunked(ctx, tx, insertProductsSQL, ds.Products); err != nil {
		return fmt.Errorf("failed to insert products: %w", err)
	}
	if err := insertChunked(ctx, tx, insertOrdersSQL, ds.Orders); err != nil {
		return fmt.Errorf("failed to insert orders: %w", err)
	}
	if err := insertChunked(ctx, tx, insertOrderItemsSQL, ds.OrderItems); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	if err := insertChunked(ctx, tx, insertReviewsSQL, ds.Reviews); err != nil {
		return fmt.Errorf("failed to insert reviews: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load: %w", err)
	}
	return nil
}

// insertChunked expands the named query into multi-row inserts of at most
// chunkSize rows each.
func insertChunked[T any](ctx context.Context, tx *sqlx.Tx, query string, rows []T) error {
	for start := 0; start < len(rows); start += chunkSize {
		end := min(start+chunkSize, len(rows))
		if _, err := tx.NamedExecContext(ctx, query, rows[start:end]); err != nil {
			return err
		}
	}
	return nil
}
