package store

import (
	"context"
	"fmt"
)

// Report summarizes a post-load verification pass: per-table row counts and
// the number of dangling foreign-key references per relationship. Dangling
// references are warnings; the load has already committed.
type Report struct {
	Counts map[string]int

	OrphanOrderCustomers  int
	OrphanItemOrders      int
	OrphanItemProducts    int
	OrphanReviewProducts  int
	OrphanReviewCustomers int
}

// DanglingTotal is the total number of unresolved references found.
func (r *Report) DanglingTotal() int {
	return r.OrphanOrderCustomers +
		r.OrphanItemOrders +
		r.OrphanItemProducts +
		r.OrphanReviewProducts +
		r.OrphanReviewCustomers
}

var orphanQueries = []struct {
	query string
	dest  func(*Report) *int
}{
	{
		`SELECT COUNT(*) FROM orders o
		 WHERE NOT EXISTS (SELECT 1 FROM customers c WHERE c.customer_id = o.customer_id)`,
		func(r *Report) *int { return &r.OrphanOrderCustomers },
	},
	{
		`SELECT COUNT(*) FROM order_items oi
		 WHERE NOT EXISTS (SELECT 1 FROM orders o WHERE o.order_id = oi.order_id)`,
		func(r *Report) *int { return &r.OrphanItemOrders },
	},
	{
		`SELECT COUNT(*) FROM order_items oi
		 WHERE NOT EXISTS (SELECT 1 FROM products p WHERE p.product_id = oi.product_id)`,
		func(r *Report) *int { return &r.OrphanItemProducts },
	},
	{
		`SELECT COUNT(*) FROM reviews rv
		 WHERE NOT EXISTS (SELECT 1 FROM products p WHERE p.product_id = rv.product_id)`,
		func(r *Report) *int { return &r.OrphanReviewProducts },
	},
	{
		`SELECT COUNT(*) FROM reviews rv
		 WHERE NOT EXISTS (SELECT 1 FROM customers c WHERE c.customer_id = rv.customer_id)`,
		func(r *Report) *int { return &r.OrphanReviewCustomers },
	},
}

// Verify counts rows per table and independently confirms that every
// foreign-key value resolves to an existing row.
func (s *Store) Verify(ctx context.Context) (*Report, error) {
	report := &Report{Counts: make(map[string]int, len(Tables))}

	for _, table := range Tables {
		var count int
		if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		report.Counts[table] = count
	}

	for _, oq := range orphanQueries {
		if err := s.db.GetContext(ctx, oq.dest(report), oq.query); err != nil {
			return nil, fmt.Errorf("failed to check references: %w", err)
		}
	}

	return report, nil
}
