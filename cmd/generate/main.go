// Command generate produces the five synthetic e-commerce CSV files:
// customers, products, orders, order_items and reviews. Orders are written
// with reconciled totals (sum of item subtotals plus shipping cost).
package main

import (
	"fmt"
	"log"

	"ecomgen/config"
	"ecomgen/internal/csvfile"
	"ecomgen/internal/gen"
	"ecomgen/internal/models"
	"ecomgen/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := util.InitLogger(cfg.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger().With(zap.String("run_id", uuid.New().String()))
	logger.Info("Starting data generation",
		zap.Int64("seed", cfg.Generate.Seed),
		zap.String("data_dir", cfg.Generate.DataDir))

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	g := gen.New(cfg.Generate.Seed)

	// Customers and products first: orders, items and reviews reference
	// their id ranges.
	customers, err := g.Customers(cfg.Generate.Customers)
	if err != nil {
		logger.Fatal("Failed to generate customers", zap.Error(err))
	}
	products, err := g.Products(cfg.Generate.Products)
	if err != nil {
		logger.Fatal("Failed to generate products", zap.Error(err))
	}

	orders := g.Orders(cfg.Generate.Orders, len(customers))
	items := g.OrderItems(orders, len(products))

	gen.ReconcileOrderTotals(orders, items)
	logger.Info("Reconciled order totals",
		zap.Int("orders", len(orders)),
		zap.Int("order_items", len(items)))

	reviews := g.Reviews(cfg.Generate.Reviews, len(customers), len(products))

	ds := &models.Dataset{
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
		Reviews:    reviews,
	}
	if err := csvfile.WriteAll(cfg.Generate.DataDir, ds); err != nil {
		logger.Fatal("Failed to write dataset", zap.Error(err))
	}

	fmt.Println("Data generation complete:")
	fmt.Printf("  %-16s %d\n", csvfile.CustomersFile, len(ds.Customers))
	fmt.Printf("  %-16s %d\n", csvfile.ProductsFile, len(ds.Products))
	fmt.Printf("  %-16s %d\n", csvfile.OrdersFile, len(ds.Orders))
	fmt.Printf("  %-16s %d\n", csvfile.OrderItemsFile, len(ds.OrderItems))
	fmt.Printf("  %-16s %d\n", csvfile.ReviewsFile, len(ds.Reviews))
}
