package gen

import (
	"fmt"
	"strings"
	"time"

	"ecomgen/internal/models"
	"ecomgen/internal/util"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
)

// maxUniqueAttempts bounds the retry loop for fields that must be unique
// within a run (emails, SKUs). Exhausting it is a hard error rather than a
// silent duplicate.
const maxUniqueAttempts = 100

// Generator produces the five entity collections from a single seeded
// source, so identical seeds yield identical datasets.
type Generator struct {
	faker  *gofakeit.Faker
	logger *zap.Logger
}

// New creates a generator seeded for reproducibility.
func New(seed int64) *Generator {
	return &Generator{
		faker:  gofakeit.New(seed),
		logger: util.GetLogger(),
	}
}

// Customers generates n customers with ids 1..n and unique emails.
func (g *Generator) Customers(n int) ([]models.Customer, error) {
	now := time.Now()
	seen := make(map[string]struct{}, n)
	customers := make([]models.Customer, 0, n)

	for i := 1; i <= n; i++ {
		email, err := g.unique(seen, g.faker.Email)
		if err != nil {
			return nil, fmt.Errorf("customer %d: %w", i, err)
		}
		customers = append(customers, models.Customer{
			ID:         int64(i),
			FirstName:  g.faker.FirstName(),
			LastName:   g.faker.LastName(),
			Email:      email,
			Phone:      g.faker.PhoneFormatted(),
			Address:    g.faker.Street(),
			City:       g.faker.City(),
			State:      g.faker.StateAbr(),
			ZipCode:    g.faker.Zip(),
			Country:    g.faker.Country(),
			DateJoined: g.faker.DateRange(now.AddDate(-2, 0, 0), now),
		})
	}

	g.logger.Info("Generated customers", zap.Int("count", len(customers)))
	return customers, nil
}

// Products generates n products with ids 1..n and unique SKUs. Cost is a
// 30%-70% fraction of price.
func (g *Generator) Products(n int) ([]models.Product, error) {
	now := time.Now()
	seen := make(map[string]struct{}, n)
	products := make([]models.Product, 0, n)

	for i := 1; i <= n; i++ {
		sku, err := g.unique(seen, g.sku)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", i, err)
		}
		price := models.Round2(g.faker.Price(10, 500))
		cost := models.Round2(price * g.faker.Float64Range(0.3, 0.7))

		products = append(products, models.Product{
			ID:            int64(i),
			Name:          g.faker.Slogan(),
			Description:   g.faker.Sentence(12),
			Category:      g.faker.RandomString(models.ProductCategories),
			Price:         price,
			Cost:          cost,
			StockQuantity: g.faker.Number(0, 1000),
			Brand:         g.faker.Company(),
			SKU:           sku,
			CreatedAt:     g.faker.DateRange(now.AddDate(-1, 0, 0), now),
		})
	}

	g.logger.Info("Generated products", zap.Int("count", len(products)))
	return products, nil
}

// Orders generates n orders referencing customers 1..customerCount. Totals
// are left at the zero placeholder until ReconcileOrderTotals runs.
func (g *Generator) Orders(n, customerCount int) []models.Order {
	now := time.Now()
	orders := make([]models.Order, 0, n)

	for i := 1; i <= n; i++ {
		orders = append(orders, models.Order{
			ID:              int64(i),
			CustomerID:      int64(g.faker.Number(1, customerCount)),
			OrderDate:       g.faker.DateRange(now.AddDate(-1, 0, 0), now),
			Status:          g.faker.RandomString(models.OrderStatuses),
			ShippingAddress: g.faker.Street(),
			ShippingCity:    g.faker.City(),
			ShippingState:   g.faker.StateAbr(),
			ShippingZip:     g.faker.Zip(),
			ShippingCost:    models.Round2(g.faker.Float64Range(5, 25)),
			TotalAmount:     0,
		})
	}

	g.logger.Info("Generated orders", zap.Int("count", len(orders)))
	return orders
}

// OrderItems generates 1-5 items per order, each referencing a distinct
// product drawn without replacement (capped at productCount when fewer than
// five products exist). Item ids are contiguous in generation order.
func (g *Generator) OrderItems(orders []models.Order, productCount int) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(orders)*3)

	for _, order := range orders {
		numItems := g.faker.Number(1, 5)
		if numItems > productCount {
			numItems = productCount
		}

		picked := make(map[int64]struct{}, numItems)
		for len(picked) < numItems {
			productID := int64(g.faker.Number(1, productCount))
			if _, dup := picked[productID]; dup {
				continue
			}
			picked[productID] = struct{}{}

			quantity := g.faker.Number(1, 5)
			unitPrice := models.Round2(g.faker.Float64Range(10, 500))
			items = append(items, models.OrderItem{
				ID:        int64(len(items) + 1),
				OrderID:   order.ID,
				ProductID: productID,
				Quantity:  quantity,
				UnitPrice: unitPrice,
				Subtotal:  models.Round2(unitPrice * float64(quantity)),
			})
		}
	}

	g.logger.Info("Generated order items", zap.Int("count", len(items)))
	return items
}

// Reviews generates n reviews referencing existing customers and products.
// The verified-purchase flag is sampled independently of order history.
func (g *Generator) Reviews(n, customerCount, productCount int) []models.Review {
	now := time.Now()
	reviews := make([]models.Review, 0, n)

	for i := 1; i <= n; i++ {
		reviews = append(reviews, models.Review{
			ID:               int64(i),
			ProductID:        int64(g.faker.Number(1, productCount)),
			CustomerID:       int64(g.faker.Number(1, customerCount)),
			Rating:           g.faker.Number(1, 5),
			ReviewText:       g.faker.Paragraph(1, 3, 8, " "),
			ReviewDate:       g.faker.DateRange(now.AddDate(-1, 0, 0), now),
			VerifiedPurchase: g.faker.Bool(),
		})
	}

	g.logger.Info("Generated reviews", zap.Int("count", len(reviews)))
	return reviews
}

func (g *Generator) sku() string {
	return "SKU-" + g.faker.DigitN(4) + "-" + strings.ToUpper(g.faker.LetterN(4))
}

// unique draws values until one is unseen, recording it, or fails once the
// retry budget is exhausted.
func (g *Generator) unique(seen map[string]struct{}, next func() string) (string, error) {
	for attempt := 0; attempt < maxUniqueAttempts; attempt++ {
		v := next()
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		return v, nil
	}
	return "", fmt.Errorf("no unique value found after %d attempts (%d already taken)", maxUniqueAttempts, len(seen))
}
