package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Generate GenerateConfig
	Database DatabaseConfig
}

type GenerateConfig struct {
	Seed      int64
	DataDir   string
	Customers int
	Products  int
	Orders    int
	Reviews   int
}

type DatabaseConfig struct {
	// Driver is "sqlite3" or "postgres".
	Driver string
	// URL is the DSN: a file path for sqlite3, a connection URL for postgres.
	URL string
}

func Load() *Config {
	_ = godotenv.Load()

	seed, _ := strconv.ParseInt(getEnv("SEED", "42"), 10, 64)
	customers, _ := strconv.Atoi(getEnv("NUM_CUSTOMERS", "1000"))
	products, _ := strconv.Atoi(getEnv("NUM_PRODUCTS", "500"))
	orders, _ := strconv.Atoi(getEnv("NUM_ORDERS", "2000"))
	reviews, _ := strconv.Atoi(getEnv("NUM_REVIEWS", "1500"))

	cfg := &Config{
		Env: getEnv("ENV", "development"),
		Generate: GenerateConfig{
			Seed:      seed,
			DataDir:   getEnv("DATA_DIR", "."),
			Customers: customers,
			Products:  products,
			Orders:    orders,
			Reviews:   reviews,
		},
		Database: DatabaseConfig{
			Driver: getEnv("DATABASE_DRIVER", "sqlite3"),
			URL:    getEnv("DATABASE_URL", "ecom.db"),
		},
	}

	log.Printf("Config loaded: env=%s, driver=%s", cfg.Env, cfg.Database.Driver)
	return cfg
}

// Validate fails fast on configurations that would silently generate
// dangling references, before any file or database I/O happens.
func (c *Config) Validate() error {
	g := c.Generate
	if g.Customers < 0 || g.Products < 0 || g.Orders < 0 || g.Reviews < 0 {
		return fmt.Errorf("entity counts must be non-negative: customers=%d products=%d orders=%d reviews=%d",
			g.Customers, g.Products, g.Orders, g.Reviews)
	}
	if g.Orders > 0 && g.Customers == 0 {
		return fmt.Errorf("cannot generate %d orders with zero customers to reference", g.Orders)
	}
	if g.Orders > 0 && g.Products == 0 {
		return fmt.Errorf("cannot generate order items for %d orders with zero products to reference", g.Orders)
	}
	if g.Reviews > 0 && (g.Customers == 0 || g.Products == 0) {
		return fmt.Errorf("cannot generate %d reviews with zero customers or products to reference", g.Reviews)
	}
	switch c.Database.Driver {
	case "sqlite3", "postgres":
	default:
		return fmt.Errorf("unsupported database driver %q (want sqlite3 or postgres)", c.Database.Driver)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
