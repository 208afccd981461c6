// Package csvfile reads and writes the five delimited files that carry the
// generated dataset between the pipeline stages. Headers must match the
// field names exactly; booleans are written as the literals "True"/"False"
// and parsed case-insensitively.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ecomgen/internal/models"
)

// File names for the five entity collections.
const (
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
	ReviewsFile    = "reviews.csv"
)

// AllFiles lists every file a complete dataset consists of, in load order.
var AllFiles = []string{
	CustomersFile,
	ProductsFile,
	OrdersFile,
	OrderItemsFile,
	ReviewsFile,
}

var (
	customerHeader = []string{"customer_id", "first_name", "last_name", "email",
		"phone", "address", "city", "state", "zip_code", "country", "date_joined"}
	productHeader = []string{"product_id", "name", "description", "category",
		"price", "cost", "stock_quantity", "brand", "sku", "created_at"}
	orderHeader = []string{"order_id", "customer_id", "order_date", "status",
		"shipping_address", "shipping_city", "shipping_state", "shipping_zip",
		"shipping_cost", "total_amount"}
	orderItemHeader = []string{"order_item_id", "order_id", "product_id",
		"quantity", "unit_price", "subtotal"}
	reviewHeader = []string{"review_id", "product_id", "customer_id", "rating",
		"review_text", "review_date", "verified_purchase"}
)

// MissingFiles returns the dataset files absent from dir, in load order.
// An empty result means the loader has everything it needs.
func MissingFiles(dir string) []string {
	var missing []string
	for _, name := range AllFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

func writeFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return f.Close()
}

// readFile reads path, checks the header matches want exactly and returns
// the data rows.
func readFile(path string, want []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	header := records[0]
	if len(header) != len(want) {
		return nil, fmt.Errorf("%s: header has %d fields, want %d", path, len(header), len(want))
	}
	for i, name := range want {
		if header[i] != name {
			return nil, fmt.Errorf("%s: header field %d is %q, want %q", path, i, header[i], name)
		}
	}
	return records[1:], nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func parseBool(s string) (bool, error) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q (want True or False)", s)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(models.DateFormat, s)
}
