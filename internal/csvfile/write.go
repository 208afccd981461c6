package csvfile

import (
	"path/filepath"
	"strconv"

	"ecomgen/internal/models"
)

// WriteAll writes the complete dataset into dir, one file per entity type.
// Orders are expected to be reconciled already; this is the single write-out
// after the in-memory total update.
func WriteAll(dir string, ds *models.Dataset) error {
	if err := WriteCustomers(filepath.Join(dir, CustomersFile), ds.Customers); err != nil {
		return err
	}
	if err := WriteProducts(filepath.Join(dir, ProductsFile), ds.Products); err != nil {
		return err
	}
	if err := WriteOrders(filepath.Join(dir, OrdersFile), ds.Orders); err != nil {
		return err
	}
	if err := WriteOrderItems(filepath.Join(dir, OrderItemsFile), ds.OrderItems); err != nil {
		return err
	}
	return WriteReviews(filepath.Join(dir, ReviewsFile), ds.Reviews)
}

func WriteCustomers(path string, customers []models.Customer) error {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.FirstName,
			c.LastName,
			c.Email,
			c.Phone,
			c.Address,
			c.City,
			c.State,
			c.ZipCode,
			c.Country,
			c.DateJoined.Format(models.DateFormat),
		})
	}
	return writeFile(path, customerHeader, rows)
}

func WriteProducts(path string, products []models.Product) error {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Description,
			p.Category,
			formatFloat(p.Price),
			formatFloat(p.Cost),
			strconv.Itoa(p.StockQuantity),
			p.Brand,
			p.SKU,
			p.CreatedAt.Format(models.DateFormat),
		})
	}
	return writeFile(path, productHeader, rows)
}

func WriteOrders(path string, orders []models.Order) error {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.FormatInt(o.ID, 10),
			strconv.FormatInt(o.CustomerID, 10),
			o.OrderDate.Format(models.DateFormat),
			o.Status,
			o.ShippingAddress,
			o.ShippingCity,
			o.ShippingState,
			o.ShippingZip,
			formatFloat(o.ShippingCost),
			formatFloat(o.TotalAmount),
		})
	}
	return writeFile(path, orderHeader, rows)
}

func WriteOrderItems(path string, items []models.OrderItem) error {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.FormatInt(it.ID, 10),
			strconv.FormatInt(it.OrderID, 10),
			strconv.FormatInt(it.ProductID, 10),
			strconv.Itoa(it.Quantity),
			formatFloat(it.UnitPrice),
			formatFloat(it.Subtotal),
		})
	}
	return writeFile(path, orderItemHeader, rows)
}

func WriteReviews(path string, reviews []models.Review) error {
	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.ProductID, 10),
			strconv.FormatInt(r.CustomerID, 10),
			strconv.Itoa(r.Rating),
			r.ReviewText,
			r.ReviewDate.Format(models.DateFormat),
			formatBool(r.VerifiedPurchase),
		})
	}
	return writeFile(path, reviewHeader, rows)
}
