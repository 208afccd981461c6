package csvfile

import (
	"fmt"
	"path/filepath"
	"strconv"

	"ecomgen/internal/models"
)

// ReadAll reads the complete dataset from dir, coercing every field to its
// declared type. Callers should check MissingFiles first for a friendlier
// error than the per-file open failure.
func ReadAll(dir string) (*models.Dataset, error) {
	customers, err := ReadCustomers(filepath.Join(dir, CustomersFile))
	if err != nil {
		return nil, err
	}
	products, err := ReadProducts(filepath.Join(dir, ProductsFile))
	if err != nil {
		return nil, err
	}
	orders, err := ReadOrders(filepath.Join(dir, OrdersFile))
	if err != nil {
		return nil, err
	}
	items, err := ReadOrderItems(filepath.Join(dir, OrderItemsFile))
	if err != nil {
		return nil, err
	}
	reviews, err := ReadReviews(filepath.Join(dir, ReviewsFile))
	if err != nil {
		return nil, err
	}
	return &models.Dataset{
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
		Reviews:    reviews,
	}, nil
}

func ReadCustomers(path string) ([]models.Customer, error) {
	rows, err := readFile(path, customerHeader)
	if err != nil {
		return nil, err
	}

	customers := make([]models.Customer, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "customer_id", err)
		}
		joined, err := parseDate(row[10])
		if err != nil {
			return nil, rowErr(path, i, "date_joined", err)
		}
		customers = append(customers, models.Customer{
			ID:         id,
			FirstName:  row[1],
			LastName:   row[2],
			Email:      row[3],
			Phone:      row[4],
			Address:    row[5],
			City:       row[6],
			State:      row[7],
			ZipCode:    row[8],
			Country:    row[9],
			DateJoined: joined,
		})
	}
	return customers, nil
}

func ReadProducts(path string) ([]models.Product, error) {
	rows, err := readFile(path, productHeader)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "product_id", err)
		}
		price, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, rowErr(path, i, "price", err)
		}
		cost, err := strconv.ParseFloat(row[5], 64)
		if err != nil {
			return nil, rowErr(path, i, "cost", err)
		}
		stock, err := strconv.Atoi(row[6])
		if err != nil {
			return nil, rowErr(path, i, "stock_quantity", err)
		}
		created, err := parseDate(row[9])
		if err != nil {
			return nil, rowErr(path, i, "created_at", err)
		}
		products = append(products, models.Product{
			ID:            id,
			Name:          row[1],
			Description:   row[2],
			Category:      row[3],
			Price:         price,
			Cost:          cost,
			StockQuantity: stock,
			Brand:         row[7],
			SKU:           row[8],
			CreatedAt:     created,
		})
	}
	return products, nil
}

func ReadOrders(path string) ([]models.Order, error) {
	rows, err := readFile(path, orderHeader)
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "order_id", err)
		}
		customerID, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "customer_id", err)
		}
		orderDate, err := parseDate(row[2])
		if err != nil {
			return nil, rowErr(path, i, "order_date", err)
		}
		shippingCost, err := strconv.ParseFloat(row[8], 64)
		if err != nil {
			return nil, rowErr(path, i, "shipping_cost", err)
		}
		total, err := strconv.ParseFloat(row[9], 64)
		if err != nil {
			return nil, rowErr(path, i, "total_amount", err)
		}
		orders = append(orders, models.Order{
			ID:              id,
			CustomerID:      customerID,
			OrderDate:       orderDate,
			Status:          row[3],
			ShippingAddress: row[4],
			ShippingCity:    row[5],
			ShippingState:   row[6],
			ShippingZip:     row[7],
			ShippingCost:    shippingCost,
			TotalAmount:     total,
		})
	}
	return orders, nil
}

func ReadOrderItems(path string) ([]models.OrderItem, error) {
	rows, err := readFile(path, orderItemHeader)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "order_item_id", err)
		}
		orderID, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "order_id", err)
		}
		productID, err := strconv.ParseInt(row[2], 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "product_id", err)
		}
		quantity, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, rowErr(path, i, "quantity", err)
		}
		unitPrice, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, rowErr(path, i, "unit_price", err)
		}
		subtotal, err := strconv.ParseFloat(row[5], 64)
		if err != nil {
			return nil, rowErr(path, i, "subtotal", err)
		}
		items = append(items, models.OrderItem{
			ID:        id,
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
		})
	}
	return items, nil
}

func ReadReviews(path string) ([]models.Review, error) {
	rows, err := readFile(path, reviewHeader)
	if err != nil {
		return nil, err
	}

	reviews := make([]models.Review, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "review_id", err)
		}
		productID, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "product_id", err)
		}
		customerID, err := strconv.ParseInt(row[2], 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "customer_id", err)
		}
		rating, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, rowErr(path, i, "rating", err)
		}
		reviewDate, err := parseDate(row[5])
		if err != nil {
			return nil, rowErr(path, i, "review_date", err)
		}
		verified, err := parseBool(row[6])
		if err != nil {
			return nil, rowErr(path, i, "verified_purchase", err)
		}
		reviews = append(reviews, models.Review{
			ID:               id,
			ProductID:        productID,
			CustomerID:       customerID,
			Rating:           rating,
			ReviewText:       row[4],
			ReviewDate:       reviewDate,
			VerifiedPurchase: verified,
		})
	}
	return reviews, nil
}

// rowErr names the file, data row and field of a coercion failure. Row
// numbers are 1-based and exclude the header.
func rowErr(path string, row int, field string, err error) error {
	return fmt.Errorf("%s row %d: invalid %s: %w", path, row+1, field, err)
}
