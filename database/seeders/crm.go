package seeders

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/crm/app/models"
)

func init() {
	Register("crm", SeedCRM)
}

// SeedCRM wipes the CRM tables and loads a small demo dataset:
// five customers, seven products, and five orders with computed totals.
func SeedCRM(db *gorm.DB) error {
	// Clear existing data. Orders first so the join rows go with them.
	if err := db.Exec("DELETE FROM order_products").Error; err != nil {
		return err
	}
	for _, table := range []string{"orders", "customers", "products"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}

	customers := []models.Customer{
		{Name: "Alice Johnson", Email: "alice@example.com", Phone: "+1234567890"},
		{Name: "Bob Smith", Email: "bob@example.com", Phone: "123-456-7890"},
		{Name: "Carol Williams", Email: "carol@example.com", Phone: "+9876543210"},
		{Name: "David Brown", Email: "david@example.com", Phone: "987-654-3210"},
		{Name: "Eve Davis", Email: "eve@example.com", Phone: "+1122334455"},
	}
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			return fmt.Errorf("seed customer %s: %w", customers[i].Name, err)
		}
	}

	products := []models.Product{
		{Name: "Laptop", Price: decimal.RequireFromString("999.99"), Stock: 10},
		{Name: "Mouse", Price: decimal.RequireFromString("29.99"), Stock: 50},
		{Name: "Keyboard", Price: decimal.RequireFromString("79.99"), Stock: 30},
		{Name: "Monitor", Price: decimal.RequireFromString("299.99"), Stock: 15},
		{Name: "Headphones", Price: decimal.RequireFromString("149.99"), Stock: 25},
		{Name: "Webcam", Price: decimal.RequireFromString("89.99"), Stock: 20},
		{Name: "USB Cable", Price: decimal.RequireFromString("9.99"), Stock: 100},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return fmt.Errorf("seed product %s: %w", products[i].Name, err)
		}
	}

	orders := []struct {
		customer int
		products []int
	}{
		{0, []int{0, 1, 2}},
		{1, []int{3, 4}},
		{2, []int{1, 6}},
		{3, []int{0, 3, 4, 5}},
		{4, []int{2, 6}},
	}
	now := time.Now()
	for _, o := range orders {
		order := models.Order{CustomerID: customers[o.customer].ID, OrderDate: now}
		for _, pi := range o.products {
			order.Products = append(order.Products, products[pi])
		}
		order.CalculateTotal()

		if err := db.Omit("Products").Create(&order).Error; err != nil {
			return fmt.Errorf("seed order for %s: %w", customers[o.customer].Name, err)
		}
		if err := db.Model(&order).Association("Products").Append(order.Products); err != nil {
			return fmt.Errorf("seed order products: %w", err)
		}
	}

	return nil
}
