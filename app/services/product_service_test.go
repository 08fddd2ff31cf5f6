package services_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/crm/app/filters"
	"github.com/shashiranjanraj/crm/app/models"
	"github.com/shashiranjanraj/crm/app/repositories"
	"github.com/shashiranjanraj/crm/app/services"
)

func TestCreateProduct(t *testing.T) {
	db := newTestDB(t)
	_, products, _ := newServices(db)

	res := products.Create(services.ProductInput{Name: "Laptop", Price: 999.99, Stock: 10})
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Message)
	}
	if !res.Product.Price.Equal(decimal.RequireFromString("999.99")) {
		t.Errorf("price = %s, want 999.99", res.Product.Price)
	}
}

func TestCreateProductRejectsBadValues(t *testing.T) {
	db := newTestDB(t)
	_, products, _ := newServices(db)

	res := products.Create(services.ProductInput{Name: "Free", Price: 0, Stock: 1})
	if res.Success || res.Message != "Price must be positive" {
		t.Errorf("zero price: success=%v message=%q", res.Success, res.Message)
	}

	res = products.Create(services.ProductInput{Name: "Negative", Price: 9.99, Stock: -1})
	if res.Success || res.Message != "Stock cannot be negative" {
		t.Errorf("negative stock: success=%v message=%q", res.Success, res.Message)
	}

	// Zero stock is allowed; it only means out of stock.
	res = products.Create(services.ProductInput{Name: "Out", Price: 9.99, Stock: 0})
	if !res.Success {
		t.Errorf("zero stock: expected success, got %q", res.Message)
	}
}

// Repeated unfiltered listings go through the read-through cache path; a
// write in between must show up in the next listing.
func TestProductListingReflectsWrites(t *testing.T) {
	db := newTestDB(t)
	_, products, _ := newServices(db)
	repo := repositories.NewProductRepository(db)

	products.Create(services.ProductInput{Name: "Laptop", Price: 999.99, Stock: 10})
	first, err := repo.All(filters.ProductFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("first listing = %d, want 1", len(first))
	}

	products.Create(services.ProductInput{Name: "Mouse", Price: 29.99, Stock: 50})
	second, err := repo.All(filters.ProductFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("second listing = %d, want 2", len(second))
	}
	if second[0].Name != "Laptop" || second[1].Name != "Mouse" {
		t.Errorf("listing order = %s, %s", second[0].Name, second[1].Name)
	}
}

func TestRestockLowStock(t *testing.T) {
	db := newTestDB(t)
	_, products, _ := newServices(db)

	seed := []models.Product{
		{Name: "Low", Price: decimal.RequireFromString("5.00"), Stock: 3},
		{Name: "Empty", Price: decimal.RequireFromString("5.00"), Stock: 0},
		{Name: "AtThreshold", Price: decimal.RequireFromString("5.00"), Stock: models.LowStockThreshold},
		{Name: "Plenty", Price: decimal.RequireFromString("5.00"), Stock: 50},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	res := products.RestockLowStock()
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Message)
	}
	if res.Message != "Successfully updated 2 products" {
		t.Errorf("message = %q", res.Message)
	}
	if len(res.Updated) != 2 {
		t.Fatalf("updated = %d, want 2", len(res.Updated))
	}

	var low models.Product
	db.First(&low, "name = ?", "Low")
	if low.Stock != 3+models.RestockIncrement {
		t.Errorf("Low stock = %d, want %d", low.Stock, 3+models.RestockIncrement)
	}

	// Products at or above the threshold stay untouched.
	var at models.Product
	db.First(&at, "name = ?", "AtThreshold")
	if at.Stock != models.LowStockThreshold {
		t.Errorf("AtThreshold stock = %d, want %d", at.Stock, models.LowStockThreshold)
	}
}

func TestRestockWithNoLowStockProducts(t *testing.T) {
	db := newTestDB(t)
	_, products, _ := newServices(db)

	res := products.RestockLowStock()
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Message)
	}
	if res.Message != "Successfully updated 0 products" {
		t.Errorf("message = %q", res.Message)
	}
}
