package filters_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/crm/app/filters"
	"github.com/shashiranjanraj/crm/app/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProducts(t *testing.T, db *gorm.DB) []models.Product {
	t.Helper()
	products := []models.Product{
		{Name: "Laptop", Price: decimal.RequireFromString("999.99"), Stock: 5},
		{Name: "Mouse", Price: decimal.RequireFromString("29.99"), Stock: 0},
		{Name: "Keyboard", Price: decimal.RequireFromString("79.99"), Stock: 30},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}
	return products
}

func productNames(products []models.Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return names
}

func findProducts(t *testing.T, db *gorm.DB, f filters.ProductFilter) []models.Product {
	t.Helper()
	var out []models.Product
	if err := f.Apply(db.Model(&models.Product{})).Order("name ASC").Find(&out).Error; err != nil {
		t.Fatalf("find products: %v", err)
	}
	return out
}

func TestProductNameSubstringIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seedProducts(t, db)

	got := findProducts(t, db, filters.ProductFilter{Name: "LAP"})
	if len(got) != 1 || got[0].Name != "Laptop" {
		t.Fatalf("expected [Laptop], got %v", productNames(got))
	}
}

func TestProductPriceRange(t *testing.T) {
	db := newTestDB(t)
	seedProducts(t, db)

	lo, hi := 50.0, 100.0
	got := findProducts(t, db, filters.ProductFilter{PriceGTE: &lo, PriceLTE: &hi})
	if len(got) != 1 || got[0].Name != "Keyboard" {
		t.Fatalf("expected [Keyboard], got %v", productNames(got))
	}
}

func TestProductLowStockIsStrict(t *testing.T) {
	db := newTestDB(t)
	seedProducts(t, db)

	threshold := 5
	got := findProducts(t, db, filters.ProductFilter{LowStock: &threshold})
	// stock < 5: only Mouse (0). Laptop's stock of exactly 5 is excluded.
	if len(got) != 1 || got[0].Name != "Mouse" {
		t.Fatalf("expected [Mouse], got %v", productNames(got))
	}
}

func TestProductOutOfStock(t *testing.T) {
	db := newTestDB(t)
	seedProducts(t, db)

	yes, no := true, false

	got := findProducts(t, db, filters.ProductFilter{OutOfStock: &yes})
	if len(got) != 1 || got[0].Name != "Mouse" {
		t.Fatalf("out_of_stock=true: expected [Mouse], got %v", productNames(got))
	}

	got = findProducts(t, db, filters.ProductFilter{OutOfStock: &no})
	if len(got) != 2 {
		t.Fatalf("out_of_stock=false: expected 2 products, got %v", productNames(got))
	}
}

func TestProductStockExactAndRange(t *testing.T) {
	db := newTestDB(t)
	seedProducts(t, db)

	exact := 30
	got := findProducts(t, db, filters.ProductFilter{Stock: &exact})
	if len(got) != 1 || got[0].Name != "Keyboard" {
		t.Fatalf("stock=30: expected [Keyboard], got %v", productNames(got))
	}

	gte := 1
	got = findProducts(t, db, filters.ProductFilter{StockGTE: &gte})
	if len(got) != 2 {
		t.Fatalf("stock_gte=1: expected 2 products, got %v", productNames(got))
	}
}

func TestCustomerFilters(t *testing.T) {
	db := newTestDB(t)
	customers := []models.Customer{
		{Name: "Alice Johnson", Email: "alice@example.com", Phone: "+1234567890"},
		{Name: "Bob Smith", Email: "bob@example.com", Phone: "123-456-7890"},
	}
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			t.Fatalf("seed customer: %v", err)
		}
	}

	var got []models.Customer
	f := filters.CustomerFilter{Name: "ALICE"}
	if err := f.Apply(db.Model(&models.Customer{})).Find(&got).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 1 || got[0].Email != "alice@example.com" {
		t.Fatalf("name filter: expected alice, got %d rows", len(got))
	}

	got = nil
	f = filters.CustomerFilter{PhoneStartsWith: "+1"}
	if err := f.Apply(db.Model(&models.Customer{})).Find(&got).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Alice Johnson" {
		t.Fatalf("phone prefix filter: expected Alice, got %d rows", len(got))
	}
}

func TestOrderProductJoinDeduplicates(t *testing.T) {
	db := newTestDB(t)
	products := seedProducts(t, db)

	customer := models.Customer{Name: "Carol", Email: "carol@example.com"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	// One order holding two products that both match the name filter.
	order := models.Order{
		CustomerID: customer.ID,
		Products:   []models.Product{products[0], products[1]},
		OrderDate:  time.Now(),
	}
	order.CalculateTotal()
	if err := db.Omit("Products").Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if err := db.Model(&order).Association("Products").Append(order.Products); err != nil {
		t.Fatalf("seed order products: %v", err)
	}

	var got []models.Order
	f := filters.OrderFilter{ProductIDs: []uint{products[0].ID, products[1].ID}}
	if err := f.Apply(db.Model(&models.Order{})).Find(&got).Error; err != nil {
		t.Fatalf("find orders: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 deduplicated order, got %d", len(got))
	}
}

func TestOrderCustomerFilters(t *testing.T) {
	db := newTestDB(t)
	products := seedProducts(t, db)

	alice := models.Customer{Name: "Alice", Email: "alice@example.com"}
	bob := models.Customer{Name: "Bob", Email: "bob@example.com"}
	for _, c := range []*models.Customer{&alice, &bob} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("seed customer: %v", err)
		}
	}

	for _, c := range []models.Customer{alice, bob} {
		order := models.Order{CustomerID: c.ID, Products: products[:1], OrderDate: time.Now()}
		order.CalculateTotal()
		if err := db.Omit("Products").Create(&order).Error; err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	var got []models.Order
	f := filters.OrderFilter{CustomerEmail: "ALICE@"}
	if err := f.Apply(db.Model(&models.Order{})).Find(&got).Error; err != nil {
		t.Fatalf("find orders: %v", err)
	}
	if len(got) != 1 || got[0].CustomerID != alice.ID {
		t.Fatalf("expected alice's order only, got %d rows", len(got))
	}
}

func TestFromArgsSkipsUnparseableValues(t *testing.T) {
	f := filters.CustomerFilterFromArgs(map[string]interface{}{
		"name":         "ali",
		"createdAtGte": "not-a-date",
	})
	if f.Name != "ali" {
		t.Errorf("expected name to survive, got %q", f.Name)
	}
	if f.CreatedAtGTE != nil {
		t.Error("expected unparseable date to be skipped")
	}

	of := filters.OrderFilterFromArgs(map[string]interface{}{
		"productIds": "1,x,3",
		"customerId": "abc",
	})
	if len(of.ProductIDs) != 2 || of.ProductIDs[0] != 1 || of.ProductIDs[1] != 3 {
		t.Errorf("expected [1 3], got %v", of.ProductIDs)
	}
	if of.CustomerID != nil {
		t.Error("expected unparseable customer id to be skipped")
	}
}

func TestFromArgsAcceptsDateTimeValues(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	f := filters.CustomerFilterFromArgs(map[string]interface{}{
		"createdAtGte": now,
		"createdAtLte": now.Format(time.RFC3339),
	})
	if f.CreatedAtGTE == nil || !f.CreatedAtGTE.Equal(now) {
		t.Errorf("time.Time arg: got %v, want %v", f.CreatedAtGTE, now)
	}
	if f.CreatedAtLTE == nil || !f.CreatedAtLTE.Equal(now) {
		t.Errorf("RFC3339 arg: got %v, want %v", f.CreatedAtLTE, now)
	}
}
