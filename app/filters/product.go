package filters

import (
	"gorm.io/gorm"
)

// ProductFilter narrows product listings. Zero-valued fields are ignored.
type ProductFilter struct {
	Name       string // case-insensitive substring
	PriceGTE   *float64
	PriceLTE   *float64
	Stock      *int // exact
	StockGTE   *int
	StockLTE   *int
	LowStock   *int  // stock strictly below the given threshold
	OutOfStock *bool // true: stock == 0; false: stock != 0
}

// ProductFilterFromArgs builds a ProductFilter from GraphQL arguments.
func ProductFilterFromArgs(args map[string]interface{}) ProductFilter {
	return ProductFilter{
		Name:       argString(args, "name"),
		PriceGTE:   argFloat(args, "priceGte"),
		PriceLTE:   argFloat(args, "priceLte"),
		Stock:      argInt(args, "stock"),
		StockGTE:   argInt(args, "stockGte"),
		StockLTE:   argInt(args, "stockLte"),
		LowStock:   argInt(args, "lowStock"),
		OutOfStock: argBool(args, "outOfStock"),
	}
}

// Apply adds the filter's predicates to tx.
func (f ProductFilter) Apply(tx *gorm.DB) *gorm.DB {
	if f.Name != "" {
		tx = containsCI(tx, "products.name", f.Name)
	}
	if f.PriceGTE != nil {
		tx = tx.Where("products.price >= ?", *f.PriceGTE)
	}
	if f.PriceLTE != nil {
		tx = tx.Where("products.price <= ?", *f.PriceLTE)
	}
	if f.Stock != nil {
		tx = tx.Where("products.stock = ?", *f.Stock)
	}
	if f.StockGTE != nil {
		tx = tx.Where("products.stock >= ?", *f.StockGTE)
	}
	if f.StockLTE != nil {
		tx = tx.Where("products.stock <= ?", *f.StockLTE)
	}
	if f.LowStock != nil {
		tx = tx.Where("products.stock < ?", *f.LowStock)
	}
	if f.OutOfStock != nil {
		if *f.OutOfStock {
			tx = tx.Where("products.stock = 0")
		} else {
			tx = tx.Where("products.stock <> 0")
		}
	}
	return tx
}
