package filters

import (
	"time"

	"gorm.io/gorm"
)

// OrderFilter narrows order listings, including predicates over the related
// customer and product rows. Zero-valued fields are ignored.
type OrderFilter struct {
	TotalAmountGTE *float64
	TotalAmountLTE *float64
	OrderDateGTE   *time.Time
	OrderDateLTE   *time.Time
	CustomerName   string // substring on the related customer
	CustomerEmail  string // substring on the related customer
	CustomerID     *uint
	ProductName    string // substring on any related product, deduplicated
	ProductID      *uint  // exact match on any related product, deduplicated
	ProductIDs     []uint // membership test, deduplicated
}

// OrderFilterFromArgs builds an OrderFilter from GraphQL arguments.
func OrderFilterFromArgs(args map[string]interface{}) OrderFilter {
	return OrderFilter{
		TotalAmountGTE: argFloat(args, "totalAmountGte"),
		TotalAmountLTE: argFloat(args, "totalAmountLte"),
		OrderDateGTE:   argTime(args, "orderDateGte"),
		OrderDateLTE:   argTime(args, "orderDateLte"),
		CustomerName:   argString(args, "customerName"),
		CustomerEmail:  argString(args, "customerEmail"),
		CustomerID:     argID(args, "customerId"),
		ProductName:    argString(args, "productName"),
		ProductID:      argID(args, "productId"),
		ProductIDs:     argIDList(args, "productIds"),
	}
}

// joinsProducts reports whether any predicate needs the product join.
func (f OrderFilter) joinsProducts() bool {
	return f.ProductName != "" || f.ProductID != nil || len(f.ProductIDs) > 0
}

// Apply adds the filter's predicates to tx. Product-side predicates join
// through the order_products table and deduplicate the result, since one
// order can match on several of its products.
func (f OrderFilter) Apply(tx *gorm.DB) *gorm.DB {
	if f.TotalAmountGTE != nil {
		tx = tx.Where("orders.total_amount >= ?", *f.TotalAmountGTE)
	}
	if f.TotalAmountLTE != nil {
		tx = tx.Where("orders.total_amount <= ?", *f.TotalAmountLTE)
	}
	if f.OrderDateGTE != nil {
		tx = tx.Where("orders.order_date >= ?", *f.OrderDateGTE)
	}
	if f.OrderDateLTE != nil {
		tx = tx.Where("orders.order_date <= ?", *f.OrderDateLTE)
	}
	if f.CustomerID != nil {
		tx = tx.Where("orders.customer_id = ?", *f.CustomerID)
	}

	if f.CustomerName != "" || f.CustomerEmail != "" {
		tx = tx.Joins("JOIN customers ON customers.id = orders.customer_id")
		if f.CustomerName != "" {
			tx = containsCI(tx, "customers.name", f.CustomerName)
		}
		if f.CustomerEmail != "" {
			tx = containsCI(tx, "customers.email", f.CustomerEmail)
		}
	}

	if f.joinsProducts() {
		tx = tx.
			Joins("JOIN order_products ON order_products.order_id = orders.id").
			Joins("JOIN products ON products.id = order_products.product_id").
			Distinct("orders.*")
		if f.ProductName != "" {
			tx = containsCI(tx, "products.name", f.ProductName)
		}
		if f.ProductID != nil {
			tx = tx.Where("products.id = ?", *f.ProductID)
		}
		if len(f.ProductIDs) > 0 {
			tx = tx.Where("products.id IN ?", f.ProductIDs)
		}
	}

	return tx
}
