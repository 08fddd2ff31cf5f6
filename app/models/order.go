package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order links a customer to a set of products. TotalAmount is derived: the
// sum of the linked products' prices at the time CalculateTotal ran. The
// creation path keeps it in sync; later membership changes do not.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CustomerID  uint            `gorm:"not null;index" json:"customer_id"`
	Customer    Customer        `json:"customer"`
	Products    []Product       `gorm:"many2many:order_products" json:"products"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	OrderDate   time.Time       `gorm:"index" json:"order_date"`
}

// CalculateTotal recomputes TotalAmount from the in-memory product set and
// returns it. The caller is responsible for persisting the order.
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		total = total.Add(p.Price)
	}
	o.TotalAmount = total
	return total
}
