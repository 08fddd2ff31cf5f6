package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level below which the restock maintenance
// mutation tops a product up.
const LowStockThreshold = 10

// RestockIncrement is how much stock the restock mutation adds per product.
const RestockIncrement = 10

// Product is a catalogue item. Stock is the only field mutated after
// creation, and only by the restock mutation; default listing order is
// alphabetical by name.
type Product struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:255;not null;index" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock     int             `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}
