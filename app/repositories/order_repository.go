package repositories

import (
	"errors"

	"github.com/shashiranjanraj/crm/app/filters"
	"github.com/shashiranjanraj/crm/app/models"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// All returns orders matching f, newest first, with the customer and
// product associations loaded.
func (r *OrderRepository) All(f filters.OrderFilter) ([]models.Order, error) {
	var orders []models.Order
	tx := f.Apply(r.db.Model(&models.Order{}))
	err := tx.
		Preload("Customer").
		Preload("Products").
		Order("orders.order_date DESC, orders.id DESC").
		Find(&orders).Error
	return orders, err
}

// FindByID looks up an order by primary key; nil, nil when missing.
func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Customer").Preload("Products").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Create persists order and its product links as one transaction: the order
// row with its computed total and the order_products join rows commit
// together or not at all. order.Products must already hold the validated
// product rows.
func (r *OrderRepository) Create(order *models.Order) error {
	// Snapshot the product set and total it before any association write.
	products := order.Products
	order.CalculateTotal()

	return r.db.Transaction(func(tx *gorm.DB) error {
		// Insert the order row first; associations are linked explicitly so
		// gorm never upserts the product rows themselves.
		if err := tx.Omit("Products").Create(order).Error; err != nil {
			return err
		}

		// Appending rows that already have primary keys only inserts the
		// join records. Append also grows the Products field with the values
		// it was handed, so the field is re-pointed at the snapshot after.
		if err := tx.Model(order).Association("Products").Append(products); err != nil {
			return err
		}
		order.Products = products

		return nil
	})
}
