package repositories

import (
	"errors"

	"github.com/shashiranjanraj/crm/app/filters"
	"github.com/shashiranjanraj/crm/app/models"
	"gorm.io/gorm"
)

// CustomerRepository handles database operations for Customer.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// All returns customers matching f, newest first.
func (r *CustomerRepository) All(f filters.CustomerFilter) ([]models.Customer, error) {
	var customers []models.Customer
	tx := f.Apply(r.db.Model(&models.Customer{}))
	err := tx.Order("customers.created_at DESC, customers.id DESC").Find(&customers).Error
	return customers, err
}

// FindByID looks up a customer by primary key. A missing id is not an
// error: the customer is nil and err is nil.
func (r *CustomerRepository) FindByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// EmailExists reports whether a customer with the given email already exists.
func (r *CustomerRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Create persists a new customer record.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}
