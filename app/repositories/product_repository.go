package repositories

import (
	"errors"
	"time"

	"github.com/shashiranjanraj/crm/app/filters"
	"github.com/shashiranjanraj/crm/app/models"
	"github.com/shashiranjanraj/crm/pkg/cache"
	"gorm.io/gorm"
)

// productsCacheKey holds the unfiltered product listing; writes through
// Create and Save drop it.
const productsCacheKey = "crm:cache:products"

const productsCacheTTL = time.Minute

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// All returns products matching f, ordered alphabetically by name. The
// unfiltered listing is served read-through from Redis when a client is
// connected.
func (r *ProductRepository) All(f filters.ProductFilter) ([]models.Product, error) {
	cacheable := f == (filters.ProductFilter{})
	if cacheable {
		var cached []models.Product
		if cache.Get(productsCacheKey, &cached) {
			return cached, nil
		}
	}

	var products []models.Product
	tx := f.Apply(r.db.Model(&models.Product{}))
	if err := tx.Order("products.name ASC, products.id ASC").Find(&products).Error; err != nil {
		return nil, err
	}

	if cacheable {
		_ = cache.Set(productsCacheKey, products, productsCacheTTL)
	}
	return products, nil
}

// FindByID looks up a product by primary key; nil, nil when missing.
func (r *ProductRepository) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Create persists a new product record and drops the cached listing.
func (r *ProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return err
	}
	_ = cache.Del(productsCacheKey)
	return nil
}

// LowStock returns products with stock strictly below threshold.
func (r *ProductRepository) LowStock(threshold int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("stock < ?", threshold).Order("id ASC").Find(&products).Error
	return products, err
}

// Save persists changes to an existing product and drops the cached listing.
func (r *ProductRepository) Save(product *models.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		return err
	}
	_ = cache.Del(productsCacheKey)
	return nil
}
