package services

import (
	"fmt"

	"github.com/shashiranjanraj/crm/app/models"
	"github.com/shashiranjanraj/crm/app/repositories"
	"github.com/shashiranjanraj/crm/pkg/logger"
	"github.com/shashiranjanraj/crm/pkg/validate"
	"github.com/shopspring/decimal"
)

// ProductInput carries the fields for creating one product.
type ProductInput struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

type ProductResult struct {
	Success bool
	Message string
	Product *models.Product
}

// RestockResult reports the restock maintenance run. Updated holds the
// products already committed, even when a later row failed: each product
// persists individually, with no cross-row atomicity.
type RestockResult struct {
	Success bool
	Message string
	Updated []models.Product
}

// ProductService implements the product mutations.
type ProductService struct {
	repo *repositories.ProductRepository
}

func NewProductService(repo *repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// Create validates and persists one product. Price must be strictly
// positive, stock non-negative.
func (s *ProductService) Create(input ProductInput) ProductResult {
	if errs := validate.Struct(input); validate.HasErrors(errs) {
		return ProductResult{Message: validate.First(errs)}
	}
	if input.Price <= 0 {
		return ProductResult{Message: "Price must be positive"}
	}
	if input.Stock < 0 {
		return ProductResult{Message: "Stock cannot be negative"}
	}

	product := models.Product{
		Name:  input.Name,
		Price: decimal.NewFromFloat(input.Price).Round(2),
		Stock: input.Stock,
	}
	if err := s.repo.Create(&product); err != nil {
		return ProductResult{Message: "Error creating product: " + err.Error()}
	}

	logger.Info("product created", "id", product.ID, "name", product.Name)
	return ProductResult{Success: true, Message: "Product created successfully", Product: &product}
}

// RestockLowStock tops up every product with stock below the threshold by
// the restock increment, saving each row as it goes. A failure partway
// through leaves earlier increments committed; Updated reflects exactly
// what was persisted.
func (s *ProductService) RestockLowStock() RestockResult {
	products, err := s.repo.LowStock(models.LowStockThreshold)
	if err != nil {
		return RestockResult{Message: "Error updating low stock products: " + err.Error()}
	}

	updated := make([]models.Product, 0, len(products))
	for i := range products {
		products[i].Stock += models.RestockIncrement
		if err := s.repo.Save(&products[i]); err != nil {
			return RestockResult{
				Message: "Error updating low stock products: " + err.Error(),
				Updated: updated,
			}
		}
		updated = append(updated, products[i])
	}

	logger.Info("low stock products restocked", "count", len(updated))
	return RestockResult{
		Success: true,
		Message: fmt.Sprintf("Successfully updated %d products", len(updated)),
		Updated: updated,
	}
}
