package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shashiranjanraj/crm/app/models"
	"github.com/shashiranjanraj/crm/app/repositories"
	"github.com/shashiranjanraj/crm/pkg/logger"
)

// OrderInput carries the fields for creating one order. IDs arrive as
// GraphQL ID strings; parsing failures are reported the same way as
// references to rows that do not exist.
type OrderInput struct {
	CustomerID string
	ProductIDs []string
	OrderDate  *time.Time
}

type OrderResult struct {
	Success bool
	Message string
	Order   *models.Order
}

// OrderService implements the order mutations.
type OrderService struct {
	orders    *repositories.OrderRepository
	customers *repositories.CustomerRepository
	products  *repositories.ProductRepository
}

func NewOrderService(
	orders *repositories.OrderRepository,
	customers *repositories.CustomerRepository,
	products *repositories.ProductRepository,
) *OrderService {
	return &OrderService{orders: orders, customers: customers, products: products}
}

// Create validates the customer and every product, then persists the order,
// its product links, and the computed total as one all-or-nothing unit.
func (s *OrderService) Create(input OrderInput) OrderResult {
	customer, err := s.lookupCustomer(input.CustomerID)
	if err != nil {
		return OrderResult{Message: "Error creating order: " + err.Error()}
	}
	if customer == nil {
		return OrderResult{Message: fmt.Sprintf("Customer with ID %s does not exist", input.CustomerID)}
	}

	if len(input.ProductIDs) == 0 {
		return OrderResult{Message: "At least one product must be selected"}
	}

	products := make([]models.Product, 0, len(input.ProductIDs))
	for _, rawID := range input.ProductIDs {
		product, err := s.lookupProduct(rawID)
		if err != nil {
			return OrderResult{Message: "Error creating order: " + err.Error()}
		}
		if product == nil {
			return OrderResult{Message: fmt.Sprintf("Product with ID %s does not exist", rawID)}
		}
		products = append(products, *product)
	}

	orderDate := time.Now()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}

	order := models.Order{
		CustomerID: customer.ID,
		Customer:   *customer,
		Products:   products,
		OrderDate:  orderDate,
	}
	if err := s.orders.Create(&order); err != nil {
		return OrderResult{Message: "Error creating order: " + err.Error()}
	}

	logger.Info("order created",
		"id", order.ID,
		"customer_id", order.CustomerID,
		"total", order.TotalAmount.String(),
	)
	return OrderResult{Success: true, Message: "Order created successfully", Order: &order}
}

func (s *OrderService) lookupCustomer(rawID string) (*models.Customer, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, nil
	}
	return s.customers.FindByID(id)
}

func (s *OrderService) lookupProduct(rawID string) (*models.Product, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, nil
	}
	return s.products.FindByID(id)
}

func parseID(raw string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
