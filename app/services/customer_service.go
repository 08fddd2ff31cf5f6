package services

import (
	"fmt"

	"github.com/shashiranjanraj/crm/app/models"
	"github.com/shashiranjanraj/crm/app/repositories"
	"github.com/shashiranjanraj/crm/pkg/logger"
	"github.com/shashiranjanraj/crm/pkg/validate"
)

// CustomerInput carries the fields for creating one customer.
type CustomerInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// CustomerResult is the uniform mutation result shape: failures are
// reported through Success/Message, never as an error.
type CustomerResult struct {
	Success  bool
	Message  string
	Customer *models.Customer
}

// BulkCustomersResult reports a bulk create: each row commits
// independently, so some rows can succeed while others collect errors.
type BulkCustomersResult struct {
	Customers    []models.Customer
	Errors       []string
	SuccessCount int
}

// CustomerService implements the customer mutations.
type CustomerService struct {
	repo *repositories.CustomerRepository
}

func NewCustomerService(repo *repositories.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// Create validates and persists one customer. Duplicate emails and bad
// phone formats are reported, not raised.
func (s *CustomerService) Create(input CustomerInput) CustomerResult {
	if errs := validate.Struct(input); validate.HasErrors(errs) {
		return CustomerResult{Message: validate.First(errs)}
	}
	if !models.ValidPhone(input.Phone) {
		return CustomerResult{Message: "Phone number must be in format: '+999999999' or '999-999-9999'"}
	}

	exists, err := s.repo.EmailExists(input.Email)
	if err != nil {
		return CustomerResult{Message: "Error creating customer: " + err.Error()}
	}
	if exists {
		return CustomerResult{Message: "Email already exists"}
	}

	customer := models.Customer{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	if err := s.repo.Create(&customer); err != nil {
		return CustomerResult{Message: "Error creating customer: " + err.Error()}
	}

	logger.Info("customer created", "id", customer.ID, "email", customer.Email)
	return CustomerResult{Success: true, Message: "Customer created successfully", Customer: &customer}
}

// BulkCreate validates and commits each row independently: one bad row
// never blocks the others, and the operation never aborts wholesale.
func (s *CustomerService) BulkCreate(inputs []CustomerInput) BulkCustomersResult {
	var result BulkCustomersResult

	for idx, input := range inputs {
		res := s.Create(input)
		if !res.Success {
			if res.Message == "Email already exists" {
				result.Errors = append(result.Errors,
					fmt.Sprintf("Row %d: Email '%s' already exists", idx+1, input.Email))
			} else {
				result.Errors = append(result.Errors,
					fmt.Sprintf("Row %d: %s", idx+1, res.Message))
			}
			continue
		}
		result.Customers = append(result.Customers, *res.Customer)
	}

	result.SuccessCount = len(result.Customers)
	return result
}
