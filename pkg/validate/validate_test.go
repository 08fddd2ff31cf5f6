package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/crm/pkg/validate"
)

type customerInput struct {
	Name  string `json:"name"  validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"nullable,min=7"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(customerInput{
		Name:  "Alice Johnson",
		Email: "alice@example.com",
		Phone: "", // nullable, allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(customerInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Stock int `json:"stock" validate:"gte=0"`
	}
	if errs := validate.Struct(in{Stock: -1}); !validate.HasErrors(errs) {
		t.Error("expected negative stock to fail gte=0")
	}
	if errs := validate.Struct(in{Stock: 0}); validate.HasErrors(errs) {
		t.Errorf("expected zero stock to pass, got: %v", errs)
	}

	type price struct {
		Price float64 `json:"price" validate:"gt=0"`
	}
	if errs := validate.Struct(price{Price: 0}); !validate.HasErrors(errs) {
		t.Error("expected zero price to fail gt=0")
	}
	if errs := validate.Struct(price{Price: 0.01}); validate.HasErrors(errs) {
		t.Errorf("expected positive price to pass, got: %v", errs)
	}
}

func TestNullableSkipsWhenEmpty(t *testing.T) {
	errs := validate.Struct(customerInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "123", // present but shorter than min=7
	})
	if _, ok := errs["phone"]; !ok {
		t.Error("expected non-empty phone to be checked against min")
	}
}

func TestFirstReturnsOneMessage(t *testing.T) {
	errs := validate.Struct(customerInput{})
	if validate.First(errs) == "" {
		t.Error("expected a message")
	}
	if validate.First(map[string]string{}) != "" {
		t.Error("expected empty string for no errors")
	}
}
