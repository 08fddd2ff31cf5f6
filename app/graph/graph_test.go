package graph_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/crm/app/graph"
	"github.com/shashiranjanraj/crm/app/models"
)

func newTestSchema(t *testing.T) (graphql.Schema, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}))

	schema, err := graph.NewSchema(graph.NewResolver(db))
	require.NoError(t, err)
	return schema, db
}

func execute(t *testing.T, schema graphql.Schema, query string, vars map[string]interface{}) map[string]interface{} {
	t.Helper()

	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
	})
	require.Empty(t, result.Errors, "unexpected graphql errors")

	data, ok := result.Data.(map[string]interface{})
	require.True(t, ok, "expected map data")
	return data
}

func TestHelloField(t *testing.T) {
	schema, _ := newTestSchema(t)

	data := execute(t, schema, `query { hello }`, nil)
	require.Equal(t, graph.HelloMessage, data["hello"])
}

func TestCreateCustomerMutation(t *testing.T) {
	schema, _ := newTestSchema(t)

	data := execute(t, schema, `
		mutation {
			createCustomer(input: {name: "Alice", email: "alice@example.com", phone: "+1234567890"}) {
				success
				message
				customer { id name email phone }
			}
		}`, nil)

	payload := data["createCustomer"].(map[string]interface{})
	require.Equal(t, true, payload["success"])
	require.Equal(t, "Customer created successfully", payload["message"])

	customer := payload["customer"].(map[string]interface{})
	require.Equal(t, "Alice", customer["name"])
	require.Equal(t, "alice@example.com", customer["email"])
	require.NotEmpty(t, customer["id"])
}

func TestCreateCustomerDuplicateEmailReported(t *testing.T) {
	schema, _ := newTestSchema(t)

	mutation := `
		mutation {
			createCustomer(input: {name: "Alice", email: "alice@example.com"}) {
				success
				message
				customer { id }
			}
		}`
	execute(t, schema, mutation, nil)
	data := execute(t, schema, mutation, nil)

	payload := data["createCustomer"].(map[string]interface{})
	require.Equal(t, false, payload["success"])
	require.Equal(t, "Email already exists", payload["message"])
	require.Nil(t, payload["customer"])
}

func TestBulkCreateCustomersMutation(t *testing.T) {
	schema, _ := newTestSchema(t)

	data := execute(t, schema, `
		mutation {
			bulkCreateCustomers(input: [
				{name: "Alice", email: "alice@example.com"},
				{name: "Dup", email: "alice@example.com"},
				{name: "Bob", email: "bob@example.com"}
			]) {
				successCount
				errors
				customers { email }
			}
		}`, nil)

	payload := data["bulkCreateCustomers"].(map[string]interface{})
	require.Equal(t, 2, payload["successCount"])

	errs := payload["errors"].([]interface{})
	require.Len(t, errs, 1)
	require.Equal(t, "Row 2: Email 'alice@example.com' already exists", errs[0])
}

func TestCreateProductAndFilterQueries(t *testing.T) {
	schema, _ := newTestSchema(t)

	execute(t, schema, `
		mutation {
			a: createProduct(input: {name: "Laptop", price: 999.99, stock: 5}) { success }
			b: createProduct(input: {name: "Mouse", price: 29.99, stock: 0}) { success }
			c: createProduct(input: {name: "Keyboard", price: 79.99, stock: 30}) { success }
		}`, nil)

	data := execute(t, schema, `query { allProducts(lowStock: 10) { name stock } }`, nil)
	low := data["allProducts"].([]interface{})
	require.Len(t, low, 2)

	data = execute(t, schema, `query { allProducts(outOfStock: true) { name } }`, nil)
	out := data["allProducts"].([]interface{})
	require.Len(t, out, 1)
	require.Equal(t, "Mouse", out[0].(map[string]interface{})["name"])

	data = execute(t, schema, `query { allProducts(name: "board") { name } }`, nil)
	named := data["allProducts"].([]interface{})
	require.Len(t, named, 1)
	require.Equal(t, "Keyboard", named[0].(map[string]interface{})["name"])
}

func TestCreateProductValidationMessages(t *testing.T) {
	schema, _ := newTestSchema(t)

	data := execute(t, schema, `
		mutation {
			createProduct(input: {name: "Free", price: 0}) {
				success
				message
				product { id }
			}
		}`, nil)

	payload := data["createProduct"].(map[string]interface{})
	require.Equal(t, false, payload["success"])
	require.Equal(t, "Price must be positive", payload["message"])
	require.Nil(t, payload["product"])
}

func TestCreateOrderMutation(t *testing.T) {
	schema, db := newTestSchema(t)

	customer := models.Customer{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, db.Create(&customer).Error)

	products := []models.Product{
		{Name: "Laptop", Price: decimal.RequireFromString("999.99"), Stock: 5},
		{Name: "Mouse", Price: decimal.RequireFromString("29.99"), Stock: 50},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}

	query := fmt.Sprintf(`
		mutation {
			createOrder(input: {customerId: "%d", productIds: ["%d", "%d"]}) {
				success
				message
				order {
					id
					totalAmount
					customer { email }
					products { name }
				}
			}
		}`, customer.ID, products[0].ID, products[1].ID)

	data := execute(t, schema, query, nil)
	payload := data["createOrder"].(map[string]interface{})
	require.Equal(t, true, payload["success"])
	require.Equal(t, "Order created successfully", payload["message"])

	order := payload["order"].(map[string]interface{})
	require.InDelta(t, 1029.98, order["totalAmount"], 0.001)
	require.Equal(t, "alice@example.com", order["customer"].(map[string]interface{})["email"])
	require.Len(t, order["products"].([]interface{}), 2)
}

func TestCreateOrderMissingProductReported(t *testing.T) {
	schema, db := newTestSchema(t)

	customer := models.Customer{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, db.Create(&customer).Error)

	query := fmt.Sprintf(`
		mutation {
			createOrder(input: {customerId: "%d", productIds: ["77"]}) {
				success
				message
			}
		}`, customer.ID)

	data := execute(t, schema, query, nil)
	payload := data["createOrder"].(map[string]interface{})
	require.Equal(t, false, payload["success"])
	require.Equal(t, "Product with ID 77 does not exist", payload["message"])
}

func TestUpdateLowStockProductsMutation(t *testing.T) {
	schema, db := newTestSchema(t)

	products := []models.Product{
		{Name: "Low", Price: decimal.RequireFromString("5.00"), Stock: 2},
		{Name: "Plenty", Price: decimal.RequireFromString("5.00"), Stock: 40},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}

	data := execute(t, schema, `
		mutation {
			updateLowStockProducts {
				success
				message
				updatedProducts { name stock }
			}
		}`, nil)

	payload := data["updateLowStockProducts"].(map[string]interface{})
	require.Equal(t, true, payload["success"])
	require.Equal(t, "Successfully updated 1 products", payload["message"])

	updated := payload["updatedProducts"].([]interface{})
	require.Len(t, updated, 1)
	first := updated[0].(map[string]interface{})
	require.Equal(t, "Low", first["name"])
	require.Equal(t, 2+models.RestockIncrement, first["stock"])
}

func TestSingleItemLookupsReturnNullForMissing(t *testing.T) {
	schema, _ := newTestSchema(t)

	data := execute(t, schema, `query { customer(id: "99") { id } product(id: "99") { id } order(id: "99") { id } }`, nil)
	require.Nil(t, data["customer"])
	require.Nil(t, data["product"])
	require.Nil(t, data["order"])
}

func TestQueryWithVariables(t *testing.T) {
	schema, _ := newTestSchema(t)

	data := execute(t, schema, `
		mutation CreateCustomer($input: CustomerInput!) {
			createCustomer(input: $input) { success message }
		}`,
		map[string]interface{}{
			"input": map[string]interface{}{
				"name":  "Eve",
				"email": "eve@example.com",
			},
		})

	payload := data["createCustomer"].(map[string]interface{})
	require.Equal(t, true, payload["success"])
}
