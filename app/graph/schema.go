// Package graph is the GraphQL facade over the CRM: it aggregates the query
// and mutation surfaces into one schema, plus the `hello` liveness field the
// heartbeat job probes.
package graph

import (
	"github.com/graphql-go/graphql"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/crm/app/repositories"
	"github.com/shashiranjanraj/crm/app/services"
	gql "github.com/shashiranjanraj/crm/pkg/graphql"
)

// HelloMessage is the constant value of the `hello` liveness field.
const HelloMessage = "Hello from GraphQL CRM!"

// Resolver bundles the repositories and services the schema resolves
// against.
type Resolver struct {
	Customers *repositories.CustomerRepository
	Products  *repositories.ProductRepository
	Orders    *repositories.OrderRepository

	CustomerService *services.CustomerService
	ProductService  *services.ProductService
	OrderService    *services.OrderService
}

// NewResolver wires a Resolver from a database handle.
func NewResolver(db *gorm.DB) *Resolver {
	customers := repositories.NewCustomerRepository(db)
	products := repositories.NewProductRepository(db)
	orders := repositories.NewOrderRepository(db)

	return &Resolver{
		Customers: customers,
		Products:  products,
		Orders:    orders,

		CustomerService: services.NewCustomerService(customers),
		ProductService:  services.NewProductService(products),
		OrderService:    services.NewOrderService(orders, customers, products),
	}
}

// NewSchema builds the executable schema for r.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	t := newSchemaTypes()
	return gql.NewSchema(r.rootQuery(t), r.rootMutation(t))
}
