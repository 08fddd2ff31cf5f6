package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/crm/app/services"
)

// customerInputFrom maps a coerced input object to a service input.
func customerInputFrom(m map[string]interface{}) services.CustomerInput {
	var in services.CustomerInput
	if v, ok := m["name"].(string); ok {
		in.Name = v
	}
	if v, ok := m["email"].(string); ok {
		in.Email = v
	}
	if v, ok := m["phone"].(string); ok {
		in.Phone = v
	}
	return in
}

func productInputFrom(m map[string]interface{}) services.ProductInput {
	var in services.ProductInput
	if v, ok := m["name"].(string); ok {
		in.Name = v
	}
	switch v := m["price"].(type) {
	case float64:
		in.Price = v
	case int:
		in.Price = float64(v)
	}
	switch v := m["stock"].(type) {
	case int:
		in.Stock = v
	case float64:
		in.Stock = int(v)
	}
	return in
}

func orderInputFrom(m map[string]interface{}) services.OrderInput {
	var in services.OrderInput
	if v, ok := m["customerId"].(string); ok {
		in.CustomerID = v
	}
	if raw, ok := m["productIds"].([]interface{}); ok {
		for _, item := range raw {
			if s, ok := item.(string); ok {
				in.ProductIDs = append(in.ProductIDs, s)
			}
		}
	}
	if v, ok := m["orderDate"].(time.Time); ok {
		in.OrderDate = &v
	}
	return in
}

func inputArg(p graphql.ResolveParams) map[string]interface{} {
	if m, ok := p.Args["input"].(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func (r *Resolver) rootMutation(t *schemaTypes) *graphql.Object {
	createCustomerPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateCustomerPayload",
		Fields: graphql.Fields{
			"customer": &graphql.Field{
				Type: t.customer,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.CustomerResult)
					if res.Customer == nil {
						return nil, nil
					}
					return res.Customer, nil
				},
			},
			"message": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.CustomerResult)
					return res.Message, nil
				},
			},
			"success": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.CustomerResult)
					return res.Success, nil
				},
			},
		},
	})

	bulkCreateCustomersPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "BulkCreateCustomersPayload",
		Fields: graphql.Fields{
			"customers": &graphql.Field{
				Type: graphql.NewList(t.customer),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.BulkCustomersResult)
					return res.Customers, nil
				},
			},
			"errors": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.BulkCustomersResult)
					return res.Errors, nil
				},
			},
			"successCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.BulkCustomersResult)
					return res.SuccessCount, nil
				},
			},
		},
	})

	createProductPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateProductPayload",
		Fields: graphql.Fields{
			"product": &graphql.Field{
				Type: t.product,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.ProductResult)
					if res.Product == nil {
						return nil, nil
					}
					return res.Product, nil
				},
			},
			"message": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.ProductResult)
					return res.Message, nil
				},
			},
			"success": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.ProductResult)
					return res.Success, nil
				},
			},
		},
	})

	createOrderPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateOrderPayload",
		Fields: graphql.Fields{
			"order": &graphql.Field{
				Type: t.order,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.OrderResult)
					if res.Order == nil {
						return nil, nil
					}
					return res.Order, nil
				},
			},
			"message": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.OrderResult)
					return res.Message, nil
				},
			},
			"success": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.OrderResult)
					return res.Success, nil
				},
			},
		},
	})

	updateLowStockPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "UpdateLowStockProductsPayload",
		Fields: graphql.Fields{
			"updatedProducts": &graphql.Field{
				Type: graphql.NewList(t.updatedProduct),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.RestockResult)
					return res.Updated, nil
				},
			},
			"message": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.RestockResult)
					return res.Message, nil
				},
			},
			"success": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, _ := p.Source.(services.RestockResult)
					return res.Success, nil
				},
			},
		},
	})

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "RootMutation",
		Fields: graphql.Fields{
			"createCustomer": &graphql.Field{
				Type: createCustomerPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.customerInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.CustomerService.Create(customerInputFrom(inputArg(p))), nil
				},
			},
			"bulkCreateCustomers": &graphql.Field{
				Type: bulkCreateCustomersPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(t.customerInput)),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var inputs []services.CustomerInput
					if raw, ok := p.Args["input"].([]interface{}); ok {
						for _, item := range raw {
							if m, ok := item.(map[string]interface{}); ok {
								inputs = append(inputs, customerInputFrom(m))
							}
						}
					}
					return r.CustomerService.BulkCreate(inputs), nil
				},
			},
			"createProduct": &graphql.Field{
				Type: createProductPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.productInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.ProductService.Create(productInputFrom(inputArg(p))), nil
				},
			},
			"createOrder": &graphql.Field{
				Type: createOrderPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.orderInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.OrderService.Create(orderInputFrom(inputArg(p))), nil
				},
			},
			"updateLowStockProducts": &graphql.Field{
				Type: updateLowStockPayload,
				Resolve: func(graphql.ResolveParams) (interface{}, error) {
					return r.ProductService.RestockLowStock(), nil
				},
			},
		},
	})
}
