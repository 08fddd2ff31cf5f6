package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/crm/app/models"
)

// schemaTypes holds the GraphQL object and input types shared between the
// root query and root mutation.
type schemaTypes struct {
	customer       *graphql.Object
	product        *graphql.Object
	order          *graphql.Object
	updatedProduct *graphql.Object

	customerInput *graphql.InputObject
	productInput  *graphql.InputObject
	orderInput    *graphql.InputObject
}

// Sources arrive either as values (list fields) or pointers (by-id fields
// and mutation payloads); the coercion helpers accept both.

func customerSource(src interface{}) *models.Customer {
	switch v := src.(type) {
	case models.Customer:
		return &v
	case *models.Customer:
		return v
	}
	return nil
}

func productSource(src interface{}) *models.Product {
	switch v := src.(type) {
	case models.Product:
		return &v
	case *models.Product:
		return v
	}
	return nil
}

func orderSource(src interface{}) *models.Order {
	switch v := src.(type) {
	case models.Order:
		return &v
	case *models.Order:
		return v
	}
	return nil
}

func newSchemaTypes() *schemaTypes {
	t := &schemaTypes{}

	t.customer = graphql.NewObject(graphql.ObjectConfig{
		Name: "Customer",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if c := customerSource(p.Source); c != nil {
						return c.ID, nil
					}
					return nil, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if c := customerSource(p.Source); c != nil {
						return c.Name, nil
					}
					return nil, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if c := customerSource(p.Source); c != nil {
						return c.Email, nil
					}
					return nil, nil
				},
			},
			"phone": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if c := customerSource(p.Source); c != nil {
						return c.Phone, nil
					}
					return nil, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if c := customerSource(p.Source); c != nil {
						return c.CreatedAt, nil
					}
					return nil, nil
				},
			},
		},
	})

	t.product = graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pr := productSource(p.Source); pr != nil {
						return pr.ID, nil
					}
					return nil, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pr := productSource(p.Source); pr != nil {
						return pr.Name, nil
					}
					return nil, nil
				},
			},
			"price": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pr := productSource(p.Source); pr != nil {
						return pr.Price.InexactFloat64(), nil
					}
					return nil, nil
				},
			},
			"stock": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pr := productSource(p.Source); pr != nil {
						return pr.Stock, nil
					}
					return nil, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pr := productSource(p.Source); pr != nil {
						return pr.CreatedAt, nil
					}
					return nil, nil
				},
			},
		},
	})

	t.order = graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if o := orderSource(p.Source); o != nil {
						return o.ID, nil
					}
					return nil, nil
				},
			},
			"customer": &graphql.Field{
				Type: t.customer,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if o := orderSource(p.Source); o != nil {
						return o.Customer, nil
					}
					return nil, nil
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(t.product),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if o := orderSource(p.Source); o != nil {
						return o.Products, nil
					}
					return nil, nil
				},
			},
			"totalAmount": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if o := orderSource(p.Source); o != nil {
						return o.TotalAmount.InexactFloat64(), nil
					}
					return nil, nil
				},
			},
			"orderDate": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if o := orderSource(p.Source); o != nil {
						return o.OrderDate, nil
					}
					return nil, nil
				},
			},
		},
	})

	// Slim shape returned by the restock mutation: just enough for the
	// maintenance job's log lines.
	t.updatedProduct = graphql.NewObject(graphql.ObjectConfig{
		Name: "UpdatedProduct",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pr := productSource(p.Source); pr != nil {
						return pr.ID, nil
					}
					return nil, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pr := productSource(p.Source); pr != nil {
						return pr.Name, nil
					}
					return nil, nil
				},
			},
			"stock": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pr := productSource(p.Source); pr != nil {
						return pr.Stock, nil
					}
					return nil, nil
				},
			},
		},
	})

	t.customerInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CustomerInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"phone": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	t.productInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"price": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"stock": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})

	t.orderInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "OrderInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"customerId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"productIds": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.ID))},
			"orderDate":  &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})

	return t
}
