package graph

import (
	"strconv"
	"strings"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/crm/app/filters"
)

// parseIDArg reads an `id` argument. GraphQL IDs arrive as strings.
func parseIDArg(args map[string]interface{}) (uint, bool) {
	switch v := args["id"].(type) {
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return uint(n), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	}
	return 0, false
}

func (r *Resolver) rootQuery(t *schemaTypes) *graphql.Object {
	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			// Liveness probe for external health checks.
			"hello": &graphql.Field{
				Type: graphql.String,
				Resolve: func(graphql.ResolveParams) (interface{}, error) {
					return HelloMessage, nil
				},
			},

			// ── Single item lookups: a missing id resolves to null ──────

			"customer": &graphql.Field{
				Type: t.customer,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := parseIDArg(p.Args)
					if !ok {
						return nil, nil
					}
					customer, err := r.Customers.FindByID(id)
					if err != nil {
						return nil, err
					}
					if customer == nil {
						return nil, nil
					}
					return customer, nil
				},
			},
			"product": &graphql.Field{
				Type: t.product,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := parseIDArg(p.Args)
					if !ok {
						return nil, nil
					}
					product, err := r.Products.FindByID(id)
					if err != nil {
						return nil, err
					}
					if product == nil {
						return nil, nil
					}
					return product, nil
				},
			},
			"order": &graphql.Field{
				Type: t.order,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := parseIDArg(p.Args)
					if !ok {
						return nil, nil
					}
					order, err := r.Orders.FindByID(id)
					if err != nil {
						return nil, err
					}
					if order == nil {
						return nil, nil
					}
					return order, nil
				},
			},

			// ── Filtered listings: no args means list-all ───────────────

			"allCustomers": &graphql.Field{
				Type: graphql.NewList(t.customer),
				Args: graphql.FieldConfigArgument{
					"name":            &graphql.ArgumentConfig{Type: graphql.String},
					"email":           &graphql.ArgumentConfig{Type: graphql.String},
					"phone":           &graphql.ArgumentConfig{Type: graphql.String},
					"phoneStartsWith": &graphql.ArgumentConfig{Type: graphql.String},
					"createdAtGte":    &graphql.ArgumentConfig{Type: graphql.DateTime},
					"createdAtLte":    &graphql.ArgumentConfig{Type: graphql.DateTime},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Customers.All(filters.CustomerFilterFromArgs(p.Args))
				},
			},
			"allProducts": &graphql.Field{
				Type: graphql.NewList(t.product),
				Args: graphql.FieldConfigArgument{
					"name":       &graphql.ArgumentConfig{Type: graphql.String},
					"priceGte":   &graphql.ArgumentConfig{Type: graphql.Float},
					"priceLte":   &graphql.ArgumentConfig{Type: graphql.Float},
					"stock":      &graphql.ArgumentConfig{Type: graphql.Int},
					"stockGte":   &graphql.ArgumentConfig{Type: graphql.Int},
					"stockLte":   &graphql.ArgumentConfig{Type: graphql.Int},
					"lowStock":   &graphql.ArgumentConfig{Type: graphql.Int},
					"outOfStock": &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Products.All(filters.ProductFilterFromArgs(p.Args))
				},
			},
			"allOrders": &graphql.Field{
				Type: graphql.NewList(t.order),
				Args: graphql.FieldConfigArgument{
					"totalAmountGte": &graphql.ArgumentConfig{Type: graphql.Float},
					"totalAmountLte": &graphql.ArgumentConfig{Type: graphql.Float},
					"orderDateGte":   &graphql.ArgumentConfig{Type: graphql.DateTime},
					"orderDateLte":   &graphql.ArgumentConfig{Type: graphql.DateTime},
					"customerName":   &graphql.ArgumentConfig{Type: graphql.String},
					"customerEmail":  &graphql.ArgumentConfig{Type: graphql.String},
					"customerId":     &graphql.ArgumentConfig{Type: graphql.ID},
					"productName":    &graphql.ArgumentConfig{Type: graphql.String},
					"productId":      &graphql.ArgumentConfig{Type: graphql.ID},
					// Comma-separated id list, e.g. "1,3,9".
					"productIds": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Orders.All(filters.OrderFilterFromArgs(p.Args))
				},
			},
		},
	})
}
