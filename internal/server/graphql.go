package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/crm/pkg/logger"
	"github.com/shashiranjanraj/crm/pkg/metrics"
)

// graphqlRequest is the standard GraphQL-over-HTTP POST body.
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLHandler serves the single /graphql endpoint. POST bodies follow the
// {query, variables, operationName} convention; GET supports a ?query=
// parameter for quick manual probes.
func GraphQLHandler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest

		switch r.Method {
		case http.MethodPost:
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]interface{}{
					"errors": []map[string]string{{"message": "invalid JSON body"}},
				})
				return
			}
		case http.MethodGet:
			req.Query = r.URL.Query().Get("query")
		default:
			w.Header().Set("Allow", "GET, POST")
			writeJSON(w, http.StatusMethodNotAllowed, map[string]interface{}{
				"errors": []map[string]string{{"message": "method not allowed"}},
			})
			return
		}

		if req.Query == "" {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"errors": []map[string]string{{"message": "query is required"}},
			})
			return
		}

		start := time.Now()
		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        r.Context(),
		})

		op := req.OperationName
		if op == "" {
			op = "anonymous"
		}
		metrics.RecordGraphQL(op, result.HasErrors(), start)

		if result.HasErrors() {
			logger.WithCtx(r.Context()).Warn("graphql: operation errors",
				"operation", op, "errors", len(result.Errors))
		}

		// Per GraphQL-over-HTTP convention, resolver errors still return 200
		// with an errors array in the body.
		writeJSON(w, http.StatusOK, result)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("server: encode response", "error", err)
	}
}
