package gql

const (
	RouteGraphQL = "/graphql"

	// ops
	RouteApiV1   = "/api/v1"
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
