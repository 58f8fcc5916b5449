package gql

import (
	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go/relay"
	"go.uber.org/zap"

	"user-directory-api/internal/application/ports"
)

type GraphQLController struct {
	resolver *Resolver
	handler  *relay.Handler
}

// NewGraphQLController builds the schema and mounts it on POST /graphql.
func NewGraphQLController(
	r *gin.Engine,
	users ports.UserDirectory,
	emails ports.EmailDirectory,
	logger *zap.Logger,
	maxDepth int,
) (*GraphQLController, error) {
	resolver := NewResolver(users, emails, logger)
	schema, err := NewSchema(resolver, maxDepth)
	if err != nil {
		return nil, err
	}

	gc := &GraphQLController{
		resolver: resolver,
		handler:  &relay.Handler{Schema: schema},
	}

	r.POST(RouteGraphQL, gin.WrapH(gc.handler))

	return gc, nil
}
