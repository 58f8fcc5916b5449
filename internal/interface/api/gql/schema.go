package gql

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"user-directory-api/pkg/logger"
)

//go:embed schema.graphql
var schemaSDL string

const defaultMaxDepth = 8

// NewSchema parses the embedded SDL against the resolver tree.
func NewSchema(root *Resolver, maxDepth int) (*graphql.Schema, error) {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	schema, err := graphql.ParseSchema(
		schemaSDL,
		root,
		graphql.MaxDepth(maxDepth),
		graphql.Logger(panicLogger{log: root.logger}),
	)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}

	return schema, nil
}

// panicLogger reports resolver panics through zap instead of the stdlib logger.
type panicLogger struct {
	log *zap.Logger
}

func (p panicLogger) LogPanic(ctx context.Context, value interface{}) {
	logger.WithRequestID(ctx, p.log).Error("graphql resolver panic",
		zap.Any("panic", value),
		zap.Stack("stack"),
	)
}
