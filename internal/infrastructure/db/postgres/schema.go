package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"go.uber.org/zap"
)

//go:embed schema.sql
var schema string

// EnsureSchema creates the users and emails tables when they are missing.
// It is idempotent and does not alter existing tables.
func EnsureSchema(ctx context.Context, logger *zap.Logger, db DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	logger.Info("db schema ensured")

	return nil
}
