package ports

import (
	"context"

	"user-directory-api/internal/domain/email"
)

type EmailDirectory interface {
	Add(ctx context.Context, e email.AddEmail) (email.UUID, error)
	Get(ctx context.Context, id email.UUID) (*email.Email, error)
	GetOrFail(ctx context.Context, id email.UUID) (*email.Email, error)
	// Delete returns nil when the row vanished between lookup and delete.
	Delete(ctx context.Context, id email.UUID) (*email.UUID, error)
	List(ctx context.Context, filters email.Filters, userFilter *email.UserIDFilter) (email.Emails, error)
}
