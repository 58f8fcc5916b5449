package email

import (
	"context"
	"errors"
)

var ErrUnknownUser = errors.New("email references an unknown user")

type Repository interface {
	// FetchEmailByID returns nil, nil when no row matches.
	FetchEmailByID(ctx context.Context, uuid UUID) (*Email, error)
	FetchEmails(ctx context.Context, q Query) (Emails, error)
	CreateEmail(ctx context.Context, req AddEmail) (UUID, error)
	// DeleteEmail reports false when zero rows were affected.
	DeleteEmail(ctx context.Context, uuid UUID) (bool, error)
}
