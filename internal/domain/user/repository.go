package user

import (
	"context"
)

type Repository interface {
	// FetchUserByID returns nil, nil when no row matches.
	FetchUserByID(ctx context.Context, uuid UUID) (*User, error)
	CreateUser(ctx context.Context, req User) (UUID, error)
	// DeactivateUser reports false when no row matches.
	DeactivateUser(ctx context.Context, uuid UUID) (bool, error)
	ExistsActive(ctx context.Context, uuid UUID) (bool, error)
}
