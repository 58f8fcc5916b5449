package ports

import (
	"context"

	"user-directory-api/internal/domain/user"
)

type UserDirectory interface {
	Add(ctx context.Context, u user.AddUser) (user.UUID, error)
	Get(ctx context.Context, id user.UUID) (*user.User, error)
	GetOrFail(ctx context.Context, id user.UUID) (*user.User, error)
	Deactivate(ctx context.Context, id user.UUID) (user.UUID, error)
	IsActive(ctx context.Context, id user.UUID) (bool, error)
	IsActiveOrFail(ctx context.Context, id user.UUID) error
}
