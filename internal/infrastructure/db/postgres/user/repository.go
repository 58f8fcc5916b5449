package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"user-directory-api/internal/domain/user"
	"user-directory-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, uuid).Scan(
		&u.UUID,
		&u.Name,
		&u.Birthdate,
		&u.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch user %s: %w", uuid, err)
	}

	return fromDBModel(u), nil
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (user.UUID, error) {
	var id user.UUID
	if err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Name, req.Birthdate, string(req.Status),
	).Scan(&id); err != nil {
		return user.UUID{}, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

// DeactivateUser relies on postgres counting matched rows, so an already
// inactive user still reports true.
func (r *Repository) DeactivateUser(ctx context.Context, uuid user.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeactivateUserByID, uuid)
	if err != nil {
		return false, fmt.Errorf("deactivate user %s: %w", uuid, err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ExistsActive(ctx context.Context, uuid user.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsActiveUser, uuid).Scan(&exists); err != nil {
		return false, fmt.Errorf("check active user %s: %w", uuid, err)
	}

	return exists, nil
}
