package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"user-directory-api/internal/domain/email"
	"user-directory-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) email.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchEmailByID(ctx context.Context, uuid email.UUID) (*email.Email, error) {
	e := new(Email)
	err := r.db.QueryRow(ctx, SelectEmailByID, uuid).Scan(
		&e.UUID,
		&e.Address,
		&e.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch email %s: %w", uuid, err)
	}

	return fromDBModel(e), nil
}

func (r *Repository) FetchEmails(ctx context.Context, q email.Query) (email.Emails, error) {
	sql, args := buildSelectEmails(q)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch emails: %w", err)
	}
	defer rows.Close()

	es := make(Emails, 0)
	for rows.Next() {
		e := new(Email)

		if err = rows.Scan(
			&e.UUID,
			&e.Address,
			&e.UserID,
		); err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}

		es = append(es, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch emails: %w", err)
	}

	return fromDBModels(&es), nil
}

func (r *Repository) CreateEmail(ctx context.Context, req email.AddEmail) (email.UUID, error) {
	var id email.UUID
	if err := r.db.QueryRow(ctx, InsertEmail, req.Address, req.UserID).Scan(&id); err != nil {
		if postgres.IsPgForeignKeyViolation(err) {
			return email.UUID{}, fmt.Errorf("insert email: %w: %w", email.ErrUnknownUser, err)
		}
		return email.UUID{}, fmt.Errorf("insert email: %w", err)
	}

	return id, nil
}

func (r *Repository) DeleteEmail(ctx context.Context, uuid email.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteEmailByID, uuid)
	if err != nil {
		return false, fmt.Errorf("delete email %s: %w", uuid, err)
	}

	return tag.RowsAffected() > 0, nil
}
