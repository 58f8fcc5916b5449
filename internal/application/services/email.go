package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"user-directory-api/internal/application/ports"
	"user-directory-api/internal/domain/apperr"
	domain "user-directory-api/internal/domain/email"
	"user-directory-api/internal/infrastructure/metrics"
	"user-directory-api/internal/infrastructure/mq"
)

type EmailDirectory struct {
	emailRepository domain.Repository
	users           ports.UserDirectory
	mq              ports.RabbitMQ
	mCounter        *prometheus.CounterVec
}

func NewEmailDirectory(
	emailRepository domain.Repository,
	users ports.UserDirectory,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.EmailDirectory {
	return &EmailDirectory{
		emailRepository: emailRepository,
		users:           users,
		mq:              mq,
		mCounter:        mCounter,
	}
}

// Add fails with InactiveUser for an inactive as well as an unknown owner.
func (ed *EmailDirectory) Add(ctx context.Context, e domain.AddEmail) (domain.UUID, error) {
	if err := ed.users.IsActiveOrFail(ctx, e.UserID); err != nil {
		return domain.UUID{}, err
	}

	id, err := ed.emailRepository.CreateEmail(ctx, e)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownUser) {
			return domain.UUID{}, apperr.ErrInactiveUser
		}
		return domain.UUID{}, err
	}

	publish(ctx, ed.mq, mq.NewEvent(mq.EmailAdded, id.String(), mq.EmailPayload{
		Address: e.Address,
		UserID:  e.UserID.String(),
	}))

	ed.mCounter.WithLabelValues(metrics.EmailAdded).Inc()

	return id, nil
}

func (ed *EmailDirectory) Get(ctx context.Context, id domain.UUID) (*domain.Email, error) {
	return ed.emailRepository.FetchEmailByID(ctx, id)
}

func (ed *EmailDirectory) GetOrFail(ctx context.Context, id domain.UUID) (*domain.Email, error) {
	e, err := ed.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.ErrNotFoundEmail
	}

	return e, nil
}

// Delete checks the email exists before checking its owner is active.
// The three steps are not atomic; a concurrent delete yields a nil id.
func (ed *EmailDirectory) Delete(ctx context.Context, id domain.UUID) (*domain.UUID, error) {
	e, err := ed.GetOrFail(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = ed.users.IsActiveOrFail(ctx, e.UserID); err != nil {
		return nil, err
	}

	deleted, err := ed.emailRepository.DeleteEmail(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, nil
	}

	publish(ctx, ed.mq, mq.NewEvent(mq.EmailDeleted, id.String(), mq.EmailPayload{
		Address: e.Address,
		UserID:  e.UserID.String(),
	}))

	ed.mCounter.WithLabelValues(metrics.EmailDeleted).Inc()

	return &id, nil
}

func (ed *EmailDirectory) List(
	ctx context.Context,
	filters domain.Filters,
	userFilter *domain.UserIDFilter,
) (domain.Emails, error) {
	return ed.emailRepository.FetchEmails(ctx, filters.ToQuery(userFilter))
}
