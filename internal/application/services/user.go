package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"user-directory-api/internal/application/ports"
	"user-directory-api/internal/domain/apperr"
	domain "user-directory-api/internal/domain/user"
	"user-directory-api/internal/infrastructure/metrics"
	"user-directory-api/internal/infrastructure/mq"
)

type UserDirectory struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserDirectory(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserDirectory {
	return &UserDirectory{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// Add always stores the user as active, whatever the caller had in mind.
func (ud *UserDirectory) Add(ctx context.Context, u domain.AddUser) (domain.UUID, error) {
	id, err := ud.userRepository.CreateUser(ctx, domain.User{
		Name:      u.Name,
		Birthdate: u.Birthdate,
		Status:    domain.StatusActive,
	})
	if err != nil {
		return domain.UUID{}, err
	}

	publish(ctx, ud.mq, mq.NewEvent(mq.UserAdded, id.String(), mq.UserPayload{
		Name:      u.Name,
		Birthdate: u.Birthdate,
		Status:    string(domain.StatusActive),
	}))

	ud.mCounter.WithLabelValues(metrics.UserAdded).Inc()

	return id, nil
}

func (ud *UserDirectory) Get(ctx context.Context, id domain.UUID) (*domain.User, error) {
	return ud.userRepository.FetchUserByID(ctx, id)
}

func (ud *UserDirectory) GetOrFail(ctx context.Context, id domain.UUID) (*domain.User, error) {
	u, err := ud.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.ErrNotFoundUser
	}

	return u, nil
}

// Deactivate is idempotent: an already inactive user is not an error.
func (ud *UserDirectory) Deactivate(ctx context.Context, id domain.UUID) (domain.UUID, error) {
	found, err := ud.userRepository.DeactivateUser(ctx, id)
	if err != nil {
		return domain.UUID{}, err
	}
	if !found {
		return domain.UUID{}, apperr.ErrNotFoundUser
	}

	publish(ctx, ud.mq, mq.NewEvent(mq.UserDeactivated, id.String(), nil))

	ud.mCounter.WithLabelValues(metrics.UserDeactivated).Inc()

	return id, nil
}

// IsActive does not tell an inactive user from a missing one.
func (ud *UserDirectory) IsActive(ctx context.Context, id domain.UUID) (bool, error) {
	return ud.userRepository.ExistsActive(ctx, id)
}

func (ud *UserDirectory) IsActiveOrFail(ctx context.Context, id domain.UUID) error {
	active, err := ud.IsActive(ctx, id)
	if err != nil {
		return err
	}
	if !active {
		return apperr.ErrInactiveUser
	}

	return nil
}
