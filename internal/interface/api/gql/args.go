package gql

import (
	"github.com/google/uuid"
	"github.com/graph-gophers/graphql-go"

	"user-directory-api/internal/domain/apperr"
	"user-directory-api/internal/domain/email"
)

type (
	userIDArgs struct {
		UserID string `validate:"required,uuid" label:"user id"`
	}
	emailIDArgs struct {
		EmailID string `validate:"required,uuid" label:"email id"`
	}
	addUserArgs struct {
		Name      string `validate:"required,max=50" label:"name"`
		Birthdate *graphql.Time
	}
	addEmailArgs struct {
		Address string `validate:"required,max=255,email,mailbox" label:"email address"`
		UserID  string `validate:"required,uuid" label:"user id"`
	}

	stringFiltersInput struct {
		Equal *string
		In    *[]string
	}
	emailFiltersArgs struct {
		Address *stringFiltersInput
	}
)

func (a emailFiltersArgs) toDomain() email.Filters {
	if a.Address == nil {
		return email.Filters{}
	}

	f := &email.StringFilter{}
	if a.Address.Equal != nil {
		f.Equal = *a.Address.Equal
	}
	if a.Address.In != nil {
		f.In = *a.Address.In
	}

	return email.Filters{Address: f}
}

// parseID turns an already validated id argument into a UUID.
func parseID(label, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, apperr.Wrap(apperr.Validation, label+" must be a UUID", err)
	}
	return id, nil
}
