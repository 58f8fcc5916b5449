package gql

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"user-directory-api/internal/domain/email"
)

type EmailResolver struct {
	root *Resolver
	e    *email.Email
}

func (er *EmailResolver) ID() graphql.ID { return graphql.ID(er.e.UUID.String()) }

func (er *EmailResolver) Address() string { return er.e.Address }

func (er *EmailResolver) UserID() graphql.ID { return graphql.ID(er.e.UserID.String()) }

func (er *EmailResolver) User(ctx context.Context) (*UserResolver, error) {
	u, err := er.root.users.Get(ctx, er.e.UserID)
	if err != nil {
		return nil, er.root.fail(ctx, "UserEmail.User()", err)
	}
	if u == nil {
		return nil, nil
	}

	return &UserResolver{root: er.root, u: u}, nil
}
