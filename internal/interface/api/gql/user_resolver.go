package gql

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"user-directory-api/internal/domain/email"
	"user-directory-api/internal/domain/user"
)

type UserResolver struct {
	root *Resolver
	u    *user.User
}

func (ur *UserResolver) ID() graphql.ID { return graphql.ID(ur.u.UUID.String()) }

func (ur *UserResolver) Name() string { return ur.u.Name }

func (ur *UserResolver) Birthdate() *graphql.Time {
	if ur.u.Birthdate == nil {
		return nil
	}
	return &graphql.Time{Time: *ur.u.Birthdate}
}

// Emails lists the user's addresses, narrowed by the optional address filter.
func (ur *UserResolver) Emails(ctx context.Context, args emailFiltersArgs) ([]*EmailResolver, error) {
	emails, err := ur.root.emails.List(ctx, args.toDomain(), &email.UserIDFilter{Equal: ur.u.UUID})
	if err != nil {
		return nil, ur.root.fail(ctx, "User.Emails()", err)
	}

	return ur.root.emailResolvers(emails), nil
}
