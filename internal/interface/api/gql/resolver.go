package gql

import (
	"context"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"user-directory-api/internal/application/ports"
	"user-directory-api/internal/domain/email"
	"user-directory-api/internal/domain/user"
	"user-directory-api/internal/interface/api/gql/validator"
)

// Resolver serves both the Query and the Mutation root types.
type Resolver struct {
	users  ports.UserDirectory
	emails ports.EmailDirectory
	logger *zap.Logger
}

func NewResolver(users ports.UserDirectory, emails ports.EmailDirectory, logger *zap.Logger) *Resolver {
	return &Resolver{
		users:  users,
		emails: emails,
		logger: logger,
	}
}

// queries

func (r *Resolver) User(ctx context.Context, args userIDArgs) (*UserResolver, error) {
	if err := validator.Struct(args); err != nil {
		return nil, r.fail(ctx, "User()", err)
	}

	id, err := parseID("user id", args.UserID)
	if err != nil {
		return nil, r.fail(ctx, "User()", err)
	}

	u, err := r.users.Get(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, "User()", err)
	}
	if u == nil {
		return nil, nil
	}

	return &UserResolver{root: r, u: u}, nil
}

func (r *Resolver) Email(ctx context.Context, args emailIDArgs) (*EmailResolver, error) {
	if err := validator.Struct(args); err != nil {
		return nil, r.fail(ctx, "Email()", err)
	}

	id, err := parseID("email id", args.EmailID)
	if err != nil {
		return nil, r.fail(ctx, "Email()", err)
	}

	e, err := r.emails.Get(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, "Email()", err)
	}
	if e == nil {
		return nil, nil
	}

	return &EmailResolver{root: r, e: e}, nil
}

func (r *Resolver) EmailsList(ctx context.Context, args emailFiltersArgs) ([]*EmailResolver, error) {
	emails, err := r.emails.List(ctx, args.toDomain(), nil)
	if err != nil {
		return nil, r.fail(ctx, "EmailsList()", err)
	}

	return r.emailResolvers(emails), nil
}

// mutations

func (r *Resolver) AddUser(ctx context.Context, args addUserArgs) (graphql.ID, error) {
	args.Name = validator.NormalizeName(args.Name)
	if err := validator.Struct(args); err != nil {
		return "", r.fail(ctx, "AddUser()", err)
	}

	in := user.AddUser{Name: args.Name}
	if args.Birthdate != nil {
		b := args.Birthdate.Time
		in.Birthdate = &b
	}

	id, err := r.users.Add(ctx, in)
	if err != nil {
		return "", r.fail(ctx, "AddUser()", err)
	}

	return graphql.ID(id.String()), nil
}

func (r *Resolver) DeactivateUser(ctx context.Context, args userIDArgs) (graphql.ID, error) {
	if err := validator.Struct(args); err != nil {
		return "", r.fail(ctx, "DeactivateUser()", err)
	}

	userID, err := parseID("user id", args.UserID)
	if err != nil {
		return "", r.fail(ctx, "DeactivateUser()", err)
	}

	id, err := r.users.Deactivate(ctx, userID)
	if err != nil {
		return "", r.fail(ctx, "DeactivateUser()", err)
	}

	return graphql.ID(id.String()), nil
}

func (r *Resolver) AddEmail(ctx context.Context, args addEmailArgs) (graphql.ID, error) {
	if err := validator.Struct(args); err != nil {
		return "", r.fail(ctx, "AddEmail()", err)
	}

	userID, err := parseID("user id", args.UserID)
	if err != nil {
		return "", r.fail(ctx, "AddEmail()", err)
	}

	id, err := r.emails.Add(ctx, email.AddEmail{
		Address: args.Address,
		UserID:  userID,
	})
	if err != nil {
		return "", r.fail(ctx, "AddEmail()", err)
	}

	return graphql.ID(id.String()), nil
}

func (r *Resolver) DeleteEmail(ctx context.Context, args emailIDArgs) (*graphql.ID, error) {
	if err := validator.Struct(args); err != nil {
		return nil, r.fail(ctx, "DeleteEmail()", err)
	}

	emailID, err := parseID("email id", args.EmailID)
	if err != nil {
		return nil, r.fail(ctx, "DeleteEmail()", err)
	}

	id, err := r.emails.Delete(ctx, emailID)
	if err != nil {
		return nil, r.fail(ctx, "DeleteEmail()", err)
	}
	if id == nil {
		return nil, nil
	}

	gid := graphql.ID(id.String())
	return &gid, nil
}

func (r *Resolver) emailResolvers(emails email.Emails) []*EmailResolver {
	out := make([]*EmailResolver, 0, len(emails))
	for _, e := range emails {
		out = append(out, &EmailResolver{root: r, e: e})
	}
	return out
}
