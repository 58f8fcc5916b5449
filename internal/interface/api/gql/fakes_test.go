package gql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-directory-api/internal/application/ports"
	"user-directory-api/internal/domain/email"
	"user-directory-api/internal/domain/user"
)

type FakeUserDirectory struct {
	AddFunc            func(ctx context.Context, u user.AddUser) (user.UUID, error)
	GetFunc            func(ctx context.Context, id user.UUID) (*user.User, error)
	GetOrFailFunc      func(ctx context.Context, id user.UUID) (*user.User, error)
	DeactivateFunc     func(ctx context.Context, id user.UUID) (user.UUID, error)
	IsActiveFunc       func(ctx context.Context, id user.UUID) (bool, error)
	IsActiveOrFailFunc func(ctx context.Context, id user.UUID) error
}

func (f *FakeUserDirectory) Add(ctx context.Context, u user.AddUser) (user.UUID, error) {
	if f.AddFunc == nil {
		return user.UUID{}, errors.New("not used")
	}
	return f.AddFunc(ctx, u)
}
func (f *FakeUserDirectory) Get(ctx context.Context, id user.UUID) (*user.User, error) {
	if f.GetFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetFunc(ctx, id)
}
func (f *FakeUserDirectory) GetOrFail(ctx context.Context, id user.UUID) (*user.User, error) {
	if f.GetOrFailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetOrFailFunc(ctx, id)
}
func (f *FakeUserDirectory) Deactivate(ctx context.Context, id user.UUID) (user.UUID, error) {
	if f.DeactivateFunc == nil {
		return user.UUID{}, errors.New("not used")
	}
	return f.DeactivateFunc(ctx, id)
}
func (f *FakeUserDirectory) IsActive(ctx context.Context, id user.UUID) (bool, error) {
	if f.IsActiveFunc == nil {
		return false, errors.New("not used")
	}
	return f.IsActiveFunc(ctx, id)
}
func (f *FakeUserDirectory) IsActiveOrFail(ctx context.Context, id user.UUID) error {
	if f.IsActiveOrFailFunc == nil {
		return errors.New("not used")
	}
	return f.IsActiveOrFailFunc(ctx, id)
}

type FakeEmailDirectory struct {
	AddFunc       func(ctx context.Context, e email.AddEmail) (email.UUID, error)
	GetFunc       func(ctx context.Context, id email.UUID) (*email.Email, error)
	GetOrFailFunc func(ctx context.Context, id email.UUID) (*email.Email, error)
	DeleteFunc    func(ctx context.Context, id email.UUID) (*email.UUID, error)
	ListFunc      func(ctx context.Context, filters email.Filters, userFilter *email.UserIDFilter) (email.Emails, error)
}

func (f *FakeEmailDirectory) Add(ctx context.Context, e email.AddEmail) (email.UUID, error) {
	if f.AddFunc == nil {
		return email.UUID{}, errors.New("not used")
	}
	return f.AddFunc(ctx, e)
}
func (f *FakeEmailDirectory) Get(ctx context.Context, id email.UUID) (*email.Email, error) {
	if f.GetFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetFunc(ctx, id)
}
func (f *FakeEmailDirectory) GetOrFail(ctx context.Context, id email.UUID) (*email.Email, error) {
	if f.GetOrFailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetOrFailFunc(ctx, id)
}
func (f *FakeEmailDirectory) Delete(ctx context.Context, id email.UUID) (*email.UUID, error) {
	if f.DeleteFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteFunc(ctx, id)
}
func (f *FakeEmailDirectory) List(ctx context.Context, filters email.Filters, userFilter *email.UserIDFilter) (email.Emails, error) {
	if f.ListFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ListFunc(ctx, filters, userFilter)
}

type (
	gqlError struct {
		Message    string         `json:"message"`
		Path       []any          `json:"path"`
		Extensions map[string]any `json:"extensions"`
	}
	gqlResponse struct {
		Data   json.RawMessage `json:"data"`
		Errors []gqlError      `json:"errors"`
	}
)

func setupRouter(t *testing.T, users ports.UserDirectory, emails ports.EmailDirectory) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	_, err := NewGraphQLController(r, users, emails, zap.NewNop(), 0)
	require.NoError(t, err)

	return r
}

func doQuery(t *testing.T, r *gin.Engine, query string, vars map[string]any) gqlResponse {
	t.Helper()

	b, err := json.Marshal(map[string]any{"query": query, "variables": vars})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, RouteGraphQL, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp gqlResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	return resp
}

// decodeData unmarshals resp.Data into out.
func decodeData(t *testing.T, resp gqlResponse, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out))
}
