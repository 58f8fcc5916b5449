package user

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-directory-api/internal/domain/user"
)

var userColumns = []string{"id", "name", "birthdate", "status"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock
}

func TestRepository_FetchUserByID(t *testing.T) {
	id := uuid.New()
	birth := time.Date(1989, time.April, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(m pgxmock.PgxPoolIface)
		want    *domain.User
		wantErr bool
	}{
		{
			name: "found",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
					WithArgs(id).
					WillReturnRows(pgxmock.NewRows(userColumns).AddRow(id, "Moi Même", &birth, "active"))
			},
			want: &domain.User{UUID: id, Name: "Moi Même", Birthdate: &birth, Status: domain.StatusActive},
		},
		{
			name: "found without birthdate",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
					WithArgs(id).
					WillReturnRows(pgxmock.NewRows(userColumns).AddRow(id, "Jane", nil, "inactive"))
			},
			want: &domain.User{UUID: id, Name: "Jane", Status: domain.StatusInactive},
		},
		{
			name: "absent is not an error",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
					WithArgs(id).
					WillReturnRows(pgxmock.NewRows(userColumns))
			},
			want: nil,
		},
		{
			name: "db error",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
					WithArgs(id).
					WillReturnError(errors.New("conn reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)

			got, err := NewRepository(mock).FetchUserByID(context.Background(), id)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateUser(t *testing.T) {
	mock := newMock(t)
	id := uuid.New()
	birth := time.Date(2001, time.December, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
		WithArgs("User Name", &birth, "active").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))

	got, err := NewRepository(mock).CreateUser(context.Background(), domain.User{
		Name:      "User Name",
		Birthdate: &birth,
		Status:    domain.StatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, id, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateUser_Error(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
		WithArgs("User Name", pgxmock.AnyArg(), "active").
		WillReturnError(errors.New("value too long"))

	_, err := NewRepository(mock).CreateUser(context.Background(), domain.User{
		Name:   "User Name",
		Status: domain.StatusActive,
	})
	require.ErrorContains(t, err, "insert user")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeactivateUser(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		affected int64
		execErr  error
		want     bool
		wantErr  bool
	}{
		{name: "existing user", affected: 1, want: true},
		{name: "missing user", affected: 0, want: false},
		{name: "db error", execErr: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			exp := mock.ExpectExec(regexp.QuoteMeta(DeactivateUserByID)).WithArgs(id)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))
			}

			got, err := NewRepository(mock).DeactivateUser(context.Background(), id)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ExistsActive(t *testing.T) {
	id := uuid.New()

	for _, exists := range []bool{true, false} {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(ExistsActiveUser)).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(exists))

		got, err := NewRepository(mock).ExistsActive(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, exists, got)
		require.NoError(t, mock.ExpectationsWereMet())
	}
}
