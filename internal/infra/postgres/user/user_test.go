package infra_postgres_user

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/blogforge/core/internal/model"
	usecase_auth "github.com/blogforge/core/internal/usecase/auth"
	usecase_user "github.com/blogforge/core/internal/usecase/user"
)

type UserInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db     *sqlx.DB
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	driver := New(sqlxDB)

	return &resources{
		db:     sqlxDB,
		mock:   mock,
		driver: driver,
		ctx:    context.Background(),
	}
}

func validUser() model.User {
	return model.User{
		UUID:  uuid.New(),
		Name:  "Alice",
		Email: "alice@example.com",
	}
}

func (suite *UserInfraUnitSuite) TestInsert(t provider.T) {
	t.Parallel()

	t.Run("Should insert a fresh user", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		user := validUser()

		r.mock.ExpectExec("INSERT INTO users").
			WithArgs(user.UUID, user.Name, user.Email, "").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.driver.Insert(r.ctx, user))
	})

	t.Run("Should map a unique violation to the taken-email error", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		user := validUser()

		r.mock.ExpectExec("INSERT INTO users").
			WithArgs(user.UUID, user.Name, user.Email, "").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		assert.ErrorIs(t, r.driver.Insert(r.ctx, user), usecase_auth.ErrEmailTaken)
	})

	t.Run("Should pass any other database failure through", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		user := validUser()

		r.mock.ExpectExec("INSERT INTO users").
			WithArgs(user.UUID, user.Name, user.Email, "").
			WillReturnError(&pq.Error{Code: "53300"})

		err := r.driver.Insert(r.ctx, user)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, usecase_auth.ErrEmailTaken)
	})
}

func (suite *UserInfraUnitSuite) TestByEmail(t provider.T) {
	t.Parallel()

	t.Run("Should resolve an existing email", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		user := validUser()

		rows := sqlmock.NewRows([]string{"uuid", "name", "email", "password"}).
			AddRow(user.UUID, user.Name, user.Email, "")
		r.mock.ExpectQuery("SELECT uuid, name, email, password").
			WithArgs(user.Email).
			WillReturnRows(rows)

		got, err := r.driver.ByEmail(r.ctx, user.Email)

		assert.NoError(t, err)
		assert.Equal(t, user.UUID, got.UUID)
		assert.Equal(t, user.Name, got.Name)
	})

	t.Run("Should report the auth not-found error for an unknown email", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		r.mock.ExpectQuery("SELECT uuid, name, email, password").
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"uuid"}))

		_, err := r.driver.ByEmail(r.ctx, "ghost@example.com")

		assert.ErrorIs(t, err, usecase_auth.ErrUserNotFound)
	})
}

func (suite *UserInfraUnitSuite) TestUpdateName(t provider.T) {
	t.Parallel()

	t.Run("Should report the user not-found error when nothing changed", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		id := uuid.New()

		r.mock.ExpectExec("UPDATE users").
			WithArgs("Bob", id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, r.driver.UpdateName(r.ctx, id, "Bob"), usecase_user.ErrUserNotFound)
	})
}

func (suite *UserInfraUnitSuite) TestExists(t provider.T) {
	t.Parallel()

	t.Run("Should report row presence", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		id := uuid.New()

		r.mock.ExpectQuery("SELECT EXISTS").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := r.driver.Exists(r.ctx, id)

		assert.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestUserInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UserInfraUnitSuite))
}
