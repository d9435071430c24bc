package infra_postgres_session

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/blogforge/core/internal/model"
	usecase_session "github.com/blogforge/core/internal/usecase/session"
)

type SessionInfraUnitSuite struct {
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

func validSession() model.Session {
	return model.Session{
		SessionID:   uuid.New(),
		AccessToken: "ya29.access",
		ExpiresAt:   time.Date(2025, time.March, 1, 13, 0, 0, 0, time.UTC),
		CSRFToken:   "state-token",
		UserID:      uuid.New(),
	}
}

func (suite *SessionInfraUnitSuite) TestInsertThenByID(t provider.T) {
	t.Parallel()

	r := initResources(t)
	defer r.db.Close()
	session := validSession()

	r.mock.ExpectExec("INSERT INTO sessions").
		WithArgs(
			session.SessionID,
			session.AccessToken,
			"",
			nil,
			session.ExpiresAt,
			session.CSRFToken,
			session.UserID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.NewRows([]string{
		"session_id", "access_token", "refresh_token", "data", "expires_at", "csrf_token", "user_id",
	}).AddRow(
		session.SessionID, session.AccessToken, "", nil, session.ExpiresAt, session.CSRFToken, session.UserID,
	)
	r.mock.ExpectQuery("SELECT session_id, access_token, refresh_token, data, expires_at, csrf_token, user_id").
		WithArgs(session.SessionID).
		WillReturnRows(rows)

	assert.NoError(t, r.driver.Insert(r.ctx, session))

	got, err := r.driver.ByID(r.ctx, session.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, session.ExpiresAt, got.ExpiresAt)
	assert.Equal(t, session.CSRFToken, got.CSRFToken)
	assert.Equal(t, session.UserID, got.UserID)

	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (suite *SessionInfraUnitSuite) TestByIDNotFound(t provider.T) {
	t.Parallel()

	r := initResources(t)
	defer r.db.Close()
	id := uuid.New()

	r.mock.ExpectQuery("SELECT session_id, access_token, refresh_token, data, expires_at, csrf_token, user_id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"session_id"}))

	_, err := r.driver.ByID(r.ctx, id)

	assert.ErrorIs(t, err, usecase_session.ErrSessionNotFound)
}

func (suite *SessionInfraUnitSuite) TestDeleteByID(t provider.T) {
	t.Parallel()

	t.Run("Should delete existing row", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		id := uuid.New()

		r.mock.ExpectExec("DELETE FROM sessions").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.driver.DeleteByID(r.ctx, id))
	})

	t.Run("Should report not found when nothing was deleted", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		id := uuid.New()

		r.mock.ExpectExec("DELETE FROM sessions").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, r.driver.DeleteByID(r.ctx, id), usecase_session.ErrSessionNotFound)
	})
}

func TestSessionInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(SessionInfraUnitSuite))
}
