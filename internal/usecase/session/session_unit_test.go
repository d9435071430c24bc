package usecase_session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blogforge/core/internal/model"
	repo_mocks "github.com/blogforge/core/internal/usecase/session/mocks/session/repository"
	set_mocks "github.com/blogforge/core/internal/usecase/session/mocks/session/set"
)

type UsecaseSessionUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	sessions *repo_mocks.SessionRepository
	set      *set_mocks.SessionSet
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	sessions := repo_mocks.NewSessionRepository(t)
	set := set_mocks.NewSessionSet(t)
	usecase := New(sessions, set, time.Hour)

	return &resources{
		usecase:  usecase,
		sessions: sessions,
		set:      set,
		ctx:      context.Background(),
	}
}

func frozenNow() time.Time {
	return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func liveSession(id uuid.UUID) model.Session {
	return model.Session{
		SessionID:   id,
		AccessToken: "ya29.access",
		ExpiresAt:   frozenNow().Add(30 * time.Minute),
		CSRFToken:   "state-token",
		UserID:      uuid.New(),
	}
}

func (suite *UsecaseSessionUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	t.Run("Should insert row and mirror id into set with same ttl", func(t provider.T) {
		r := initResources(t)
		r.usecase.now = frozenNow
		userID := uuid.New()

		var inserted model.Session
		r.sessions.On("Insert", r.ctx, mock.AnythingOfType("model.Session")).
			Run(func(args mock.Arguments) {
				inserted = args.Get(1).(model.Session)
			}).
			Return(nil).Once()
		r.set.On("Set", mock.AnythingOfType("string"), time.Hour).Return(nil).Once()

		session, err := r.usecase.Create(r.ctx, userID, "ya29.access", "state-token")

		assert.NoError(t, err)
		assert.Equal(t, inserted, session)
		assert.Equal(t, userID, session.UserID)
		assert.Equal(t, "ya29.access", session.AccessToken)
		assert.Equal(t, "state-token", session.CSRFToken)
		assert.Equal(t, frozenNow().Add(time.Hour), session.ExpiresAt)
	})

	t.Run("Should surface repository failure", func(t provider.T) {
		r := initResources(t)
		r.sessions.On("Insert", r.ctx, mock.AnythingOfType("model.Session")).
			Return(assert.AnError).Once()

		_, err := r.usecase.Create(r.ctx, uuid.New(), "t", "s")

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (suite *UsecaseSessionUnitSuite) TestValidate(t provider.T) {
	t.Parallel()

	t.Run("Should return session and leave row untouched when not expired", func(t provider.T) {
		r := initResources(t)
		r.usecase.now = frozenNow
		id := uuid.New()
		stored := liveSession(id)

		r.sessions.On("ByID", r.ctx, id).Return(stored, nil).Once()

		session, err := r.usecase.Validate(r.ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, stored, session)
		r.sessions.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("Should delete expired row once and drop it from the set", func(t provider.T) {
		r := initResources(t)
		r.usecase.now = frozenNow
		id := uuid.New()
		stored := liveSession(id)
		stored.ExpiresAt = frozenNow().Add(-time.Minute)

		r.sessions.On("ByID", r.ctx, id).Return(stored, nil).Once()
		r.sessions.On("DeleteByID", r.ctx, id).Return(nil).Once()
		r.set.On("Del", id.String()).Return(nil).Once()

		_, err := r.usecase.Validate(r.ctx, id.String())

		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("Should report not found on second validation after expiry cleanup", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()

		r.sessions.On("ByID", r.ctx, id).Return(model.Session{}, ErrSessionNotFound).Once()

		_, err := r.usecase.Validate(r.ctx, id.String())

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Should never contact the store for a malformed cookie value", func(t provider.T) {
		r := initResources(t)

		_, err := r.usecase.Validate(r.ctx, "not-a-uuid")

		assert.ErrorIs(t, err, ErrMalformedSessionID)
		r.sessions.AssertNotCalled(t, "ByID", mock.Anything, mock.Anything)
	})
}

func (suite *UsecaseSessionUnitSuite) TestLogout(t provider.T) {
	t.Parallel()

	t.Run("Should delete row and set entry", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()

		r.sessions.On("DeleteByID", r.ctx, id).Return(nil).Once()
		r.set.On("Del", id.String()).Return(nil).Once()

		assert.NoError(t, r.usecase.Logout(r.ctx, id.String()))
	})

	t.Run("Should stay successful when the session is already gone", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()

		r.sessions.On("DeleteByID", r.ctx, id).Return(ErrSessionNotFound).Twice()
		r.set.On("Del", id.String()).Return(nil).Twice()

		assert.NoError(t, r.usecase.Logout(r.ctx, id.String()))
		assert.NoError(t, r.usecase.Logout(r.ctx, id.String()))
	})

	t.Run("Should reject malformed id without store access", func(t provider.T) {
		r := initResources(t)

		err := r.usecase.Logout(r.ctx, "deleted")

		assert.ErrorIs(t, err, ErrMalformedSessionID)
		r.sessions.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}

func (suite *UsecaseSessionUnitSuite) TestHasActive(t provider.T) {
	t.Parallel()

	t.Run("Should short-circuit on set miss without store access", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()

		r.set.On("Exists", id.String()).Return(false, nil).Once()

		active, err := r.usecase.HasActive(r.ctx, id.String())

		assert.NoError(t, err)
		assert.False(t, active)
		r.sessions.AssertNotCalled(t, "ByID", mock.Anything, mock.Anything)
	})

	t.Run("Should verify a set hit against the store", func(t provider.T) {
		r := initResources(t)
		r.usecase.now = frozenNow
		id := uuid.New()

		r.set.On("Exists", id.String()).Return(true, nil).Once()
		r.sessions.On("ByID", r.ctx, id).Return(liveSession(id), nil).Once()

		active, err := r.usecase.HasActive(r.ctx, id.String())

		assert.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("Should purge when the set outlived an expired row", func(t provider.T) {
		r := initResources(t)
		r.usecase.now = frozenNow
		id := uuid.New()
		stored := liveSession(id)
		stored.ExpiresAt = frozenNow().Add(-time.Second)

		r.set.On("Exists", id.String()).Return(true, nil).Once()
		r.sessions.On("ByID", r.ctx, id).Return(stored, nil).Once()
		r.sessions.On("DeleteByID", r.ctx, id).Return(nil).Once()
		r.set.On("Del", id.String()).Return(nil).Once()

		active, err := r.usecase.HasActive(r.ctx, id.String())

		assert.NoError(t, err)
		assert.False(t, active)
	})
}

func TestUsecaseSessionUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSessionUnitSuite))
}
