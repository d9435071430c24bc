package usecase_session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/blogforge/core/internal/model"
)

var (
	ErrInternal           = errors.New("internal error")
	ErrMalformedSessionID = errors.New("malformed session id")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

//go:generate mockery --name=SessionRepository --output=./mocks/session/repository --filename=repository.go
type SessionRepository interface {
	Insert(ctx context.Context, session model.Session) error
	ByID(ctx context.Context, id uuid.UUID) (model.Session, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// SessionSet is the redis shadow of the sessions table. It is never
// authoritative: entries carry the same TTL as the row and are removed on
// every delete path, so the set cannot claim a session the store lost.
//
//go:generate mockery --name=SessionSet --output=./mocks/session/set --filename=set.go
type SessionSet interface {
	Set(key string, ttl time.Duration) error
	Exists(key string) (bool, error)
	Del(key string) error
}

const DefaultTTL = time.Hour

type Usecase struct {
	sessions SessionRepository
	set      SessionSet
	ttl      time.Duration
	now      func() time.Time
}

func New(
	sessions SessionRepository,
	set SessionSet,
	ttl time.Duration,
) *Usecase {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Usecase{
		sessions: sessions,
		set:      set,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create inserts a session row for the user and mirrors its id into the set.
func (u *Usecase) Create(ctx context.Context, userID uuid.UUID, accessToken, csrfToken string) (model.Session, error) {
	session := model.Session{
		SessionID:   uuid.New(),
		AccessToken: accessToken,
		ExpiresAt:   u.now().Add(u.ttl),
		CSRFToken:   csrfToken,
		UserID:      userID,
	}

	if err := u.sessions.Insert(ctx, session); err != nil {
		return model.Session{}, errors.Join(ErrInternal, err)
	}

	if err := u.set.Set(session.SessionID.String(), u.ttl); err != nil {
		return model.Session{}, errors.Join(ErrInternal, err)
	}

	return session, nil
}

// Validate resolves a raw cookie value to a live session.
// A malformed value never reaches the store. An expired row is deleted on
// observation, not merely ignored.
func (u *Usecase) Validate(ctx context.Context, raw string) (model.Session, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return model.Session{}, ErrMalformedSessionID
	}

	session, err := u.sessions.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return model.Session{}, ErrSessionNotFound
		}
		return model.Session{}, errors.Join(ErrInternal, err)
	}

	if session.IsExpired(u.now()) {
		if err := u.purge(ctx, id); err != nil {
			return model.Session{}, err
		}
		return model.Session{}, ErrSessionExpired
	}

	return session, nil
}

// Logout deletes the session row regardless of expiry. Deleting a session
// that is already gone is a success, so repeated logouts are harmless.
func (u *Usecase) Logout(ctx context.Context, raw string) error {
	id, err := uuid.Parse(raw)
	if err != nil {
		return ErrMalformedSessionID
	}

	return u.purge(ctx, id)
}

// HasActive reports whether the cookie names a live session. The set is a
// cheap reject on the re-auth path; a hit is still verified against the store.
func (u *Usecase) HasActive(ctx context.Context, raw string) (bool, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return false, ErrMalformedSessionID
	}

	known, err := u.set.Exists(id.String())
	if err != nil {
		return false, errors.Join(ErrInternal, err)
	}
	if !known {
		return false, nil
	}

	session, err := u.sessions.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return false, nil
		}
		return false, errors.Join(ErrInternal, err)
	}

	if session.IsExpired(u.now()) {
		if err := u.purge(ctx, id); err != nil {
			return false, err
		}
		return false, nil
	}

	return true, nil
}

func (u *Usecase) purge(ctx context.Context, id uuid.UUID) error {
	if err := u.sessions.DeleteByID(ctx, id); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return errors.Join(ErrInternal, err)
	}

	if err := u.set.Del(id.String()); err != nil {
		return errors.Join(ErrInternal, err)
	}

	return nil
}
