package usecase_auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"

	"github.com/google/uuid"
	"github.com/blogforge/core/internal/model"
)

var (
	ErrInternal         = errors.New("internal error")
	ErrExchangeFailed   = errors.New("code exchange failed")
	ErrUserInfoFetch    = errors.New("userinfo fetch failed")
	ErrUserInfoParse    = errors.New("userinfo parse failed")
	ErrEmailNotVerified = errors.New("email not verified")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already registered")
)

type Token struct {
	AccessToken  string
	RefreshToken string
}

// Provider wraps one configured OAuth endpoint set. Implementations must be
// safe for concurrent use: the configuration is immutable after construction
// and no lock is held around the outbound calls.
//
//go:generate mockery --name=Provider --output=./mocks/auth/provider --filename=provider.go
type Provider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (Token, error)
	UserInfo(ctx context.Context, accessToken string) (model.UserInfo, error)
}

//go:generate mockery --name=UserRepository --output=./mocks/auth/repository --filename=repository.go
type UserRepository interface {
	ByEmail(ctx context.Context, email string) (model.User, error)
	Insert(ctx context.Context, user model.User) error
}

//go:generate mockery --name=SessionCreator --output=./mocks/auth/sessions --filename=sessions.go
type SessionCreator interface {
	Create(ctx context.Context, userID uuid.UUID, accessToken, csrfToken string) (model.Session, error)
}

type Usecase struct {
	login    Provider
	signOn   Provider
	users    UserRepository
	sessions SessionCreator
}

func New(
	login Provider,
	signOn Provider,
	users UserRepository,
	sessions SessionCreator,
) *Usecase {
	return &Usecase{
		login:    login,
		signOn:   signOn,
		users:    users,
		sessions: sessions,
	}
}

// LoginURL returns the authorization redirect bound to a fresh CSRF state.
func (u *Usecase) LoginURL() (string, string) {
	state := newState()
	return u.login.AuthCodeURL(state), state
}

// SignOnURL is the registration entry point. It uses the sign-on redirect
// so the callback lands on the path that inserts a user row.
func (u *Usecase) SignOnURL() (string, string) {
	state := newState()
	return u.signOn.AuthCodeURL(state), state
}

// Login finishes the OAuth flow for an existing user. A user row is never
// created here; registration is a separate entry point.
func (u *Usecase) Login(ctx context.Context, code, state string) (model.Session, error) {
	info, token, err := u.identify(ctx, u.login, code)
	if err != nil {
		return model.Session{}, err
	}

	user, err := u.users.ByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return model.Session{}, ErrUserNotFound
		}
		return model.Session{}, errors.Join(ErrInternal, err)
	}

	session, err := u.sessions.Create(ctx, user.UUID, token.AccessToken, state)
	if err != nil {
		return model.Session{}, errors.Join(ErrInternal, err)
	}

	return session, nil
}

// SignOn finishes the OAuth flow for a new user: the user row is always
// inserted, then a session is opened for it.
func (u *Usecase) SignOn(ctx context.Context, code, state string) (model.User, model.Session, error) {
	info, token, err := u.identify(ctx, u.signOn, code)
	if err != nil {
		return model.User{}, model.Session{}, err
	}

	user := model.User{
		UUID:  uuid.New(),
		Name:  info.Name,
		Email: info.Email,
	}

	if err := u.users.Insert(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return model.User{}, model.Session{}, ErrEmailTaken
		}
		return model.User{}, model.Session{}, errors.Join(ErrInternal, err)
	}

	session, err := u.sessions.Create(ctx, user.UUID, token.AccessToken, state)
	if err != nil {
		return model.User{}, model.Session{}, errors.Join(ErrInternal, err)
	}

	return user, session, nil
}

// RegisterLocal signs a user on by credentials and opens a session for them.
func (u *Usecase) RegisterLocal(ctx context.Context, name, email, password string) (model.User, model.Session, error) {
	user := model.User{
		UUID:     uuid.New(),
		Name:     name,
		Email:    email,
		Password: password,
	}

	if err := u.users.Insert(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return model.User{}, model.Session{}, ErrEmailTaken
		}
		return model.User{}, model.Session{}, errors.Join(ErrInternal, err)
	}

	session, err := u.sessions.Create(ctx, user.UUID, "local:"+user.UUID.String(), newState())
	if err != nil {
		return model.User{}, model.Session{}, errors.Join(ErrInternal, err)
	}

	return user, session, nil
}

// identify runs exchange + userinfo and enforces the verified-email hard stop.
// No session exists yet at this point, so a failure leaves no state behind.
func (u *Usecase) identify(ctx context.Context, p Provider, code string) (model.UserInfo, Token, error) {
	token, err := p.Exchange(ctx, code)
	if err != nil {
		return model.UserInfo{}, Token{}, err
	}

	info, err := p.UserInfo(ctx, token.AccessToken)
	if err != nil {
		return model.UserInfo{}, Token{}, err
	}

	if !info.VerifiedEmail {
		return model.UserInfo{}, Token{}, ErrEmailNotVerified
	}

	return info, token, nil
}

func newState() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return uuid.New().String()
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
