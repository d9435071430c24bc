package usecase_user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/blogforge/core/internal/model"
)

var (
	ErrInternal        = errors.New("internal error")
	ErrMalformedUserID = errors.New("malformed user id")
	ErrUserNotFound    = errors.New("user not found")
)

//go:generate mockery --name=UserRepository --output=./mocks/user/repository --filename=repository.go
type UserRepository interface {
	All(ctx context.Context) ([]model.User, error)
	ByUUID(ctx context.Context, id uuid.UUID) (model.User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
}

type Usecase struct {
	users UserRepository
}

func New(users UserRepository) *Usecase {
	return &Usecase{users: users}
}

func (u *Usecase) All(ctx context.Context) ([]model.User, error) {
	users, err := u.users.All(ctx)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return users, nil
}

func (u *Usecase) ByID(ctx context.Context, rawID string) (model.User, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return model.User{}, ErrMalformedUserID
	}

	user, err := u.users.ByUUID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, errors.Join(ErrInternal, err)
	}

	return user, nil
}

func (u *Usecase) Rename(ctx context.Context, rawID string, name string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return ErrMalformedUserID
	}

	if err := u.users.UpdateName(ctx, id, name); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return errors.Join(ErrInternal, err)
	}

	return nil
}
