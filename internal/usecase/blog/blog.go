package usecase_blog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/blogforge/core/internal/model"
)

var (
	ErrInternal        = errors.New("internal error")
	ErrMalformedUserID = errors.New("malformed user id")
	ErrBlogNotFound    = errors.New("blog not found")
	ErrOwnerNotFound   = errors.New("owner not found")
)

//go:generate mockery --name=BlogRepository --output=./mocks/blog/repository --filename=repository.go
type BlogRepository interface {
	Insert(ctx context.Context, blog model.Blog) (model.Blog, error)
	ByID(ctx context.Context, id int) (model.Blog, error)
	All(ctx context.Context) ([]model.Blog, error)
	AllByUser(ctx context.Context, userID uuid.UUID) ([]model.Blog, error)
	Update(ctx context.Context, id int, title, content string) error
	DeleteByID(ctx context.Context, id int) error
}

//go:generate mockery --name=OwnerChecker --output=./mocks/blog/owner --filename=owner.go
type OwnerChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Usecase struct {
	blogs  BlogRepository
	owners OwnerChecker
}

func New(blogs BlogRepository, owners OwnerChecker) *Usecase {
	return &Usecase{
		blogs:  blogs,
		owners: owners,
	}
}

// Create rejects blogs whose owner does not exist. The check is a read before
// the write, not a transaction; a concurrent owner delete can slip between
// the two.
func (u *Usecase) Create(ctx context.Context, title, content string, rawUserID string) (model.Blog, error) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return model.Blog{}, ErrMalformedUserID
	}

	exists, err := u.owners.Exists(ctx, userID)
	if err != nil {
		return model.Blog{}, errors.Join(ErrInternal, err)
	}
	if !exists {
		return model.Blog{}, ErrOwnerNotFound
	}

	blog, err := u.blogs.Insert(ctx, model.Blog{
		Title:   title,
		Content: content,
		UserID:  userID,
	})
	if err != nil {
		return model.Blog{}, errors.Join(ErrInternal, err)
	}

	return blog, nil
}

func (u *Usecase) ByID(ctx context.Context, id int) (model.Blog, error) {
	blog, err := u.blogs.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrBlogNotFound) {
			return model.Blog{}, ErrBlogNotFound
		}
		return model.Blog{}, errors.Join(ErrInternal, err)
	}
	return blog, nil
}

func (u *Usecase) All(ctx context.Context) ([]model.Blog, error) {
	blogs, err := u.blogs.All(ctx)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return blogs, nil
}

func (u *Usecase) AllByUser(ctx context.Context, rawUserID string) ([]model.Blog, error) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, ErrMalformedUserID
	}

	blogs, err := u.blogs.AllByUser(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return blogs, nil
}

func (u *Usecase) Update(ctx context.Context, id int, title, content string) error {
	if err := u.blogs.Update(ctx, id, title, content); err != nil {
		if errors.Is(err, ErrBlogNotFound) {
			return ErrBlogNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (u *Usecase) Delete(ctx context.Context, id int) error {
	if err := u.blogs.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, ErrBlogNotFound) {
			return ErrBlogNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}
