package usecase_upload

import (
	"context"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	storage_mocks "github.com/blogforge/core/internal/usecase/upload/mocks/upload/storage"
)

const publicURLFormat = "https://%s.s3.amazonaws.com/%s"

type UsecaseUploadUnitSuite struct {
	suite.Suite
}

func (suite *UsecaseUploadUnitSuite) TestStore(t provider.T) {
	t.Parallel()

	t.Run("Should report per-file success and keep going after a failed put", func(t provider.T) {
		storage := storage_mocks.NewObjectStorage(t)
		usecase := New(storage, "blog-assets", publicURLFormat)
		ctx := context.Background()

		storage.On("Save", ctx, mock.AnythingOfType("string"), "image/png", []byte("ok")).
			Return(nil).Once()
		storage.On("Save", ctx, mock.AnythingOfType("string"), "image/jpeg", []byte("bad")).
			Return(assert.AnError).Once()

		results := usecase.Store(ctx, []File{
			{Name: "a.png", ContentType: "image/png", Data: []byte("ok")},
			{Name: "b.jpg", ContentType: "image/jpeg", Data: []byte("bad")},
		})

		assert.Len(t, results, 2)
		assert.True(t, results[0].Successful)
		assert.False(t, results[1].Successful)
		assert.NotEqual(t, results[0].Key, results[1].Key)
		assert.Contains(t, results[0].URL, "blog-assets.s3.amazonaws.com/"+results[0].Key)
		assert.Equal(t, "a.png", results[0].FileName)
	})

	t.Run("Should build public links from the configured format", func(t provider.T) {
		storage := storage_mocks.NewObjectStorage(t)
		usecase := New(storage, "blog-assets", "https://cdn.example.com/%s/%s")
		ctx := context.Background()

		storage.On("Save", ctx, mock.AnythingOfType("string"), "image/png", []byte("ok")).
			Return(nil).Once()

		results := usecase.Store(ctx, []File{
			{Name: "a.png", ContentType: "image/png", Data: []byte("ok")},
		})

		assert.Equal(t, "https://cdn.example.com/blog-assets/"+results[0].Key, results[0].URL)
	})
}

func (suite *UsecaseUploadUnitSuite) TestRemove(t provider.T) {
	t.Parallel()

	t.Run("Should delete the object by key", func(t provider.T) {
		storage := storage_mocks.NewObjectStorage(t)
		usecase := New(storage, "blog-assets", publicURLFormat)
		ctx := context.Background()

		storage.On("Delete", ctx, "some-key").Return(nil).Once()

		assert.NoError(t, usecase.Remove(ctx, "some-key"))
	})

	t.Run("Should wrap storage failure", func(t provider.T) {
		storage := storage_mocks.NewObjectStorage(t)
		usecase := New(storage, "blog-assets", publicURLFormat)
		ctx := context.Background()

		storage.On("Delete", ctx, "some-key").Return(assert.AnError).Once()

		assert.ErrorIs(t, usecase.Remove(ctx, "some-key"), ErrInternal)
	})
}

func (suite *UsecaseUploadUnitSuite) TestShareURL(t provider.T) {
	t.Parallel()

	t.Run("Should presign with the share ttl", func(t provider.T) {
		storage := storage_mocks.NewObjectStorage(t)
		usecase := New(storage, "blog-assets", publicURLFormat)
		ctx := context.Background()

		storage.On("GeneratePresignedURL", ctx, "some-key", ShareTTL).
			Return("https://signed.example.com/some-key", nil).Once()

		url, err := usecase.ShareURL(ctx, "some-key")

		assert.NoError(t, err)
		assert.Equal(t, "https://signed.example.com/some-key", url)
	})

	t.Run("Should wrap presign failure", func(t provider.T) {
		storage := storage_mocks.NewObjectStorage(t)
		usecase := New(storage, "blog-assets", publicURLFormat)
		ctx := context.Background()

		storage.On("GeneratePresignedURL", ctx, "some-key", ShareTTL).
			Return("", assert.AnError).Once()

		_, err := usecase.ShareURL(ctx, "some-key")

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestUsecaseUploadUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseUploadUnitSuite))
}
