package usecase_upload

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInternal = errors.New("internal error")

// ShareTTL bounds how long a shared attachment link stays valid.
const ShareTTL = 15 * time.Minute

//go:generate mockery --name=ObjectStorage --output=./mocks/upload/storage --filename=storage.go
type ObjectStorage interface {
	Save(ctx context.Context, key, contentType string, data []byte) error
	Delete(ctx context.Context, key string) error
	GeneratePresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type Result struct {
	Key         string
	Successful  bool
	URL         string
	FileName    string
	ContentType string
}

type Usecase struct {
	storage   ObjectStorage
	bucket    string
	urlFormat string
}

func New(storage ObjectStorage, bucket, urlFormat string) *Usecase {
	return &Usecase{
		storage:   storage,
		bucket:    bucket,
		urlFormat: urlFormat,
	}
}

// Store pushes every file under a fresh uuid key. A failed put marks that
// file unsuccessful instead of failing the batch, matching the upload
// endpoint's per-file reporting.
func (u *Usecase) Store(ctx context.Context, files []File) []Result {
	results := make([]Result, 0, len(files))

	for _, f := range files {
		key := uuid.New().String()
		err := u.storage.Save(ctx, key, f.ContentType, f.Data)

		results = append(results, Result{
			Key:         key,
			Successful:  err == nil,
			URL:         fmt.Sprintf(u.urlFormat, u.bucket, key),
			FileName:    f.Name,
			ContentType: f.ContentType,
		})
	}

	return results
}

// Remove drops a stored attachment by its key.
func (u *Usecase) Remove(ctx context.Context, key string) error {
	if err := u.storage.Delete(ctx, key); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// ShareURL returns a time-limited link to a stored attachment without making
// the bucket itself readable.
func (u *Usecase) ShareURL(ctx context.Context, key string) (string, error) {
	url, err := u.storage.GeneratePresignedURL(ctx, key, ShareTTL)
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return url, nil
}
