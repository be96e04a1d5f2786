// Package storage stores user profile images in an object store.
// MinIO and Google Cloud Storage backends are supported; which one is
// used is a deployment choice.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/SHOEB091/code-IDE/config"
	"github.com/google/uuid"
)

// ObjectStorage defines common object operations across backends.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Bucket() string
}

// Avatars stores profile images under per-user keys.
type Avatars struct {
	backend ObjectStorage
}

// NewAvatars selects and constructs the configured backend. An empty
// driver returns (nil, nil): the server then runs without avatar
// uploads.
func NewAvatars(ctx context.Context, cfg config.StorageConfig) (*Avatars, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "":
		return nil, nil
	case "minio":
		backend, err := NewMinioClient(cfg.Minio)
		if err != nil {
			return nil, err
		}
		return &Avatars{backend: backend}, nil
	case "gcs":
		backend, err := NewGCSClient(ctx, cfg.GCS)
		if err != nil {
			return nil, err
		}
		return &Avatars{backend: backend}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// EnsureBucket ensures the configured bucket exists.
func (a *Avatars) EnsureBucket(ctx context.Context) error {
	return a.backend.EnsureBucket(ctx)
}

// Upload stores an avatar image and returns its object key. The key
// embeds the user id and a fresh uuid, so uploads never collide and a
// re-upload leaves the previous object for the caller to delete.
func (a *Avatars) Upload(ctx context.Context, userID int, filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty image data")
	}

	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("avatars/%d/%s%s", userID, uuid.NewString(), ext)
	if err := a.backend.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return "", err
	}
	return key, nil
}

// Open returns a reader for a stored avatar.
func (a *Avatars) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return a.backend.Get(ctx, key)
}

// Remove deletes a stored avatar.
func (a *Avatars) Remove(ctx context.Context, key string) error {
	return a.backend.Delete(ctx, key)
}
