package service

import (
	"context"
	"errors"
	"io"
)

// ErrImageNotFound is returned when a stored image does not exist.
var ErrImageNotFound = errors.New("image not found")

// ImageUpload is one uploaded file waiting to be stored.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// StoredImage is a readable stored object.
type StoredImage struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ImageStorage persists uploaded media in an object bucket.
type ImageStorage interface {
	// Save stores the upload under a generated key and returns the public path of the object.
	Save(ctx context.Context, upload ImageUpload) (string, error)

	// Open reads a stored object by key. The caller closes the body.
	Open(ctx context.Context, key string) (*StoredImage, error)

	// Delete removes a stored object by its public path. Missing objects are ignored.
	Delete(ctx context.Context, path string) error
}
