// Package storage keeps uploaded media in an object bucket opened through gocloud.dev/blob.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"dealfinder/config"
	"dealfinder/internal/domain/service"
	"dealfinder/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const keyPrefix = "images"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobImageStorage struct {
	bucket     *blob.Bucket
	publicPath string
	now        func() time.Time
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.ImageStorage, error) {
	bucketURL := params.Config.Storage.BucketURL
	if bucketURL == "" {
		return nil, errors.New("storage bucket url is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing image bucket")

			return bucket.Close()
		},
	})

	return NewWithBucket(bucket, params.Config.Storage.PublicPath), nil
}

// NewWithBucket wraps an already opened bucket.
func NewWithBucket(bucket *blob.Bucket, publicPath string) service.ImageStorage {
	return &blobImageStorage{
		bucket:     bucket,
		publicPath: "/" + strings.Trim(publicPath, "/"),
		now:        time.Now,
	}
}

// Save stores the upload under images/<yyyy>/<mm>/<uuid><ext>.
func (s *blobImageStorage) Save(ctx context.Context, upload service.ImageUpload) (string, error) {
	src, err := upload.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open upload")
	}
	defer src.Close()

	now := s.now().UTC()
	ext := strings.ToLower(path.Ext(upload.Filename))
	key := path.Join(keyPrefix, now.Format("2006"), now.Format("01"), uuid.NewString()+ext)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: upload.ContentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, src); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write image")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to flush image")
	}

	return s.publicPath + "/" + key, nil
}

// Open reads a stored object by its bucket key.
func (s *blobImageStorage) Open(ctx context.Context, key string) (*service.StoredImage, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return nil, service.ErrImageNotFound
	}

	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to open image")
	}

	return &service.StoredImage{
		Body:        r,
		ContentType: r.ContentType(),
		Size:        r.Size(),
	}, nil
}

// Delete removes the object behind a public path. Paths outside the bucket are ignored.
func (s *blobImageStorage) Delete(ctx context.Context, publicPath string) error {
	key, ok := strings.CutPrefix(publicPath, s.publicPath+"/")
	if !ok || key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}
