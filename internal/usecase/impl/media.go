package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"dealfinder/config"
	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/domain/service"
	"dealfinder/internal/util"

	"github.com/pkg/errors"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// mediaStore validates uploaded images and moves them into the image storage.
type mediaStore struct {
	storage   service.ImageStorage
	maxSize   int64
	maxImages int
}

func newMediaStore(storage service.ImageStorage, cfg *config.Config) *mediaStore {
	m := &mediaStore{storage: storage}
	if cfg != nil && cfg.Storage != nil {
		m.maxSize = cfg.Storage.MaxImageSize
		m.maxImages = cfg.Storage.MaxImages
	}

	return m
}

// validate checks the type, size and number of uploads without storing anything.
func (m *mediaStore) validate(uploads ...service.ImageUpload) error {
	if m.maxImages > 0 && len(uploads) > m.maxImages {
		return domainerrors.ErrTooManyImages.WrapMessage("too many images in request")
	}

	for _, upload := range uploads {
		ext := strings.ToLower(filepath.Ext(upload.Filename))
		if !allowedImageExtensions[ext] {
			return domainerrors.ErrInvalidImage.WrapMessage("unsupported image extension " + ext)
		}
		if upload.ContentType != "" && !strings.HasPrefix(upload.ContentType, "image/") {
			return domainerrors.ErrInvalidImage.WrapMessage("unsupported content type " + upload.ContentType)
		}
		if m.maxSize > 0 && upload.Size > m.maxSize {
			return domainerrors.ErrImageTooLarge.WrapMessage(upload.Filename + " is larger than " + util.FormatBytes(m.maxSize))
		}
	}

	return nil
}

// save stores the uploads in order. When one fails, the ones already stored are removed.
func (m *mediaStore) save(ctx context.Context, logger *slog.Logger, uploads ...service.ImageUpload) ([]string, error) {
	paths := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		path, err := m.storage.Save(ctx, upload)
		if err != nil {
			m.discard(ctx, logger, paths...)

			return nil, errors.Wrap(domainerrors.ErrImageStorageFailed, err.Error())
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// discard removes stored images. Failures are only logged.
func (m *mediaStore) discard(ctx context.Context, logger *slog.Logger, paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := m.storage.Delete(ctx, path); err != nil {
			logger.Warn("Failed to delete stored image", slog.String("path", path), slog.Any("error", err))
		}
	}
}

// brandingPaths lists the uploaded logo and cover of b. The shared default logo is never owned by one business.
func brandingPaths(b *entity.Business) []string {
	if b == nil {
		return nil
	}
	paths := []string{b.CoverImage}
	if b.Logo != entity.DefaultBusinessLogo {
		paths = append(paths, b.Logo)
	}

	return paths
}

// uploadNames lists the original file names, used as stand-ins while validating an entity
// before its images are stored.
func uploadNames(uploads []service.ImageUpload) []string {
	names := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		names = append(names, upload.Filename)
	}

	return names
}
