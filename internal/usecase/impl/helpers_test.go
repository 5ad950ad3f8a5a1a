package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"dealfinder/config"
	"dealfinder/internal/domain/repository"
	"dealfinder/internal/domain/service"
	mockRepo "dealfinder/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{
			MaxImageSize: 5 << 20,
			MaxImages:    5,
		},
		Pagination: &config.PaginationConfig{
			PublicLimit: 12,
			AdminLimit:  10,
			MaxLimit:    100,
		},
	}
}

func fixedNow() time.Time {
	return testNow
}

func ptr[T any](v T) *T {
	return &v
}

func pngUpload(name string) service.ImageUpload {
	return service.ImageUpload{
		Filename:    name,
		ContentType: "image/png",
		Size:        1024,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("png")), nil
		},
	}
}

// uploadNamed matches an upload by file name. Uploads carry an Open func, so they never compare equal.
func uploadNamed(name string) any {
	return mock.MatchedBy(func(u service.ImageUpload) bool { return u.Filename == name })
}

// expectTransaction runs the transaction body against the given factory and
// returns whatever the body returns.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
