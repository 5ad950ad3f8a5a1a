package mongo

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx/fxtest"
)

type recordingIndexes struct {
	calls  int
	models []mongo.IndexModel
	err    error
	hasDL  bool
}

func (r *recordingIndexes) CreateMany(ctx context.Context, models []mongo.IndexModel, _ ...*options.CreateIndexesOptions) ([]string, error) {
	r.calls++
	r.models = models
	_, r.hasDL = ctx.Deadline()
	if r.err != nil {
		return nil, r.err
	}

	return []string{"timestamp_-1", "business_id_1_timestamp_-1", "event_type_1"}, nil
}

func TestRegisterIndexHook_CreatesOnStart(t *testing.T) {
	var buf bytes.Buffer
	indexes := &recordingIndexes{}
	lc := fxtest.NewLifecycle(t)

	registerIndexHook(lc, indexes, slog.New(slog.NewJSONHandler(&buf, nil)))
	assert.Zero(t, indexes.calls)

	lc.RequireStart()
	defer lc.RequireStop()

	assert.Equal(t, 1, indexes.calls)
	assert.Len(t, indexes.models, 3)
	assert.True(t, indexes.hasDL)
	assert.Contains(t, buf.String(), "Analytic event indexes ready")
}

func TestRegisterIndexHook_FailureDoesNotBlockStart(t *testing.T) {
	var buf bytes.Buffer
	indexes := &recordingIndexes{err: errors.New("not primary")}
	lc := fxtest.NewLifecycle(t)

	registerIndexHook(lc, indexes, slog.New(slog.NewJSONHandler(&buf, nil)))

	lc.RequireStart()
	defer lc.RequireStop()

	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), "not primary")
}
