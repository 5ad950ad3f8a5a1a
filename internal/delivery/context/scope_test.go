package context

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"dealfinder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_Anonymous(t *testing.T) {
	var buf bytes.Buffer
	scope := NewScope("req-1", slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx := WithScope(context.Background(), scope)

	assert.Equal(t, "req-1", RequestIDFrom(ctx))
	assert.Empty(t, scope.ActorID())

	_, ok := ActorFrom(ctx)
	assert.False(t, ok)

	GetLoggerOrDefault(ctx, slog.Default()).Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.NotContains(t, buf.String(), "actor_id")
}

func TestScope_Identify(t *testing.T) {
	var buf bytes.Buffer
	scope := NewScope("req-2", slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx := WithScope(context.Background(), scope)

	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	scope.Identify(actor)

	got, ok := ActorFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, actor, got)
	assert.Equal(t, actor.UserID.String(), scope.ActorID())

	GetLoggerOrDefault(ctx, slog.Default()).Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-2"`)
	assert.Contains(t, buf.String(), `"actor_role":"admin"`)
}

func TestGetLoggerOrDefault_NoScope(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, RequestIDFrom(context.Background()))
}
