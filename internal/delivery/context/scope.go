// Package context carries per-request state from the HTTP layer down to the use cases and the GORM logger.
package context

import (
	"context"
	"log/slog"

	"dealfinder/internal/domain/entity"
)

type scopeKey struct{}

// HeaderXRequestID is the HTTP header echoed back with the request ID.
const HeaderXRequestID = "X-Request-Id"

// Scope is the mutable state of one request. The request ID middleware creates it;
// authentication fills in the actor once the token is verified.
type Scope struct {
	RequestID string
	Actor     *entity.Actor

	logger *slog.Logger
}

// NewScope starts a scope whose logger is tagged with the request ID.
func NewScope(requestID string, logger *slog.Logger) *Scope {
	return &Scope{
		RequestID: requestID,
		logger:    logger.With(slog.String("request_id", requestID)),
	}
}

// Logger returns the request logger.
func (s *Scope) Logger() *slog.Logger {
	return s.logger
}

// Identify records the authenticated caller. Every later log line, including SQL traces,
// carries the actor's ID and role.
func (s *Scope) Identify(actor entity.Actor) {
	s.Actor = &actor
	s.logger = s.logger.With(
		slog.String("actor_id", actor.UserID.String()),
		slog.String("actor_role", actor.Role.String()),
	)
}

// ActorID returns the caller's ID, or an empty string for anonymous requests.
func (s *Scope) ActorID() string {
	if s == nil || s.Actor == nil {
		return ""
	}

	return s.Actor.UserID.String()
}

// WithScope returns a copy of ctx carrying scope.
func WithScope(ctx context.Context, scope *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// ScopeFrom extracts the request scope. Background work has none.
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(*Scope)

	return scope, ok && scope != nil
}

// RequestIDFrom returns the request ID of ctx, or an empty string outside a request.
func RequestIDFrom(ctx context.Context) string {
	if scope, ok := ScopeFrom(ctx); ok {
		return scope.RequestID
	}

	return ""
}

// ActorFrom returns the authenticated caller of ctx.
func ActorFrom(ctx context.Context) (entity.Actor, bool) {
	if scope, ok := ScopeFrom(ctx); ok && scope.Actor != nil {
		return *scope.Actor, true
	}

	return entity.Actor{}, false
}

// GetLoggerOrDefault returns the request logger of ctx, falling back when ctx has no scope.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if scope, ok := ScopeFrom(ctx); ok && scope.logger != nil {
		return scope.logger
	}

	return fallback
}
