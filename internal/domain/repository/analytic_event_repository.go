package repository

import (
	"context"
	"time"

	"dealfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// EventWindow selects the events counted by CountByDay.
type EventWindow struct {
	Since      time.Time
	BusinessID *uuid.UUID // Restrict to events of one business.
}

// AnalyticEventRepository is the append-only event log.
type AnalyticEventRepository interface {
	// Append stores an event. Events are never updated or deleted.
	Append(ctx context.Context, event *entity.AnalyticEvent) error

	// CountByDay buckets the events of the window by UTC calendar day and event type,
	// ascending by day.
	CountByDay(ctx context.Context, window EventWindow) ([]entity.EventCount, error)
}
