package mongo

import (
	"context"
	"time"

	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/domain/repository"
	"dealfinder/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	analyticEventsCollection = "analytic_events"
	dayLayout                = "%Y-%m-%d"
	indexTimeout             = 10 * time.Second
)

// analyticEventDocument is the stored shape of an analytic event. References are kept as strings.
type analyticEventDocument struct {
	ID          string            `bson:"_id"`
	EventType   string            `bson:"event_type"`
	UserID      string            `bson:"user_id,omitempty"`
	PromotionID string            `bson:"promotion_id,omitempty"`
	BusinessID  string            `bson:"business_id,omitempty"`
	SearchQuery string            `bson:"search_query,omitempty"`
	Client      entity.ClientInfo `bson:"client"`
	Timestamp   time.Time         `bson:"timestamp"`
}

type dayBucket struct {
	ID struct {
		Date      string `bson:"date"`
		EventType string `bson:"event_type"`
	} `bson:"_id"`
	Count int64 `bson:"count"`
}

type analyticEventRepository struct {
	coll *mongo.Collection
}

// NewAnalyticEventRepository creates the MongoDB implementation of AnalyticEventRepository.
// Indexes are created by EnsureIndexes once the client is connected.
func NewAnalyticEventRepository(db *mongo.Database) repository.AnalyticEventRepository {
	return &analyticEventRepository{
		coll: db.Collection(analyticEventsCollection),
	}
}

// Append stores an event.
func (r *analyticEventRepository) Append(ctx context.Context, event *entity.AnalyticEvent) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}

	if _, err := r.coll.InsertOne(ctx, fromAnalyticEventDomain(event)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert analytic event")
	}

	return nil
}

// CountByDay groups the events of the window by UTC day and event type.
func (r *analyticEventRepository) CountByDay(ctx context.Context, window repository.EventWindow) ([]entity.EventCount, error) {
	cursor, err := r.coll.Aggregate(ctx, countByDayPipeline(window))
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate analytic events")
	}
	defer cursor.Close(ctx)

	counts := make([]entity.EventCount, 0)
	for cursor.Next(ctx) {
		var bucket dayBucket
		if err := cursor.Decode(&bucket); err != nil {
			return nil, errors.Wrap(err, "failed to decode analytic event bucket")
		}
		counts = append(counts, entity.EventCount{
			Date:      bucket.ID.Date,
			EventType: entity.EventType(bucket.ID.EventType),
			Count:     bucket.Count,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate analytic event buckets")
	}

	return counts, nil
}

func countByDayPipeline(window repository.EventWindow) mongo.Pipeline {
	match := bson.D{{Key: "timestamp", Value: bson.D{{Key: "$gte", Value: window.Since}}}}
	if window.BusinessID != nil {
		match = append(match, bson.E{Key: "business_id", Value: window.BusinessID.String()})
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "date", Value: bson.D{{Key: "$dateToString", Value: bson.D{
					{Key: "format", Value: dayLayout},
					{Key: "date", Value: "$timestamp"},
					{Key: "timezone", Value: "UTC"},
				}}}},
				{Key: "event_type", Value: "$event_type"},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.date", Value: 1}, {Key: "_id.event_type", Value: 1}}}},
	}
}

// --- Mapper Functions ---

func fromAnalyticEventDomain(event *entity.AnalyticEvent) *analyticEventDocument {
	return &analyticEventDocument{
		ID:          event.ID.String(),
		EventType:   string(event.EventType),
		UserID:      uuidString(event.UserID),
		PromotionID: uuidString(event.PromotionID),
		BusinessID:  uuidString(event.BusinessID),
		SearchQuery: event.SearchQuery,
		Client:      event.Client,
		Timestamp:   event.Timestamp.UTC(),
	}
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}

	return id.String()
}
