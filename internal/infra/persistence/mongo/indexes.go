package mongo

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// IndexParams defines the required parameters for EnsureIndexes.
type IndexParams struct {
	fx.In
	fx.Lifecycle

	DB     *mongo.Database
	Logger *slog.Logger
}

type indexCreator interface {
	CreateMany(ctx context.Context, models []mongo.IndexModel, opts ...*options.CreateIndexesOptions) ([]string, error)
}

// EnsureIndexes creates the analytic event indexes on start, after the ping
// registered by New. A failure is logged and does not stop the service.
func EnsureIndexes(params IndexParams) {
	registerIndexHook(params.Lifecycle, params.DB.Collection(analyticEventsCollection).Indexes(), params.Logger)
}

func registerIndexHook(lc fx.Lifecycle, indexes indexCreator, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, indexTimeout)
			defer cancel()

			names, err := indexes.CreateMany(ctx, analyticEventIndexes())
			if err != nil {
				logger.WarnContext(ctx, "Failed to create analytic event indexes", slog.Any("error", err))

				return nil
			}
			logger.InfoContext(ctx, "Analytic event indexes ready", slog.Any("indexes", names))

			return nil
		},
	})
}

// Dashboards window by timestamp, optionally per business, and split by type.
func analyticEventIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "business_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "event_type", Value: 1}}},
	}
}
