package postgres

import (
	"context"
	"log/slog"

	"dealfinder/config"
	"dealfinder/internal/domain/lifecycle"
	"dealfinder/internal/errors"
	"dealfinder/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var schemaStatements = []string{
	"CREATE INDEX IF NOT EXISTS idx_promotions_search ON promotions USING GIN (" + searchVectorExpr + ")",
	"CREATE INDEX IF NOT EXISTS idx_promotions_live ON promotions (end_date) WHERE is_active",
}

// MigrateParams defines the required parameters for Migrate.
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	DB     *gorm.DB
	Logger *slog.Logger
}

// Migrate registers a start hook that brings the relational schema up to date.
// It runs after the connection hook registered by New has pinged the database.
// Deployments that migrate out of band set database.skipMigrations.
func Migrate(params MigrateParams) {
	if params.Config != nil && params.Config.Database != nil && params.Config.Database.SkipMigrations {
		params.Logger.Info("Postgres migrations skipped")

		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := MigrateSchema(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.InfoContext(ctx, "Postgres schema migrated")

			return nil
		},
	})
}

// MigrateSchema creates or alters the users, businesses and promotions tables and their indexes.
func MigrateSchema(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.AutoMigrate(
		&model.UserModel{},
		&model.BusinessModel{},
		&model.PromotionModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	for _, stmt := range schemaStatements {
		if err := tx.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to execute schema statement %q", stmt)
		}
	}

	return nil
}
