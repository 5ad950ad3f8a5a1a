package main

import (
	"context"
	"log/slog"
	"os"

	"dealfinder/config"
	"dealfinder/internal/delivery"
	"dealfinder/internal/delivery/http"
	"dealfinder/internal/delivery/http/middleware"
	"dealfinder/internal/delivery/http/router/handler"
	"dealfinder/internal/domain/lifecycle"
	"dealfinder/internal/domain/service"
	"dealfinder/internal/infra/auth"
	logs "dealfinder/internal/infra/log"
	"dealfinder/internal/infra/persistence/mongo"
	"dealfinder/internal/infra/persistence/postgres"
	"dealfinder/internal/infra/qrcode"
	"dealfinder/internal/infra/storage"
	"dealfinder/internal/usecase"
	"dealfinder/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedAdminParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			postgres.Migrate,
			mongo.EnsureIndexes,
			seedAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		mongo.New,
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBusinessRepository,
			postgres.NewPromotionRepository,
			postgres.NewTransactionManager,
			mongo.NewAnalyticEventRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPromotionService,
			impl.NewBusinessService,
			impl.NewAdminService,
			impl.NewAnalyticsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPromotionHandler,
			handler.NewBusinessHandler,
			handler.NewAdminHandler,
			handler.NewMediaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedAdmin creates the configured administrator once the schema is in place.
func seedAdmin(params seedAdminParams) {
	if params.Config.Admin == nil || params.Config.Admin.Email == "" {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			created, err := params.AuthUC.SeedAdmin(ctx, &usecase.SeedAdminInput{
				Name:     params.Config.Admin.Name,
				Email:    params.Config.Admin.Email,
				Password: params.Config.Admin.Password,
			})
			if err != nil {
				return err
			}
			if created {
				params.Logger.InfoContext(ctx, "Administrator account created", slog.String("email", params.Config.Admin.Email))
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
