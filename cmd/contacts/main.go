package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"contacts/config"
	"contacts/internal/delivery"
	"contacts/internal/delivery/api"
	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/router/handler"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	"contacts/internal/infra/auth"
	"contacts/internal/infra/cache"
	logs "contacts/internal/infra/log"
	"contacts/internal/infra/metrics"
	"contacts/internal/infra/persistence/migrations"
	"contacts/internal/infra/persistence/postgres"
	"contacts/internal/infra/pubsub"
	"contacts/internal/infra/qrcode"
	"contacts/internal/infra/report"
	"contacts/internal/usecase"
	"contacts/internal/usecase/impl"
	"contacts/internal/validation"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// sessionPurgeInterval is how often expired refresh tokens are removed.
const sessionPurgeInterval = time.Hour

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
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
			runMigrations,
			seedRoles,
			purgeExpiredSessions,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			validation.New,
		),
		metrics.Module,
		cache.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPersonRepository,
			postgres.NewCountryRepository,
			postgres.NewUserRepository,
			postgres.NewRoleRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
			report.NewCSVWriter,
			report.NewExcelWriter,
			report.NewExcelReader,
			report.NewPDFWriter,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPersonsAdderService,
			impl.NewPersonsGetterService,
			impl.NewPersonsUpdaterService,
			impl.NewPersonsDeleterService,
			impl.NewPersonsSorterService,
			impl.NewCountriesService,
			impl.NewAccountService,
			impl.NewRoleSeeder,
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
			handler.NewPersonsHandler,
			handler.NewReportsHandler,
			handler.NewCountriesHandler,
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// runMigrations applies the embedded schema on start when auto-migrate is enabled.
func runMigrations(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, logger *slog.Logger) {
	if cfg.Migrations == nil || !cfg.Migrations.AutoMigrate {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return errors.Wrap(err, "failed to get sql.DB for migrations")
			}

			migrator, err := migrations.New(ctx, sqlDB, logger)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := migrator.Close(); closeErr != nil {
					logger.Warn("Failed to close migrator", slog.Any("error", closeErr))
				}
			}()

			if err := migrator.Up(); err != nil {
				return err
			}
			logger.Info("Database migrations applied")

			return nil
		},
	})
}

func seedRoles(lc fx.Lifecycle, seeder usecase.RoleSeeder) {
	lc.Append(fx.Hook{
		OnStart: seeder.Seed,
	})
}

// purgeExpiredSessions removes expired refresh tokens in the background.
func purgeExpiredSessions(lc fx.Lifecycle, account usecase.AccountUsecase, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(sessionPurgeInterval)
				defer ticker.Stop()

				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						removed, err := account.PurgeExpiredSessions(ctx)
						if err != nil {
							logger.Warn("Failed to purge expired sessions", slog.Any("error", err))

							continue
						}
						if removed > 0 {
							logger.Info("Purged expired sessions", slog.Int64("removed", removed))
						}
					}
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
