package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/metrics"
	"storefront/internal/infra/notification"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/scheduler"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
			restoreReminders,
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
		),
		metrics.Module,
		scheduler.Module,
		storage.Module,
		pubsub.Module,
		notification.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewReminderService,
			impl.NewNotificationDispatcher,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			newIdentityMiddleware,
			newMetricsMiddleware,
		),
	)
}

// newIdentityMiddleware marks the session cookie Secure when the store is served over https.
func newIdentityMiddleware(cfg *config.Config) *middleware.IdentityMiddleware {
	secure := cfg.Checkout != nil && strings.HasPrefix(cfg.Checkout.BaseURL, "https://")

	return middleware.NewIdentityMiddleware(secure)
}

func newMetricsMiddleware(recorder *metrics.Recorder) *middleware.MetricsMiddleware {
	return middleware.NewMetricsMiddleware(recorder)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewAdminHandler,
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

// restoreReminders re-arms reminders of unconfirmed orders once the scheduler has started.
func restoreReminders(lc fx.Lifecycle, cfg *config.Config, reminders usecase.ReminderUsecase, logger *slog.Logger) {
	if cfg.Reminder == nil || !cfg.Reminder.RestoreOnStart {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			restored, err := reminders.RestorePendingReminders(ctx)
			if err != nil {
				return err
			}
			logger.Info("Restored pending order reminders", slog.Int("count", restored))

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
