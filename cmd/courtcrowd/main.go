package main

import (
	"context"
	"log/slog"
	"os"

	"courtcrowd/config"
	"courtcrowd/internal/delivery"
	"courtcrowd/internal/delivery/api"
	"courtcrowd/internal/delivery/api/middleware"
	"courtcrowd/internal/delivery/api/router/handler"
	"courtcrowd/internal/domain/service"
	"courtcrowd/internal/infra/auth"
	"courtcrowd/internal/infra/courtindex"
	"courtcrowd/internal/infra/device"
	logs "courtcrowd/internal/infra/log"
	"courtcrowd/internal/infra/persistence/postgres"
	"courtcrowd/internal/infra/pubsub"
	"courtcrowd/internal/infra/radar"
	"courtcrowd/internal/usecase/impl"

	"go.uber.org/fx"
)

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
		courtindex.New,
		device.NewHub,
		// The device hub is the server-side view of each user's OS location services
		func(hub *device.Hub) service.DeviceHost {
			return hub
		},
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewCourtRepository,
			postgres.NewPresenceRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			radar.Probe,
			radar.WebhooksFor,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPresenceService,
			impl.NewLocationProvider,
			impl.NewGeofencingManager,
			impl.NewDeviceService,
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
			handler.NewGeofencingHandler,
			handler.NewLocationHandler,
			handler.NewStreamHandler,
			handler.NewCourtHandler,
			handler.NewDeviceHandler,
			handler.NewWebhookHandler,
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
