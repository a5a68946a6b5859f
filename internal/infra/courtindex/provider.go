package courtindex

import (
	"context"
	"log/slog"

	"courtcrowd/config"
	"courtcrowd/internal/domain/constants"
	"courtcrowd/internal/domain/lifecycle"
	"courtcrowd/internal/geo"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the court index, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New creates the court index selected by courtIndex.provider
func New(params Params) (geo.CourtIndex, error) {
	cfg := params.Config.CourtIndex

	switch cfg.Provider {
	case constants.CourtIndexProviderMemory, "":
		params.Logger.Info("Using in-memory grid court index",
			slog.Float64("cell_size_km", cfg.GridCellSizeKm),
		)

		return geo.NewGridIndex(cfg.GridCellSizeKm), nil

	case constants.CourtIndexProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis court index")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		params.Logger.Info("Using Redis GEO court index",
			slog.String("addr", cfg.Redis.Addr),
			slog.String("key", cfg.Redis.Key),
		)

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return NewRedisIndex(client, cfg.Redis.Key), nil

	default:
		return nil, errors.Errorf("unknown court index provider: %s", cfg.Provider)
	}
}
