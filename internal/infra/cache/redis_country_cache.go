package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"contacts/config"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const countriesKey = "contacts:countries:all"

type redisCountryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCountryCache stores the whole country list under a single key.
func NewRedisCountryCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.CountryCache {
	return &redisCountryCache{client: client, ttl: ttl, logger: logger}
}

type cachedCountry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *redisCountryCache) Get(ctx context.Context) ([]*entity.Country, bool, error) {
	raw, err := c.client.Get(ctx, countriesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get countries")
	}

	var items []cachedCountry
	if err := json.Unmarshal(raw, &items); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		c.logger.Warn("Discarding unreadable country cache entry", slog.Any("error", err))
		_ = c.client.Del(ctx, countriesKey).Err()

		return nil, false, nil
	}

	countries := make([]*entity.Country, 0, len(items))
	for _, item := range items {
		id, err := uuid.Parse(item.ID)
		if err != nil {
			return nil, false, nil
		}
		countries = append(countries, &entity.Country{ID: id, Name: item.Name})
	}

	return countries, true, nil
}

func (c *redisCountryCache) Set(ctx context.Context, countries []*entity.Country) error {
	items := make([]cachedCountry, 0, len(countries))
	for _, country := range countries {
		items = append(items, cachedCountry{ID: country.ID.String(), Name: country.Name})
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.client.Set(ctx, countriesKey, raw, c.ttl).Err(), "redis set countries")
}

func (c *redisCountryCache) Invalidate(ctx context.Context) error {
	return errors.Wrap(c.client.Del(ctx, countriesKey).Err(), "redis delete countries")
}

// noopCountryCache always misses.
type noopCountryCache struct{}

func (noopCountryCache) Get(context.Context) ([]*entity.Country, bool, error) { return nil, false, nil }
func (noopCountryCache) Set(context.Context, []*entity.Country) error        { return nil }
func (noopCountryCache) Invalidate(context.Context) error                     { return nil }

// CacheParams holds dependencies for the country cache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCountryCache connects to Redis when an address is configured and
// falls back to a cache that always misses otherwise.
func NewCountryCache(params CacheParams) (service.CountryCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, country cache disabled")

		return noopCountryCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "redis ping failed")
			}
			params.Logger.Info("Redis country cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisCountryCache(client, cfg.TTL, params.Logger), nil
}

// Module provides the country cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCountryCache),
)
