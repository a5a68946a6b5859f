// Package courtindex provides the court proximity index selected by configuration.
package courtindex

import (
	"context"
	"encoding/json"
	"math"
	"sync/atomic"

	"courtcrowd/internal/domain/entity"
	"courtcrowd/internal/errors"
	"courtcrowd/internal/geo"

	"github.com/redis/go-redis/v9"
)

// RedisIndex implements geo.CourtIndex with Redis GEO commands.
// Positions live in a sorted set at key, court metadata in a hash at key+":meta".
type RedisIndex struct {
	client redis.UniversalClient
	key    string
	size   atomic.Int64
}

// NewRedisIndex creates an index over an existing client.
func NewRedisIndex(client redis.UniversalClient, key string) *RedisIndex {
	return &RedisIndex{client: client, key: key}
}

func (r *RedisIndex) metaKey() string {
	return r.key + ":meta"
}

// Rebuild writes the catalog into staging keys and swaps them in atomically.
func (r *RedisIndex) Rebuild(ctx context.Context, courts []*entity.Court) error {
	stagingKey := r.key + ":staging"
	stagingMeta := r.metaKey() + ":staging"

	locations := make([]*redis.GeoLocation, 0, len(courts))
	meta := make(map[string]any, len(courts))
	for _, court := range courts {
		locations = append(locations, &redis.GeoLocation{
			Name:      court.ID,
			Longitude: court.Longitude,
			Latitude:  court.Latitude,
		})

		raw, err := json.Marshal(court)
		if err != nil {
			return errors.Wrapf(err, "failed to encode court %s", court.ID)
		}
		meta[court.ID] = raw
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, stagingKey, stagingMeta)
		if len(locations) == 0 {
			pipe.Del(ctx, r.key, r.metaKey())

			return nil
		}
		pipe.GeoAdd(ctx, stagingKey, locations...)
		pipe.HSet(ctx, stagingMeta, meta)
		pipe.Rename(ctx, stagingKey, r.key)
		pipe.Rename(ctx, stagingMeta, r.metaKey())

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to rebuild redis court index")
	}

	r.size.Store(int64(len(courts)))

	return nil
}

// Within runs GEOSEARCH around the point and resolves court metadata.
func (r *RedisIndex) Within(ctx context.Context, lat, lng, radiusMeters float64) ([]geo.CourtDistance, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) || radiusMeters < 0 {
		return nil, nil
	}

	hits, err := r.client.GeoSearchLocation(ctx, r.key, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  lng,
			Latitude:   lat,
			Radius:     radiusMeters,
			RadiusUnit: "m",
			Sort:       "ASC",
		},
		WithDist: true,
	}).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to search redis court index")
	}
	if len(hits) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.Name)
	}

	raws, err := r.client.HMGet(ctx, r.metaKey(), ids...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load court metadata")
	}

	results := make([]geo.CourtDistance, 0, len(hits))
	for i, hit := range hits {
		court := &entity.Court{ID: hit.Name}
		if raw, ok := raws[i].(string); ok {
			if err := json.Unmarshal([]byte(raw), court); err != nil {
				return nil, errors.Wrapf(err, "failed to decode court %s", hit.Name)
			}
		}
		results = append(results, geo.CourtDistance{Court: court, DistanceMeters: hit.Dist})
	}

	return results, nil
}

// Size returns the number of courts written by the last Rebuild of this instance.
func (r *RedisIndex) Size() int {
	return int(r.size.Load())
}
