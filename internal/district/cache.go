package district

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
)

const cacheKeyPrefix = "publicDistrict"

// RedisCache holds district coordinates as redis hashes keyed by location.
// A nil client behaves as an always-empty cache.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func cacheKey(loc Location) string {
	return fmt.Sprintf("%s:%s:%s:%s", cacheKeyPrefix, loc.Sido, loc.Sgg, loc.Emd)
}

// FindCoordinate returns ErrCacheMiss when the key is absent.
func (c *RedisCache) FindCoordinate(ctx context.Context, loc Location) (*Coordinate, error) {
	if c == nil || c.client == nil {
		return nil, ErrCacheMiss
	}

	values, err := c.client.HMGet(ctx, cacheKey(loc), "longitude", "latitude").Result()
	if err != nil {
		return nil, fmt.Errorf("redis 조회 실패: %w", err)
	}
	if len(values) != 2 || values[0] == nil || values[1] == nil {
		return nil, ErrCacheMiss
	}

	longitude, err := parseFloat(values[0])
	if err != nil {
		return nil, fmt.Errorf("redis 경도 값 오류 %s: %w", cacheKey(loc), err)
	}
	latitude, err := parseFloat(values[1])
	if err != nil {
		return nil, fmt.Errorf("redis 위도 값 오류 %s: %w", cacheKey(loc), err)
	}
	return &Coordinate{Longitude: longitude, Latitude: latitude}, nil
}

// Warm loads every district into redis in a single pipeline and returns the number written.
func (c *RedisCache) Warm(ctx context.Context, districts []model.PublicDistrict) (int, error) {
	if c == nil || c.client == nil || len(districts) == 0 {
		return 0, nil
	}

	pipe := c.client.Pipeline()
	for _, d := range districts {
		loc := Location{Sido: d.Sido, Sgg: d.Sgg, Emd: d.Emd}
		pipe.HSet(ctx, cacheKey(loc),
			"sido", d.Sido,
			"sgg", d.Sgg,
			"emd", d.Emd,
			"longitude", strconv.FormatFloat(d.Longitude, 'f', -1, 64),
			"latitude", strconv.FormatFloat(d.Latitude, 'f', -1, 64),
		)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("redis 행정 구역 적재 실패: %w", err)
	}
	return len(districts), nil
}

func parseFloat(v interface{}) (float64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected type %T", v)
	}
	return strconv.ParseFloat(s, 64)
}
