package district

import (
	"context"
	"errors"
	"fmt"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/logger"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/metrics"
	"gorm.io/gorm"
)

type CoordinateCache interface {
	FindCoordinate(ctx context.Context, loc Location) (*Coordinate, error)
}

type CoordinateStore interface {
	FindCoordinate(ctx context.Context, db *gorm.DB, loc Location) (*Coordinate, error)
}

// Locator resolves district coordinates cache-first, falling back to the relational store.
type Locator struct {
	cache CoordinateCache
	store CoordinateStore
}

func NewLocator(cache CoordinateCache, store CoordinateStore) *Locator {
	return &Locator{cache: cache, store: store}
}

// ResolveCoordinates never fails because of the cache; only a store miss or store error is returned.
func (l *Locator) ResolveCoordinates(ctx context.Context, db *gorm.DB, loc Location) (*Coordinate, error) {
	log := logger.FromContext(ctx)

	coordinate, err := l.cache.FindCoordinate(ctx, loc)
	switch {
	case err == nil:
		metrics.DistrictCacheHitsTotal.Inc()
		return coordinate, nil
	case errors.Is(err, ErrCacheMiss):
		metrics.DistrictCacheMissesTotal.Inc()
		log.Debug("행정 구역 캐시 미스", "location", loc.String())
	default:
		metrics.DistrictCacheErrorsTotal.Inc()
		log.Error("행정 구역 캐시 조회 실패 - 데이터베이스로 대체", "location", loc.String(), "error", err)
	}

	coordinate, err = l.store.FindCoordinate(ctx, db, loc)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("행정 구역 없음 %s: %w", loc.String(), ErrPublicDistrictRetrieval)
		}
		return nil, fmt.Errorf("행정 구역 좌표 조회 실패 %s: %w: %w", loc.String(), ErrPublicDistrictRetrieval, err)
	}
	return coordinate, nil
}
