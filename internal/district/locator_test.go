package district_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/district"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/testutil"
	"gorm.io/gorm"
)

type fakeCache struct {
	coordinates map[district.Location]district.Coordinate
	err         error
	calls       int
}

func (f *fakeCache) FindCoordinate(_ context.Context, loc district.Location) (*district.Coordinate, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.coordinates[loc]
	if !ok {
		return nil, district.ErrCacheMiss
	}
	return &c, nil
}

type fakeStore struct {
	coordinates map[district.Location]district.Coordinate
	err         error
	calls       []district.Location
}

func (f *fakeStore) FindCoordinate(_ context.Context, _ *gorm.DB, loc district.Location) (*district.Coordinate, error) {
	f.calls = append(f.calls, loc)
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.coordinates[loc]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

var samsung = district.Location{Sido: "서울특별시", Sgg: "강남구", Emd: "삼성동"}

func TestResolveCoordinates_CacheHit_NeverQueriesStore(t *testing.T) {
	// Given: cache and store hold different values for the same key
	cache := &fakeCache{coordinates: map[district.Location]district.Coordinate{
		samsung: {Longitude: 127.0565, Latitude: 37.5145},
	}}
	store := &fakeStore{coordinates: map[district.Location]district.Coordinate{
		samsung: {Longitude: 1, Latitude: 1},
	}}
	locator := district.NewLocator(cache, store)

	// When
	coordinate, err := locator.ResolveCoordinates(context.Background(), nil, samsung)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 127.0565, coordinate.Longitude)
	assert.Equal(t, 37.5145, coordinate.Latitude)
	assert.Equal(t, 1, cache.calls)
	assert.Empty(t, store.calls, "store must not be queried on a cache hit")
}

func TestResolveCoordinates_CacheMiss_FallsBackToStore(t *testing.T) {
	// Given: empty cache
	cache := &fakeCache{}
	store := &fakeStore{coordinates: map[district.Location]district.Coordinate{
		samsung: {Longitude: 127.0565, Latitude: 37.5145},
	}}
	locator := district.NewLocator(cache, store)

	// When
	coordinate, err := locator.ResolveCoordinates(context.Background(), nil, samsung)

	// Then: identical key, identical value
	require.NoError(t, err)
	assert.Equal(t, district.Coordinate{Longitude: 127.0565, Latitude: 37.5145}, *coordinate)
	assert.Equal(t, []district.Location{samsung}, store.calls)
}

func TestResolveCoordinates_CacheUnavailable_FallsBackToStore(t *testing.T) {
	// Given: cache returns a transport error
	cache := &fakeCache{err: errors.New("dial tcp: connection refused")}
	store := &fakeStore{coordinates: map[district.Location]district.Coordinate{
		samsung: {Longitude: 127.0565, Latitude: 37.5145},
	}}
	locator := district.NewLocator(cache, store)

	// When
	coordinate, err := locator.ResolveCoordinates(context.Background(), nil, samsung)

	// Then: the cache failure is not propagated
	require.NoError(t, err)
	assert.Equal(t, 37.5145, coordinate.Latitude)
	assert.Len(t, store.calls, 1)
}

func TestResolveCoordinates_NotFoundAnywhere(t *testing.T) {
	locator := district.NewLocator(&fakeCache{}, &fakeStore{})

	coordinate, err := locator.ResolveCoordinates(context.Background(), nil, samsung)

	assert.Nil(t, coordinate)
	assert.ErrorIs(t, err, district.ErrPublicDistrictRetrieval)
}

func TestResolveCoordinates_StoreFailure(t *testing.T) {
	storeErr := errors.New("ORA-03113: end-of-file on communication channel")
	locator := district.NewLocator(&fakeCache{}, &fakeStore{err: storeErr})

	_, err := locator.ResolveCoordinates(context.Background(), nil, samsung)

	assert.ErrorIs(t, err, district.ErrPublicDistrictRetrieval)
	assert.ErrorIs(t, err, storeErr)
}

func TestResolveCoordinates_RedisDown_UsesDatabase(t *testing.T) {
	// Given: a warmed redis that then goes away, and a database holding the district
	db := testutil.SetupTestDB(t)
	repository := district.NewDistrictRepository()
	require.NoError(t, repository.Create(context.Background(), db,
		model.NewPublicDistrict(samsung.Sido, samsung.Sgg, samsung.Emd, 127.0565, 37.5145)))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	locator := district.NewLocator(district.NewRedisCache(client), repository)

	// When
	coordinate, err := locator.ResolveCoordinates(context.Background(), db, samsung)

	// Then
	require.NoError(t, err)
	assert.Equal(t, district.Coordinate{Longitude: 127.0565, Latitude: 37.5145}, *coordinate)
}
