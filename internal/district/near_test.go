package district_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/district"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/testutil"
	"gorm.io/gorm"
)

// seedDistricts places districts due north of 삼성동 at roughly 1, 4, 6.5, 9 and 15 km.
func seedDistricts(t *testing.T, db *gorm.DB) {
	t.Helper()

	const lon, lat = 127.0565, 37.5145
	districts := []*model.PublicDistrict{
		model.NewPublicDistrict("서울특별시", "강남구", "삼성동", lon, lat),
		model.NewPublicDistrict("서울특별시", "강남구", "청담동", lon, lat+0.009),
		model.NewPublicDistrict("서울특별시", "성동구", "성수동", lon, lat+0.036),
		model.NewPublicDistrict("서울특별시", "동대문구", "회기동", lon, lat+0.0585),
		model.NewPublicDistrict("서울특별시", "노원구", "공릉동", lon, lat+0.081),
		model.NewPublicDistrict("경기도", "의정부시", "호원동", lon, lat+0.135),
	}
	repository := district.NewDistrictRepository()
	for _, d := range districts {
		require.NoError(t, repository.Create(context.Background(), db, d))
	}
}

func emds(locations []district.LocationInfo) []string {
	out := make([]string, 0, len(locations))
	for _, l := range locations {
		out = append(out, l.Emd)
	}
	return out
}

func TestSaveNearDistrictByRegisterLocation_StoresSmallestTier(t *testing.T) {
	// Given
	db := testutil.SetupTestDB(t)
	seedDistricts(t, db)
	service := district.NewNearDistrictService(district.NewDistrictRepository())

	// When
	err := service.SaveNearDistrictByRegisterLocation(context.Background(), db, samsung)

	// Then: five districts within 10km, each stored once
	require.NoError(t, err)

	var nears []model.NearPublicDistrict
	require.NoError(t, db.Order("radius, id").Find(&nears).Error)
	require.Len(t, nears, 5)

	radiusByEmd := map[string]int{}
	for _, n := range nears {
		radiusByEmd[n.Emd] = n.Radius
	}
	assert.Equal(t, map[string]int{
		"삼성동": 2,
		"청담동": 2,
		"성수동": 5,
		"회기동": 7,
		"공릉동": 10,
	}, radiusByEmd)
}

func TestSaveNearDistrictByRegisterLocation_SkipsWhenAlreadyComputed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedDistricts(t, db)
	service := district.NewNearDistrictService(district.NewDistrictRepository())

	require.NoError(t, service.SaveNearDistrictByRegisterLocation(context.Background(), db, samsung))
	require.NoError(t, service.SaveNearDistrictByRegisterLocation(context.Background(), db, samsung))

	var count int64
	require.NoError(t, db.Model(&model.NearPublicDistrict{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)
}

func TestSaveNearDistrictByUpdateLocation_ReturnsCumulativeTiers(t *testing.T) {
	// Given
	db := testutil.SetupTestDB(t)
	seedDistricts(t, db)
	service := district.NewNearDistrictService(district.NewDistrictRepository())

	// When
	byTier, err := service.SaveNearDistrictByUpdateLocation(context.Background(), db, samsung)

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"삼성동", "청담동"}, emds(byTier[2]))
	assert.Equal(t, []string{"삼성동", "청담동", "성수동"}, emds(byTier[5]))
	assert.Equal(t, []string{"삼성동", "청담동", "성수동", "회기동"}, emds(byTier[7]))
	assert.Equal(t, []string{"삼성동", "청담동", "성수동", "회기동", "공릉동"}, emds(byTier[10]))
}

func TestGetNearbyLocations_BeforeComputation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedDistricts(t, db)
	service := district.NewNearDistrictService(district.NewDistrictRepository())

	byTier, err := service.GetNearbyLocations(context.Background(), db, samsung)

	require.NoError(t, err)
	for _, tier := range district.RadiusTiers {
		assert.Empty(t, byTier[tier])
	}
}

func TestNearDistrict_UnknownLocation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedDistricts(t, db)
	service := district.NewNearDistrictService(district.NewDistrictRepository())
	unknown := district.Location{Sido: "제주특별자치도", Sgg: "제주시", Emd: "없는동"}

	err := service.SaveNearDistrictByRegisterLocation(context.Background(), db, unknown)
	assert.ErrorIs(t, err, district.ErrPublicDistrictRetrieval)

	_, err = service.GetNearbyLocations(context.Background(), db, unknown)
	assert.ErrorIs(t, err, district.ErrPublicDistrictRetrieval)
}

func TestRepository_FindCoordinate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedDistricts(t, db)
	repository := district.NewDistrictRepository()

	coordinate, err := repository.FindCoordinate(context.Background(), db, samsung)
	require.NoError(t, err)
	assert.Equal(t, district.Coordinate{Longitude: 127.0565, Latitude: 37.5145}, *coordinate)

	_, err = repository.FindCoordinate(context.Background(), db,
		district.Location{Sido: "서울특별시", Sgg: "강남구", Emd: "없는동"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestIsRadiusTier(t *testing.T) {
	for _, r := range []int{2, 5, 7, 10} {
		assert.True(t, district.IsRadiusTier(r))
	}
	for _, r := range []int{0, 1, 3, 11} {
		assert.False(t, district.IsRadiusTier(r))
	}
}
