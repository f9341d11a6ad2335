package district

import (
	"context"
	"errors"
	"fmt"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

// NearDistrictService computes and reads the neighbours of a district per radius tier.
type NearDistrictService struct {
	repository *DistrictRepository
}

func NewNearDistrictService(repository *DistrictRepository) *NearDistrictService {
	return &NearDistrictService{repository: repository}
}

// SaveNearDistrictByRegisterLocation makes sure the neighbours of loc are persisted.
func (s *NearDistrictService) SaveNearDistrictByRegisterLocation(ctx context.Context, db *gorm.DB, loc Location) error {
	_, err := s.ensureNearDistricts(ctx, db, loc)
	return err
}

// SaveNearDistrictByUpdateLocation persists the neighbours of loc if needed and returns them by tier.
func (s *NearDistrictService) SaveNearDistrictByUpdateLocation(ctx context.Context, db *gorm.DB, loc Location) (map[int][]LocationInfo, error) {
	district, err := s.ensureNearDistricts(ctx, db, loc)
	if err != nil {
		return nil, err
	}
	return s.locationsByTier(ctx, db, district.ID)
}

// GetNearbyLocations returns, for each radius tier, every district within that tier.
// Tiers are cumulative: the 5km list contains the 2km list.
func (s *NearDistrictService) GetNearbyLocations(ctx context.Context, db *gorm.DB, loc Location) (map[int][]LocationInfo, error) {
	district, err := s.findDistrict(ctx, db, loc)
	if err != nil {
		return nil, err
	}
	return s.locationsByTier(ctx, db, district.ID)
}

func (s *NearDistrictService) findDistrict(ctx context.Context, db *gorm.DB, loc Location) (*model.PublicDistrict, error) {
	district, err := s.repository.FindByLocation(ctx, db, loc)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("행정 구역 없음 %s: %w", loc.String(), ErrPublicDistrictRetrieval)
		}
		return nil, fmt.Errorf("행정 구역 조회 실패 %s: %w: %w", loc.String(), ErrPublicDistrictRetrieval, err)
	}
	return district, nil
}

func (s *NearDistrictService) ensureNearDistricts(ctx context.Context, db *gorm.DB, loc Location) (*model.PublicDistrict, error) {
	district, err := s.findDistrict(ctx, db, loc)
	if err != nil {
		return nil, err
	}

	exists, err := s.repository.ExistsNear(ctx, db, district.ID)
	if err != nil {
		return nil, fmt.Errorf("주변 행정 구역 조회 실패: %w: %w", ErrPublicDistrictRetrieval, err)
	}
	if exists {
		return district, nil
	}

	if err := s.computeNearDistricts(ctx, db, district); err != nil {
		return nil, err
	}
	return district, nil
}

// computeNearDistricts stores each district within MaxRadius once, at the smallest tier containing it.
// The district itself is included at the smallest tier.
func (s *NearDistrictService) computeNearDistricts(ctx context.Context, db *gorm.DB, district *model.PublicDistrict) error {
	center := Coordinate{Longitude: district.Longitude, Latitude: district.Latitude}

	candidates, err := s.repository.FindWithinBounds(ctx, db, boundingBox(center, MaxRadius))
	if err != nil {
		return fmt.Errorf("주변 행정 구역 후보 조회 실패: %w: %w", ErrPublicDistrictRetrieval, err)
	}

	for _, c := range candidates {
		distance := distanceKm(center, Coordinate{Longitude: c.Longitude, Latitude: c.Latitude})
		tier := tierFor(distance)
		if tier == 0 {
			continue
		}
		model.NewNearPublicDistrict(c.Sido, c.Sgg, c.Emd, tier, district)
	}

	nears := district.NearPublicDistricts()
	if err := s.repository.SaveNearDistricts(ctx, db, nears); err != nil {
		return fmt.Errorf("주변 행정 구역 저장 실패: %w", err)
	}

	logger.FromContext(ctx).Info("주변 행정 구역 계산 완료",
		"district_id", district.ID,
		"candidates", len(candidates),
		"saved", len(nears))
	return nil
}

func (s *NearDistrictService) locationsByTier(ctx context.Context, db *gorm.DB, publicDistrictID uint32) (map[int][]LocationInfo, error) {
	nears, err := s.repository.FindNearDistricts(ctx, db, publicDistrictID)
	if err != nil {
		return nil, fmt.Errorf("주변 행정 구역 조회 실패: %w: %w", ErrPublicDistrictRetrieval, err)
	}

	result := make(map[int][]LocationInfo, len(RadiusTiers))
	for _, tier := range RadiusTiers {
		locations := make([]LocationInfo, 0)
		for _, n := range nears {
			if n.Radius <= tier {
				locations = append(locations, LocationInfo{Sido: n.Sido, Sgg: n.Sgg, Emd: n.Emd})
			}
		}
		result[tier] = locations
	}
	return result, nil
}
