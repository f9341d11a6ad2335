package district

import (
	"context"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
	"gorm.io/gorm"
)

// DistrictRepository is the relational district store.
type DistrictRepository struct{}

func NewDistrictRepository() *DistrictRepository {
	return &DistrictRepository{}
}

func whereLocation(db *gorm.DB, loc Location) *gorm.DB {
	return db.Where("sido = ? AND sgg = ? AND emd = ?", loc.Sido, loc.Sgg, loc.Emd)
}

func (r *DistrictRepository) Create(ctx context.Context, db *gorm.DB, district *model.PublicDistrict) error {
	return db.WithContext(ctx).Create(district).Error
}

// FindCoordinate returns gorm.ErrRecordNotFound when the location is unknown.
func (r *DistrictRepository) FindCoordinate(ctx context.Context, db *gorm.DB, loc Location) (*Coordinate, error) {
	var coordinate Coordinate
	err := whereLocation(db.WithContext(ctx).Model(&model.PublicDistrict{}), loc).
		Select("longitude", "latitude").
		Take(&coordinate).Error
	if err != nil {
		return nil, err
	}
	return &coordinate, nil
}

func (r *DistrictRepository) FindByLocation(ctx context.Context, db *gorm.DB, loc Location) (*model.PublicDistrict, error) {
	var district model.PublicDistrict
	err := whereLocation(db.WithContext(ctx), loc).Take(&district).Error
	if err != nil {
		return nil, err
	}
	return &district, nil
}

func (r *DistrictRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.PublicDistrict, error) {
	var districts []model.PublicDistrict
	err := db.WithContext(ctx).Order("id").Find(&districts).Error
	return districts, err
}

func (r *DistrictRepository) FindWithinBounds(ctx context.Context, db *gorm.DB, b bounds) ([]model.PublicDistrict, error) {
	var districts []model.PublicDistrict
	err := db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", b.MinLatitude, b.MaxLatitude).
		Where("longitude BETWEEN ? AND ?", b.MinLongitude, b.MaxLongitude).
		Order("id").
		Find(&districts).Error
	return districts, err
}

func (r *DistrictRepository) ExistsNear(ctx context.Context, db *gorm.DB, publicDistrictID uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.NearPublicDistrict{}).
		Where("public_district_id = ?", publicDistrictID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DistrictRepository) SaveNearDistricts(ctx context.Context, db *gorm.DB, nears []*model.NearPublicDistrict) error {
	if len(nears) == 0 {
		return nil
	}
	return db.WithContext(ctx).CreateInBatches(nears, 100).Error
}

func (r *DistrictRepository) FindNearDistricts(ctx context.Context, db *gorm.DB, publicDistrictID uint32) ([]model.NearPublicDistrict, error) {
	var nears []model.NearPublicDistrict
	err := db.WithContext(ctx).
		Where("public_district_id = ?", publicDistrictID).
		Order("radius, id").
		Find(&nears).Error
	return nears, err
}
