package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
)

func TestNearPublicDistrict_AssignPublicDistrict(t *testing.T) {
	// Given
	samsung := model.NewPublicDistrict("서울특별시", "강남구", "삼성동", 127.05, 37.51)
	samsung.ID = 1
	yeoksam := model.NewPublicDistrict("서울특별시", "강남구", "역삼동", 127.03, 37.50)
	yeoksam.ID = 2

	near := model.NewNearPublicDistrict("서울특별시", "강남구", "대치동", 2, samsung)
	require.Len(t, samsung.NearPublicDistricts(), 1)
	assert.Equal(t, uint32(1), near.PublicDistrictID)

	// When
	near.AssignPublicDistrict(yeoksam)

	// Then
	assert.Empty(t, samsung.NearPublicDistricts())
	assert.Len(t, yeoksam.NearPublicDistricts(), 1)
	assert.Same(t, yeoksam, near.PublicDistrict())
	assert.Equal(t, uint32(2), near.PublicDistrictID)
}

func TestNearPublicDistrict_Detach(t *testing.T) {
	district := model.NewPublicDistrict("서울특별시", "강남구", "삼성동", 127.05, 37.51)
	near := model.NewNearPublicDistrict("서울특별시", "강남구", "대치동", 2, district)

	near.AssignPublicDistrict(nil)

	assert.Empty(t, district.NearPublicDistricts())
	assert.Nil(t, near.PublicDistrict())
}
