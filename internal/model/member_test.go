package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
)

func TestNewMember_ZeroInitialized(t *testing.T) {
	member := model.NewMember("buddy01", "hashed", "보드버디", "buddy@example.com", "010-1234-5678", "서울특별시", "강남구", "삼성동")

	assert.Equal(t, model.DefaultRadius, member.Radius)
	assert.Equal(t, model.RoleUser, member.Role)
	assert.Zero(t, member.BuddyScore)
	assert.Zero(t, member.JoinCount)
	assert.Zero(t, member.MonthlySendReviewCount)
	assert.Nil(t, member.ProfileImage)
	assert.Empty(t, member.BadgeImages())
}

func TestApplyReview_CountersAndScore(t *testing.T) {
	testCases := []struct {
		name       string
		reviewType model.ReviewType
		monthly    func(m *model.Member) int
		total      func(m *model.Member) int
	}{
		{
			name:       "excellent",
			reviewType: model.ReviewExcellent,
			monthly:    func(m *model.Member) int { return m.MonthlyExcellentCount },
			total:      func(m *model.Member) int { return m.TotalExcellentCount },
		},
		{
			name:       "good",
			reviewType: model.ReviewGood,
			monthly:    func(m *model.Member) int { return m.MonthlyGoodCount },
			total:      func(m *model.Member) int { return m.TotalGoodCount },
		},
		{
			name:       "bad",
			reviewType: model.ReviewBad,
			monthly:    func(m *model.Member) int { return m.MonthlyBadCount },
			total:      func(m *model.Member) int { return m.TotalBadCount },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			member := &model.Member{BuddyScore: 10}

			// When
			member.ApplyReview(tc.reviewType)

			// Then
			assert.Equal(t, 1, tc.monthly(member))
			assert.Equal(t, 1, tc.total(member))
			assert.Equal(t, 10+tc.reviewType.Score(), member.BuddyScore)
			assert.Zero(t, member.MonthlyNoShowCount)
		})
	}
}

func TestApplyReview_NoShowKeepsTotal(t *testing.T) {
	member := &model.Member{TotalNoShowCount: 3}

	member.ApplyReview(model.ReviewNoShow)

	assert.Equal(t, 1, member.MonthlyNoShowCount)
	assert.Equal(t, 3, member.TotalNoShowCount)
	assert.Equal(t, model.ReviewNoShow.Score(), member.BuddyScore)
}

func TestApplyReview_ScoreIsUnbounded(t *testing.T) {
	member := &model.Member{}

	for i := 0; i < 10; i++ {
		member.ApplyReview(model.ReviewNoShow)
	}

	assert.Equal(t, 10*model.ReviewNoShow.Score(), member.BuddyScore)
	assert.Less(t, member.BuddyScore, 0.0)
}

func TestParseReviewType(t *testing.T) {
	reviewType, ok := model.ParseReviewType("GOOD")
	require.True(t, ok)
	assert.Equal(t, model.ReviewGood, reviewType)

	_, ok = model.ParseReviewType("AWESOME")
	assert.False(t, ok)
}

func TestAssignProfileImage(t *testing.T) {
	member := &model.Member{}
	image := &model.ProfileImage{ID: 7}

	member.AssignProfileImage(image)
	require.NotNil(t, member.ProfileImageID)
	assert.Equal(t, uint32(7), *member.ProfileImageID)

	member.AssignProfileImage(nil)
	assert.Nil(t, member.ProfileImageID)
	assert.Nil(t, member.ProfileImage)
}

func TestBadgeImage_ReassignKeepsCollectionsInSync(t *testing.T) {
	// Given
	first := &model.Member{ID: 1}
	second := &model.Member{ID: 2}
	badge := model.NewBadgeImage("badge.png", "/images/badge.png", "2024-07", first)
	require.Len(t, first.BadgeImages(), 1)

	// When
	badge.AssignMember(second)

	// Then
	assert.Empty(t, first.BadgeImages())
	assert.Len(t, second.BadgeImages(), 1)
	assert.Same(t, second, badge.Member())
	assert.Equal(t, uint32(2), badge.MemberID)

	// Adding twice does not duplicate
	second.AddBadgeImage(badge)
	assert.Len(t, second.BadgeImages(), 1)
}

func TestBadgeImages_ReturnsCopy(t *testing.T) {
	member := &model.Member{ID: 1}
	model.NewBadgeImage("badge.png", "/images/badge.png", "2024-07", member)

	images := member.BadgeImages()
	images[0] = nil

	assert.NotNil(t, member.BadgeImages()[0])
}
