package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
)

func TestNoShowThreshold(t *testing.T) {
	assert.Equal(t, 2, model.NoShowThreshold(5))
	assert.Equal(t, 2, model.NoShowThreshold(6))
	assert.Equal(t, 1, model.NoShowThreshold(3))
	assert.Equal(t, 0, model.NoShowThreshold(2))
}

func TestReceiveNoShow_PenaltyOnceThenParked(t *testing.T) {
	// Given: 5명이 참가한 모임, threshold = 2
	participation := model.NewMemberGatherArticle(1, 1, model.RoleParticipant, time.Now())

	// When / Then: 0 -> 1, below threshold
	assert.False(t, participation.ReceiveNoShow(5))
	assert.Equal(t, 1, participation.ReceiveNoShowCount)

	// 1 -> 2 reaches threshold, reset to sentinel
	assert.True(t, participation.ReceiveNoShow(5))
	assert.Equal(t, model.NoShowPenalized, participation.ReceiveNoShowCount)

	// -1 -> 0, no second penalty
	assert.False(t, participation.ReceiveNoShow(5))
	assert.Equal(t, 0, participation.ReceiveNoShowCount)
}

func TestMemberGatherArticle_HasRole(t *testing.T) {
	assert.True(t, (&model.MemberGatherArticle{Role: model.RoleAuthor}).HasRole())
	assert.True(t, (&model.MemberGatherArticle{Role: model.RoleParticipant}).HasRole())
	assert.False(t, (&model.MemberGatherArticle{Role: model.RoleNone}).HasRole())
}
