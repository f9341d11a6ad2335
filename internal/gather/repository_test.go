package gather_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/gather"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/testutil"
	"gorm.io/gorm"
)

func seedGathering(t *testing.T, db *gorm.DB) (*model.GatherArticle, *model.Member, *model.Member) {
	t.Helper()
	ctx := context.Background()
	repository := gather.NewGatherArticleRepository()

	author := model.NewMember("author01", "hashed", "방장", "author@example.com", "010-1111-1111", "서울특별시", "강남구", "삼성동")
	outsider := model.NewMember("outsider01", "hashed", "구경꾼", "outsider@example.com", "010-2222-2222", "서울특별시", "강남구", "삼성동")
	require.NoError(t, db.Create(author).Error)
	require.NoError(t, db.Create(outsider).Error)

	now := time.Now()
	article := &model.GatherArticle{
		Title:               "보드게임 한 판",
		MaxParticipants:     5,
		CurrentParticipants: 3,
		StartDateTime:       now.Add(-3 * time.Hour),
		EndDateTime:         now.Add(-time.Hour),
		Status:              model.GatherArticleCompleted,
	}
	require.NoError(t, repository.Create(ctx, db, article))
	require.NoError(t, repository.CreateParticipation(ctx, db,
		model.NewMemberGatherArticle(author.ID, article.ID, model.RoleAuthor, now)))
	require.NoError(t, repository.CreateParticipation(ctx, db,
		model.NewMemberGatherArticle(outsider.ID, article.ID, model.RoleNone, now)))

	return article, author, outsider
}

func TestHasRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	article, author, outsider := seedGathering(t, db)
	repository := gather.NewGatherArticleRepository()

	ok, err := repository.HasRole(context.Background(), db, article.ID, author.Username)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repository.HasRole(context.Background(), db, article.ID, outsider.Username)
	require.NoError(t, err)
	assert.False(t, ok, "role NONE does not count as joined")

	ok, err = repository.HasRole(context.Background(), db, article.ID, "nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindParticipation_SaveRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	article, author, _ := seedGathering(t, db)
	repository := gather.NewGatherArticleRepository()
	ctx := context.Background()

	participation, err := repository.FindParticipation(ctx, db, article.ID, author.ID)
	require.NoError(t, err)
	assert.Zero(t, participation.ReceiveNoShowCount)

	participation.ReceiveNoShow(article.CurrentParticipants)
	require.NoError(t, repository.SaveParticipation(ctx, db, participation))

	reloaded, err := repository.FindParticipation(ctx, db, article.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, model.NoShowPenalized, reloaded.ReceiveNoShowCount)
}

func TestFindParticipation_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	article, _, _ := seedGathering(t, db)

	_, err := gather.NewGatherArticleRepository().FindParticipation(context.Background(), db, article.ID, 999)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)

	_, err := gather.NewGatherArticleRepository().FindByID(context.Background(), db, 42)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
