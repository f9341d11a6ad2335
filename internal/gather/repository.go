package gather

import (
	"context"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GatherArticleRepository struct{}

func NewGatherArticleRepository() *GatherArticleRepository {
	return &GatherArticleRepository{}
}

func (r *GatherArticleRepository) Create(ctx context.Context, db *gorm.DB, article *model.GatherArticle) error {
	return db.WithContext(ctx).Create(article).Error
}

func (r *GatherArticleRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.GatherArticle, error) {
	var article model.GatherArticle
	err := db.WithContext(ctx).Where("id = ?", ID).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// HasRole reports whether the member is the author or a participant of the gathering.
func (r *GatherArticleRepository) HasRole(ctx context.Context, db *gorm.DB, gatherArticleID uint32, username string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.MemberGatherArticle{}).
		Joins("JOIN member ON member.id = member_gather_article.member_id").
		Where("member_gather_article.gather_article_id = ?", gatherArticleID).
		Where("member.username = ?", username).
		Where("member_gather_article.role IN ?", []model.MemberGatherArticleRole{model.RoleAuthor, model.RoleParticipant}).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// FindParticipation locks the participation row for the rest of the transaction.
func (r *GatherArticleRepository) FindParticipation(ctx context.Context, db *gorm.DB, gatherArticleID, memberID uint32) (*model.MemberGatherArticle, error) {
	var participation model.MemberGatherArticle
	err := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("gather_article_id = ? AND member_id = ?", gatherArticleID, memberID).
		First(&participation).Error
	if err != nil {
		return nil, err
	}
	return &participation, nil
}

func (r *GatherArticleRepository) CreateParticipation(ctx context.Context, db *gorm.DB, participation *model.MemberGatherArticle) error {
	return db.WithContext(ctx).Create(participation).Error
}

func (r *GatherArticleRepository) SaveParticipation(ctx context.Context, db *gorm.DB, participation *model.MemberGatherArticle) error {
	return db.WithContext(ctx).Save(participation).Error
}
