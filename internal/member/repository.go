package member

import (
	"context"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (m *MemberRepository) exists(ctx context.Context, db *gorm.DB, query string, arg any) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where(query, arg).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *MemberRepository) ExistsByUsername(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	return m.exists(ctx, db, "username = ?", username)
}

func (m *MemberRepository) ExistsByNickname(ctx context.Context, db *gorm.DB, nickname string) (bool, error) {
	return m.exists(ctx, db, "nickname = ?", nickname)
}

func (m *MemberRepository) ExistsByID(ctx context.Context, db *gorm.DB, ID uint32) (bool, error) {
	return m.exists(ctx, db, "id = ?", ID)
}

func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

// Save writes every member column; associations are persisted by their own repositories.
func (m *MemberRepository) Save(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(member).Error
}

func (m *MemberRepository) Delete(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Delete(member).Error
}

func (m *MemberRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("username = ?", username).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByNickname(ctx context.Context, db *gorm.DB, nickname string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("nickname = ?", nickname).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", ID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// LockByIDs reloads the members with SELECT ... FOR UPDATE in id order, so concurrent
// transactions locking the same pair always acquire the rows in the same sequence.
func (m *MemberRepository) LockByIDs(ctx context.Context, db *gorm.DB, IDs ...uint32) (map[uint32]*model.Member, error) {
	var members []*model.Member
	err := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", IDs).
		Order("id").
		Find(&members).Error
	if err != nil {
		return nil, err
	}

	locked := make(map[uint32]*model.Member, len(members))
	for _, member := range members {
		locked[member.ID] = member
	}
	return locked, nil
}

// FindProfileByNickname loads the member with its profile image and badge images.
func (m *MemberRepository) FindProfileByNickname(ctx context.Context, db *gorm.DB, nickname string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).
		Preload("ProfileImage").
		Where("nickname = ?", nickname).
		First(&member).Error
	if err != nil {
		return nil, err
	}

	var badges []*model.BadgeImage
	err = db.WithContext(ctx).
		Where("member_id = ?", member.ID).
		Order("badge_year_month DESC, id").
		Find(&badges).Error
	if err != nil {
		return nil, err
	}
	for _, badge := range badges {
		member.AddBadgeImage(badge)
	}

	return &member, nil
}

func (m *MemberRepository) CreateProfileImage(ctx context.Context, db *gorm.DB, image *model.ProfileImage) error {
	return db.WithContext(ctx).Create(image).Error
}

func (m *MemberRepository) CreateBadgeImage(ctx context.Context, db *gorm.DB, image *model.BadgeImage) error {
	return db.WithContext(ctx).Create(image).Error
}
