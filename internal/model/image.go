package model

// ProfileImage 프로필 이미지 파일 메타데이터
type ProfileImage struct {
	ID               uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	OriginalFilename string `gorm:"column:original_filename;type:VARCHAR2(255);not null"`
	SavedFilename    string `gorm:"column:saved_filename;type:VARCHAR2(255);not null"`
	URL              string `gorm:"column:url;type:VARCHAR2(1000);not null"`

	BaseEntity
}

func (*ProfileImage) TableName() string {
	return "profile_image"
}

func NewProfileImage(originalFilename, savedFilename, url string) *ProfileImage {
	return &ProfileImage{
		OriginalFilename: originalFilename,
		SavedFilename:    savedFilename,
		URL:              url,
	}
}

// BadgeImage 월간 뱃지 이미지 (Member 1 <-> N BadgeImage)
type BadgeImage struct {
	ID               uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	OriginalFilename string `gorm:"column:original_filename;type:VARCHAR2(255);not null"`
	URL              string `gorm:"column:url;type:VARCHAR2(1000);not null"`
	BadgeYearMonth   string `gorm:"column:badge_year_month;type:VARCHAR2(7);not null"` // 2024-07
	MemberID         uint32 `gorm:"column:member_id;not null;index:idx_badge_image_member"`

	member *Member

	BaseEntity
}

func (*BadgeImage) TableName() string {
	return "badge_image"
}

// NewBadgeImage creates a badge image already attached to its member.
func NewBadgeImage(originalFilename, url, badgeYearMonth string, member *Member) *BadgeImage {
	image := &BadgeImage{
		OriginalFilename: originalFilename,
		URL:              url,
		BadgeYearMonth:   badgeYearMonth,
	}
	image.AssignMember(member)
	return image
}

// AssignMember moves the badge to another member, keeping both members' collections in sync.
func (b *BadgeImage) AssignMember(member *Member) {
	if member == nil {
		if b.member != nil {
			b.member.RemoveBadgeImage(b)
		}
		return
	}
	member.AddBadgeImage(b)
}

func (b *BadgeImage) Member() *Member {
	return b.member
}
