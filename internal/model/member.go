package model

// Role 회원 권한
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// DefaultRadius 가입 시 기본 반경 (km)
const DefaultRadius = 2

// Member represents a user in the system
type Member struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	// Identity
	Username    string `gorm:"column:username;type:VARCHAR2(50);not null;uniqueIndex:idx_member_username"` // 아이디 (unique)
	Password    string `gorm:"column:password;type:VARCHAR2(60);not null"`                                 // 암호화된 비밀번호
	Nickname    string `gorm:"column:nickname;type:VARCHAR2(50);not null;uniqueIndex:idx_member_nickname"` // 닉네임 (unique)
	Email       string `gorm:"column:email;type:VARCHAR2(255);not null"`
	PhoneNumber string `gorm:"column:phone_number;type:VARCHAR2(100)"`
	Description *string `gorm:"column:description;type:VARCHAR2(500)"` // 자기소개

	// Location: 시도 / 시군구 / 읍면동
	Sido   string `gorm:"column:sido;type:VARCHAR2(50)"`
	Sgg    string `gorm:"column:sgg;type:VARCHAR2(50)"`
	Emd    string `gorm:"column:emd;type:VARCHAR2(50)"`
	Radius int    `gorm:"column:radius;not null"`

	// Reputation
	BuddyScore             float64 `gorm:"column:buddy_score;not null"`
	JoinCount              int     `gorm:"column:join_count;not null"`
	MonthlyExcellentCount  int     `gorm:"column:monthly_excellent_count;not null"`
	TotalExcellentCount    int     `gorm:"column:total_excellent_count;not null"`
	MonthlyGoodCount       int     `gorm:"column:monthly_good_count;not null"`
	TotalGoodCount         int     `gorm:"column:total_good_count;not null"`
	MonthlyBadCount        int     `gorm:"column:monthly_bad_count;not null"`
	TotalBadCount          int     `gorm:"column:total_bad_count;not null"`
	MonthlyNoShowCount     int     `gorm:"column:monthly_no_show_count;not null"`
	TotalNoShowCount       int     `gorm:"column:total_no_show_count;not null"`
	MonthlySendReviewCount int     `gorm:"column:monthly_send_review_count;not null"`

	Role Role `gorm:"column:role;type:VARCHAR2(20);not null"`

	ProfileImageID *uint32       `gorm:"column:profile_image_id"`
	ProfileImage   *ProfileImage `gorm:"foreignKey:ProfileImageID;constraint:OnDelete:SET NULL"`

	// 뱃지 이미지는 AddBadgeImage / RemoveBadgeImage 로만 변경
	badgeImages []*BadgeImage

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a member with every counter and the buddy score zeroed.
// Note: password should be hashed before storing (handled in service layer)
func NewMember(username, password, nickname, email, phoneNumber, sido, sgg, emd string) *Member {
	return &Member{
		Username:    username,
		Password:    password,
		Nickname:    nickname,
		Email:       email,
		PhoneNumber: phoneNumber,
		Sido:        sido,
		Sgg:         sgg,
		Emd:         emd,
		Radius:      DefaultRadius,
		Role:        RoleUser,
	}
}

// ApplyReview records a received review.
// NOSHOW only bumps the monthly figure; the total no-show count is left untouched.
func (m *Member) ApplyReview(reviewType ReviewType) {
	switch reviewType {
	case ReviewExcellent:
		m.MonthlyExcellentCount++
		m.TotalExcellentCount++
	case ReviewGood:
		m.MonthlyGoodCount++
		m.TotalGoodCount++
	case ReviewBad:
		m.MonthlyBadCount++
		m.TotalBadCount++
	case ReviewNoShow:
		m.MonthlyNoShowCount++
	}
	m.BuddyScore += reviewType.Score()
}

func (m *Member) IncrementSendReviewCount() {
	m.MonthlySendReviewCount++
}

// DecrementJoinCount 노쇼 패널티
func (m *Member) DecrementJoinCount() {
	m.JoinCount--
}

func (m *Member) AssignLocation(sido, sgg, emd string) {
	m.Sido = sido
	m.Sgg = sgg
	m.Emd = emd
}

func (m *Member) AssignRadius(radius int) {
	m.Radius = radius
}

func (m *Member) AssignNickname(nickname string) {
	m.Nickname = nickname
}

func (m *Member) AssignPassword(hashedPassword string) {
	m.Password = hashedPassword
}

func (m *Member) AssignPhoneNumber(phoneNumber string) {
	m.PhoneNumber = phoneNumber
}

func (m *Member) AssignDescription(description string) {
	m.Description = &description
}

// AssignProfileImage replaces the profile image; nil clears it.
func (m *Member) AssignProfileImage(image *ProfileImage) {
	m.ProfileImage = image
	if image == nil {
		m.ProfileImageID = nil
		return
	}
	id := image.ID
	m.ProfileImageID = &id
}

// BadgeImages returns a copy of the member's badge images.
func (m *Member) BadgeImages() []*BadgeImage {
	out := make([]*BadgeImage, len(m.badgeImages))
	copy(out, m.badgeImages)
	return out
}

// AddBadgeImage attaches the image to this member, detaching it from any previous owner.
func (m *Member) AddBadgeImage(image *BadgeImage) {
	if image == nil {
		return
	}
	if image.member != nil && image.member != m {
		image.member.RemoveBadgeImage(image)
	}
	image.member = m
	image.MemberID = m.ID
	if !m.hasBadgeImage(image) {
		m.badgeImages = append(m.badgeImages, image)
	}
}

func (m *Member) RemoveBadgeImage(image *BadgeImage) {
	for i, b := range m.badgeImages {
		if b == image {
			m.badgeImages = append(m.badgeImages[:i], m.badgeImages[i+1:]...)
			if image.member == m {
				image.member = nil
			}
			return
		}
	}
}

func (m *Member) hasBadgeImage(image *BadgeImage) bool {
	for _, b := range m.badgeImages {
		if b == image {
			return true
		}
	}
	return false
}
