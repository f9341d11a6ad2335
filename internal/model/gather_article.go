package model

import "time"

type GatherArticleStatus string

const (
	GatherArticleRecruiting GatherArticleStatus = "RECRUITING"
	GatherArticleClosed     GatherArticleStatus = "CLOSED"
	GatherArticleCompleted  GatherArticleStatus = "COMPLETED"
)

// GatherArticle 모임 모집글
type GatherArticle struct {
	ID                  uint32              `gorm:"column:id;primaryKey;autoIncrement"`
	Title               string              `gorm:"column:title;type:VARCHAR2(100);not null"`
	Description         string              `gorm:"column:description;type:VARCHAR2(1000)"`
	MaxParticipants     int                 `gorm:"column:max_participants;not null"`
	CurrentParticipants int                 `gorm:"column:current_participants;not null"`
	StartDateTime       time.Time           `gorm:"column:start_date_time;not null"`
	EndDateTime         time.Time           `gorm:"column:end_date_time;not null"`
	Sido                string              `gorm:"column:sido;type:VARCHAR2(50)"`
	Sgg                 string              `gorm:"column:sgg;type:VARCHAR2(50)"`
	Emd                 string              `gorm:"column:emd;type:VARCHAR2(50)"`
	Status              GatherArticleStatus `gorm:"column:status;type:VARCHAR2(20);not null"`

	BaseEntity
}

func (*GatherArticle) TableName() string {
	return "gather_article"
}

func (g *GatherArticle) IsCompleted() bool {
	return g.Status == GatherArticleCompleted
}

type MemberGatherArticleRole string

const (
	RoleAuthor      MemberGatherArticleRole = "AUTHOR"
	RoleParticipant MemberGatherArticleRole = "PARTICIPANT"
	RoleNone        MemberGatherArticleRole = "NONE"
)

// NoShowPenalized 패널티가 이미 적용된 참가 기록의 노쇼 카운트
const NoShowPenalized = -1

// MemberGatherArticle 회원의 모임 참가 기록
type MemberGatherArticle struct {
	ID                 uint32                  `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID           uint32                  `gorm:"column:member_id;not null;uniqueIndex:idx_member_gather_article"`
	GatherArticleID    uint32                  `gorm:"column:gather_article_id;not null;uniqueIndex:idx_member_gather_article"`
	Role               MemberGatherArticleRole `gorm:"column:role;type:VARCHAR2(20);not null"`
	ReceiveNoShowCount int                     `gorm:"column:receive_no_show_count;not null"`
	JoinedAt           time.Time               `gorm:"column:joined_at;not null"`

	BaseEntity
}

func (*MemberGatherArticle) TableName() string {
	return "member_gather_article"
}

func NewMemberGatherArticle(memberID, gatherArticleID uint32, role MemberGatherArticleRole, joinedAt time.Time) *MemberGatherArticle {
	return &MemberGatherArticle{
		MemberID:        memberID,
		GatherArticleID: gatherArticleID,
		Role:            role,
		JoinedAt:        joinedAt,
	}
}

func (p *MemberGatherArticle) HasRole() bool {
	return p.Role == RoleAuthor || p.Role == RoleParticipant
}

// NoShowThreshold 본인을 제외한 참가자의 절반
func NoShowThreshold(currentParticipants int) int {
	return (currentParticipants - 1) / 2
}

// ReceiveNoShow counts one no-show report and reports whether the penalty threshold was reached.
// Once penalized the counter is parked at NoShowPenalized, so the next report on the same
// gathering starts from below zero.
func (p *MemberGatherArticle) ReceiveNoShow(currentParticipants int) bool {
	p.ReceiveNoShowCount++
	if p.ReceiveNoShowCount >= NoShowThreshold(currentParticipants) {
		p.ReceiveNoShowCount = NoShowPenalized
		return true
	}
	return false
}
