package member

import (
	"mime/multipart"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/district"
)

type VerifyUsernameDuplicationRequest struct {
	Username string `json:"username" binding:"required,username"`
}

type VerifyNicknameDuplicationRequest struct {
	Nickname string `json:"nickname" binding:"required,min=2,max=20"`
}

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,username"`
	Password    string `json:"password" binding:"required,password"`
	Nickname    string `json:"nickname" binding:"required,min=2,max=20"`
	Email       string `json:"email" binding:"required,email,max=255"`
	PhoneNumber string `json:"phoneNumber" binding:"required,phone"`
	Sido        string `json:"sido" binding:"required,max=50"`
	Sgg         string `json:"sgg" binding:"required,max=50"`
	Emd         string `json:"emd" binding:"required,max=50"`
}

type LocationRequest struct {
	Sido string `json:"sido" binding:"required,max=50"`
	Sgg  string `json:"sgg" binding:"required,max=50"`
	Emd  string `json:"emd" binding:"required,max=50"`
}

func (r LocationRequest) Location() district.Location {
	return district.Location{Sido: r.Sido, Sgg: r.Sgg, Emd: r.Emd}
}

type RadiusRequest struct {
	Radius int `json:"radius" binding:"required,oneof=2 5 7 10"`
}

type ReviewRequest struct {
	Nickname string `json:"nickname" binding:"required"`
	Review   string `json:"review" binding:"required,oneof=EXCELLENT GOOD BAD NOSHOW"`
}

type GatherArticleURI struct {
	GatherArticleID uint32 `uri:"gatherArticleId" binding:"required,min=1"`
}

type NicknameURI struct {
	Nickname string `uri:"nickname" binding:"required"`
}

// UpdateProfileRequest: 비어 있는 항목은 변경하지 않는다.
type UpdateProfileRequest struct {
	Nickname    string `form:"nickname" binding:"omitempty,min=2,max=20"`
	Password    string `form:"password" binding:"omitempty,password"`
	PhoneNumber string `form:"phoneNumber" binding:"omitempty,phone"`
	Description string `form:"description" binding:"omitempty,max=500"`
}

// ProfileImageUpload carries the uploaded file with the Content-Type of the request that sent it.
type ProfileImageUpload struct {
	File        *multipart.FileHeader
	ContentType string
}

type MyLocationsResponse struct {
	Locations map[int][]district.LocationInfo `json:"locations"`
	Longitude float64                         `json:"longitude"`
	Latitude  float64                         `json:"latitude"`
	Radius    int                             `json:"radius"`
}

type NearLocationsResponse struct {
	Locations map[int][]district.LocationInfo `json:"locations"`
}

type BadgeImageResponse struct {
	BadgeImageURL  string `json:"badgeImageUrl"`
	BadgeYearMonth string `json:"badgeYearMonth"`
}

type ProfileResponse struct {
	Nickname            string               `json:"nickname"`
	Description         *string              `json:"description"`
	ProfileImageURL     *string              `json:"profileImageUrl"`
	Sido                string               `json:"sido"`
	Sgg                 string               `json:"sgg"`
	Emd                 string               `json:"emd"`
	BuddyScore          float64              `json:"buddyScore"`
	JoinCount           int                  `json:"joinCount"`
	TotalExcellentCount int                  `json:"totalExcellentCount"`
	TotalGoodCount      int                  `json:"totalGoodCount"`
	TotalBadCount       int                  `json:"totalBadCount"`
	Badges              []BadgeImageResponse `json:"badges"`
}
