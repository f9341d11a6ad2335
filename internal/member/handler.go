package member

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	sharedContext "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/context"
	sharedError "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/error"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/handler"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/response"
)

const profileImageField = "profileImageFile"

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) VerifyUsernameDuplication(c *gin.Context) {
	var request VerifyUsernameDuplicationRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.memberService.VerifyUsernameDuplication(c.Request.Context(), &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil, "사용 가능한 아이디입니다.")
}

func (h *MemberHandler) VerifyNicknameDuplication(c *gin.Context) {
	var request VerifyNicknameDuplicationRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.memberService.VerifyNicknameDuplication(c.Request.Context(), &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil, "사용 가능한 닉네임입니다.")
}

func (h *MemberHandler) Register(c *gin.Context) {
	var request RegisterRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.memberService.Register(c.Request.Context(), &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, nil, "회원가입이 완료되었습니다.")
}

func (h *MemberHandler) Withdraw(c *gin.Context) {
	username, ok := sharedContext.RequireUsername(c)
	if !ok {
		return
	}

	if err := h.memberService.Withdraw(c.Request.Context(), username); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil, "회원 탈퇴가 완료되었습니다.")
}

func (h *MemberHandler) GetNeighbourhoods(c *gin.Context) {
	username, ok := sharedContext.RequireUsername(c)
	if !ok {
		return
	}

	result, err := h.memberService.GetNeighbourhoods(c.Request.Context(), username)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, "내 동네 조회에 성공했습니다.")
}

func (h *MemberHandler) UpdateNeighbourhood(c *gin.Context) {
	username, ok := sharedContext.RequireUsername(c)
	if !ok {
		return
	}

	var request LocationRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	locations, err := h.memberService.UpdateNeighbourhood(c.Request.Context(), username, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, NearLocationsResponse{Locations: locations}, "내 동네가 설정되었습니다.")
}

func (h *MemberHandler) UpdateRadius(c *gin.Context) {
	username, ok := sharedContext.RequireUsername(c)
	if !ok {
		return
	}

	var request RadiusRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.memberService.UpdateRadius(c.Request.Context(), username, &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil, "반경이 설정되었습니다.")
}

func (h *MemberHandler) SendReview(c *gin.Context) {
	username, ok := sharedContext.RequireUsername(c)
	if !ok {
		return
	}

	var uri GatherArticleURI
	if !handler.BindURI(c, &uri) {
		return
	}

	var request ReviewRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.memberService.SendReview(c.Request.Context(), uri.GatherArticleID, username, &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil, "리뷰를 보냈습니다.")
}

func (h *MemberHandler) GetProfile(c *gin.Context) {
	var uri NicknameURI
	if !handler.BindURI(c, &uri) {
		return
	}

	profile, err := h.memberService.GetProfileByNickname(c.Request.Context(), uri.Nickname)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile, "프로필 조회에 성공했습니다.")
}

// UpdateProfile accepts multipart/form-data; omitting the image file removes the current one.
func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	username, ok := sharedContext.RequireUsername(c)
	if !ok {
		return
	}

	var request UpdateProfileRequest
	if !handler.Bind(c, &request) {
		return
	}

	var upload *ProfileImageUpload
	file, err := c.FormFile(profileImageField)
	switch {
	case err == nil:
		upload = &ProfileImageUpload{File: file, ContentType: c.ContentType()}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		handler.RespondError(c, err, sharedError.InvalidRequest)
		return
	}

	if err := h.memberService.UpdateProfile(c.Request.Context(), username, &request, upload); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil, "프로필이 수정되었습니다.")
}
