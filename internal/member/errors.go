package member

import (
	"net/http"

	sharedError "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/error"
)

const (
	memberNotFound        = "MEMBER_NOT_FOUND"        // errInfo
	memberRetrieval       = "MEMBER_RETRIEVAL"        // errInfo
	usernameAlreadyExists = "USERNAME_ALREADY_EXISTS" // errInfo
	nicknameAlreadyExists = "NICKNAME_ALREADY_EXISTS" // errInfo
	memberSave            = "MEMBER_SAVE"             // errInfo
	memberDeletionFailure = "MEMBER_DELETION_FAILURE" // errInfo
	invalidFileFormat     = "INVALID_FILE_FORMAT"     // errInfo
	profileImageSave      = "PROFILE_IMAGE_SAVE"      // errInfo
	invalidRadius         = "INVALID_RADIUS"          // errInfo
	invalidReviewType     = "INVALID_REVIEW_TYPE"     // errInfo
)

var (
	ErrMemberNotFound        = sharedError.NewDomainError(memberNotFound)
	ErrMemberRetrieval       = sharedError.NewDomainError(memberRetrieval)
	ErrUsernameAlreadyExists = sharedError.NewDomainError(usernameAlreadyExists)
	ErrNicknameAlreadyExists = sharedError.NewDomainError(nicknameAlreadyExists)
	ErrMemberSave            = sharedError.NewDomainError(memberSave)
	ErrMemberDeletionFailure = sharedError.NewDomainError(memberDeletionFailure)
	ErrInvalidFileFormat     = sharedError.NewDomainError(invalidFileFormat)
	ErrProfileImageSave      = sharedError.NewDomainError(profileImageSave)
	ErrInvalidRadius         = sharedError.NewDomainError(invalidRadius)
	ErrInvalidReviewType     = sharedError.NewDomainError(invalidReviewType)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "해당 유저를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberRetrieval, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "MEMBER-002",
		Message: "해당 유저를 찾을 수 없습니다. 관리자에게 문의하세요.",
	})

	sharedError.RegisterDomainErrorResponse(usernameAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-003",
		Message: "동일한 아이디가 이미 존재합니다.",
	})

	sharedError.RegisterDomainErrorResponse(nicknameAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-004",
		Message: "동일한 닉네임이 이미 존재합니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberSave, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "MEMBER-005",
		Message: "서버 문제로 회원 정보를 저장하지 못했습니다. 관리자에게 문의하세요.",
	})

	sharedError.RegisterDomainErrorResponse(memberDeletionFailure, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "MEMBER-006",
		Message: "회원 탈퇴에 실패했습니다. 관리자에게 문의하세요.",
	})

	sharedError.RegisterDomainErrorResponse(invalidFileFormat, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-007",
		Message: "지원되지 않는 파일 형식입니다.",
	})

	sharedError.RegisterDomainErrorResponse(profileImageSave, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "MEMBER-008",
		Message: "프로필 이미지를 저장하는 동안 오류가 발생했습니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidRadius, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-009",
		Message: "반경은 2, 5, 7, 10 km 중 하나여야 합니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidReviewType, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-010",
		Message: "올바르지 않은 리뷰 타입입니다.",
	})
}
