package gather

import (
	"net/http"

	sharedError "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/error"
)

const (
	gatherArticleNotFound        = "GATHER_ARTICLE_NOT_FOUND"         // errInfo
	gatherArticleNotCompleted    = "GATHER_ARTICLE_NOT_COMPLETED"     // errInfo
	memberNotJoinedGatherArticle = "MEMBER_NOT_JOINED_GATHER_ARTICLE" // errInfo
)

var (
	ErrGatherArticleNotFound        = sharedError.NewDomainError(gatherArticleNotFound)
	ErrGatherArticleNotCompleted    = sharedError.NewDomainError(gatherArticleNotCompleted)
	ErrMemberNotJoinedGatherArticle = sharedError.NewDomainError(memberNotJoinedGatherArticle)
)

func init() {
	sharedError.RegisterDomainErrorResponse(gatherArticleNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "GATHER-001",
		Message: "해당 모집글을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(gatherArticleNotCompleted, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "GATHER-002",
		Message: "모임이 종료된 모집글만 리뷰를 보낼 수 있습니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberNotJoinedGatherArticle, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "GATHER-003",
		Message: "리뷰를 보낼 권한이 없습니다.",
	})
}
