package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/member"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/database"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/logger"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
	tokenManager     token.Manager
}

func NewAuthService(db *gorm.DB, memberRepository *member.MemberRepository, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:               db,
		memberRepository: memberRepository,
		tokenManager:     tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)
	masked := logger.MaskUsername(request.Username)

	// 1. Find member by username
	var found *model.Member
	err := database.WithReadOnlyTransaction(ctx, a.db, func(tx *gorm.DB) error {
		var err error
		found, err = a.memberRepository.FindByUsername(ctx, tx, request.Username)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("로그인 실패 - 존재하지 않는 아이디", "username", masked)
			return nil, fmt.Errorf("error %w", ErrIncorrectUsernamePassword) // 아이디 존재 여부를 노출하지 않는다
		}
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}

	// 2. Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(request.Password)); err != nil {
		log.Warn("로그인 실패 - 비밀번호 불일치", "username", masked)
		return nil, fmt.Errorf("error %w", ErrIncorrectUsernamePassword)
	}

	// 3. Generate JWT tokens
	memberID := strconv.FormatUint(uint64(found.ID), 10)
	accessToken, err := a.tokenManager.GenerateAccessToken(memberID, found.Username)
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(memberID, found.Username)
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("로그인 성공", "username", masked)

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
