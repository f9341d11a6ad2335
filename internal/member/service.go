package member

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/district"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/gather"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/database"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/logger"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/metrics"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/storage"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// NearDistrictResolver computes and reads the districts around a location.
type NearDistrictResolver interface {
	SaveNearDistrictByRegisterLocation(ctx context.Context, db *gorm.DB, loc district.Location) error
	SaveNearDistrictByUpdateLocation(ctx context.Context, db *gorm.DB, loc district.Location) (map[int][]district.LocationInfo, error)
	GetNearbyLocations(ctx context.Context, db *gorm.DB, loc district.Location) (map[int][]district.LocationInfo, error)
}

type CoordinateLocator interface {
	ResolveCoordinates(ctx context.Context, db *gorm.DB, loc district.Location) (*district.Coordinate, error)
}

type FileStorage interface {
	SaveFile(fileHeader *multipart.FileHeader) (*storage.FileInfo, error)
	Publish(ctx context.Context, info *storage.FileInfo) (string, error)
	Discard(info *storage.FileInfo) error
}

type MemberService struct {
	db                      *gorm.DB
	memberRepository        *MemberRepository
	gatherArticleRepository *gather.GatherArticleRepository
	nearDistricts           NearDistrictResolver
	locator                 CoordinateLocator
	files                   FileStorage
}

func NewMemberService(
	db *gorm.DB,
	memberRepository *MemberRepository,
	gatherArticleRepository *gather.GatherArticleRepository,
	nearDistricts NearDistrictResolver,
	locator CoordinateLocator,
	files FileStorage,
) *MemberService {
	return &MemberService{
		db:                      db,
		memberRepository:        memberRepository,
		gatherArticleRepository: gatherArticleRepository,
		nearDistricts:           nearDistricts,
		locator:                 locator,
		files:                   files,
	}
}

func (s *MemberService) VerifyUsernameDuplication(ctx context.Context, request *VerifyUsernameDuplicationRequest) error {
	return database.WithReadOnlyTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return s.verifyUsername(ctx, tx, request.Username)
	})
}

func (s *MemberService) VerifyNicknameDuplication(ctx context.Context, request *VerifyNicknameDuplicationRequest) error {
	return database.WithReadOnlyTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return s.verifyNickname(ctx, tx, request.Nickname)
	})
}

func (s *MemberService) verifyUsername(ctx context.Context, tx *gorm.DB, username string) error {
	exists, err := s.memberRepository.ExistsByUsername(ctx, tx, username)
	if err != nil {
		return fmt.Errorf("아이디 중복 확인 실패: %w: %w", ErrMemberRetrieval, err)
	}
	if exists {
		return fmt.Errorf("아이디 중복 username=%s %w", logger.MaskUsername(username), ErrUsernameAlreadyExists)
	}
	return nil
}

func (s *MemberService) verifyNickname(ctx context.Context, tx *gorm.DB, nickname string) error {
	exists, err := s.memberRepository.ExistsByNickname(ctx, tx, nickname)
	if err != nil {
		return fmt.Errorf("닉네임 중복 확인 실패: %w: %w", ErrMemberRetrieval, err)
	}
	if exists {
		return fmt.Errorf("닉네임 중복 nickname=%s %w", nickname, ErrNicknameAlreadyExists)
	}
	return nil
}

// Register creates the member and the neighbour table of its district in one transaction.
func (s *MemberService) Register(ctx context.Context, request *RegisterRequest) error {
	log := logger.FromContext(ctx)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.verifyUsername(ctx, tx, request.Username); err != nil {
			return err
		}
		if err := s.verifyNickname(ctx, tx, request.Nickname); err != nil {
			return err
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("비밀번호 암호화 실패: %w", err)
		}

		member := model.NewMember(
			request.Username,
			string(hashedPassword),
			request.Nickname,
			request.Email,
			request.PhoneNumber,
			request.Sido,
			request.Sgg,
			request.Emd,
		)
		if err := s.memberRepository.Create(ctx, tx, member); err != nil {
			return fmt.Errorf("회원 저장 실패: %w: %w", ErrMemberSave, err)
		}
		if member.ID == 0 {
			return fmt.Errorf("회원 저장 후 ID 없음 %w", ErrMemberSave)
		}

		loc := district.Location{Sido: request.Sido, Sgg: request.Sgg, Emd: request.Emd}
		if err := s.nearDistricts.SaveNearDistrictByRegisterLocation(ctx, tx, loc); err != nil {
			return fmt.Errorf("주변 행정 구역 저장 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Warn("회원가입 실패", "username", logger.MaskUsername(request.Username), "error", err)
		return err
	}

	log.Info("회원가입 성공", "username", logger.MaskUsername(request.Username), "email", logger.MaskEmail(request.Email))
	return nil
}

// CreateAdminAccount creates the bootstrap admin once; an empty password disables it.
func (s *MemberService) CreateAdminAccount(ctx context.Context, admin config.AdminConfig) error {
	log := logger.FromContext(ctx)

	if admin.Password == "" {
		log.Info("관리자 계정 비밀번호 미설정 - 관리자 계정 생성 건너뜀")
		return nil
	}

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.memberRepository.ExistsByUsername(ctx, tx, admin.Username)
		if err != nil {
			return fmt.Errorf("관리자 계정 조회 실패: %w: %w", ErrMemberRetrieval, err)
		}
		if exists {
			return nil
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("비밀번호 암호화 실패: %w", err)
		}

		member := model.NewMember(admin.Username, string(hashedPassword), admin.Nickname, admin.Email,
			"01012345678", "서울특별시", "강남구", "삼성동")
		member.Role = model.RoleAdmin
		if err := s.memberRepository.Create(ctx, tx, member); err != nil {
			return fmt.Errorf("관리자 계정 저장 실패: %w: %w", ErrMemberSave, err)
		}

		log.Info("관리자 계정 생성", "username", admin.Username)
		return nil
	})
}

// Withdraw deletes the member and then checks that the row is really gone.
func (s *MemberService) Withdraw(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findByUsername(ctx, tx, username)
		if err != nil {
			return err
		}

		if err := s.memberRepository.Delete(ctx, tx, member); err != nil {
			return fmt.Errorf("회원 삭제 실패: %w: %w", ErrMemberDeletionFailure, err)
		}

		exists, err := s.memberRepository.ExistsByID(ctx, tx, member.ID)
		if err != nil {
			return fmt.Errorf("회원 삭제 확인 실패: %w: %w", ErrMemberRetrieval, err)
		}
		if exists {
			return fmt.Errorf("삭제 후에도 회원이 존재함 memberID=%d %w", member.ID, ErrMemberDeletionFailure)
		}
		return nil
	})
	if err != nil {
		log.Error("회원 탈퇴 실패", "username", logger.MaskUsername(username), "error", err)
		return err
	}

	log.Info("회원 탈퇴", "username", logger.MaskUsername(username))
	return nil
}

func (s *MemberService) GetNeighbourhoods(ctx context.Context, username string) (*MyLocationsResponse, error) {
	var response *MyLocationsResponse

	err := database.WithReadOnlyTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findByUsername(ctx, tx, username)
		if err != nil {
			return err
		}

		loc := district.Location{Sido: member.Sido, Sgg: member.Sgg, Emd: member.Emd}
		coordinate, err := s.locator.ResolveCoordinates(ctx, tx, loc)
		if err != nil {
			return err
		}

		locations, err := s.nearDistricts.GetNearbyLocations(ctx, tx, loc)
		if err != nil {
			return err
		}

		response = &MyLocationsResponse{
			Locations: locations,
			Longitude: coordinate.Longitude,
			Latitude:  coordinate.Latitude,
			Radius:    member.Radius,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// UpdateNeighbourhood moves the member and returns the neighbours of the new district by radius tier.
func (s *MemberService) UpdateNeighbourhood(ctx context.Context, username string, request *LocationRequest) (map[int][]district.LocationInfo, error) {
	var locations map[int][]district.LocationInfo

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findByUsername(ctx, tx, username)
		if err != nil {
			return err
		}

		member.AssignLocation(request.Sido, request.Sgg, request.Emd)
		if err := s.memberRepository.Save(ctx, tx, member); err != nil {
			return fmt.Errorf("회원 위치 저장 실패: %w: %w", ErrMemberSave, err)
		}

		locations, err = s.nearDistricts.SaveNearDistrictByUpdateLocation(ctx, tx, request.Location())
		return err
	})

	if err != nil {
		return nil, err
	}

	return locations, nil
}

func (s *MemberService) UpdateRadius(ctx context.Context, username string, request *RadiusRequest) error {
	if !district.IsRadiusTier(request.Radius) {
		return fmt.Errorf("radius=%d %w", request.Radius, ErrInvalidRadius)
	}

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findByUsername(ctx, tx, username)
		if err != nil {
			return err
		}

		member.AssignRadius(request.Radius)
		if err := s.memberRepository.Save(ctx, tx, member); err != nil {
			return fmt.Errorf("회원 반경 저장 실패: %w: %w", ErrMemberSave, err)
		}
		return nil
	})
}

// SendReview records a review from username to the member with the given nickname.
// Reviewer and reviewee rows, and the reviewee's participation row on NOSHOW, are locked
// until commit so concurrent no-show reports on one gathering are applied one at a time.
func (s *MemberService) SendReview(ctx context.Context, gatherArticleID uint32, username string, request *ReviewRequest) error {
	log := logger.FromContext(ctx)

	reviewType, ok := model.ParseReviewType(request.Review)
	if !ok {
		return fmt.Errorf("알 수 없는 리뷰 타입 %q: %w", request.Review, ErrInvalidReviewType)
	}

	penalized := false
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		article, err := s.gatherArticleRepository.FindByID(ctx, tx, gatherArticleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("모집글 없음 gatherArticleID=%d %w", gatherArticleID, gather.ErrGatherArticleNotFound)
			}
			return fmt.Errorf("모집글 조회 실패: %w", err)
		}

		if !article.IsCompleted() {
			return fmt.Errorf("모집글 상태=%s %w", article.Status, gather.ErrGatherArticleNotCompleted)
		}

		reviewer, err := s.findByUsername(ctx, tx, username)
		if err != nil {
			return err
		}

		joined, err := s.gatherArticleRepository.HasRole(ctx, tx, gatherArticleID, username)
		if err != nil {
			return fmt.Errorf("모집글 참가 여부 조회 실패: %w", err)
		}
		if !joined {
			return fmt.Errorf("리뷰 권한 없음 gatherArticleID=%d %w", gatherArticleID, gather.ErrMemberNotJoinedGatherArticle)
		}

		reviewee, err := s.memberRepository.FindByNickname(ctx, tx, request.Nickname)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("리뷰 받는 회원 없음 nickname=%s %w", request.Nickname, ErrMemberRetrieval)
			}
			return fmt.Errorf("리뷰 받는 회원 조회 실패: %w: %w", ErrMemberRetrieval, err)
		}

		locked, err := s.memberRepository.LockByIDs(ctx, tx, reviewer.ID, reviewee.ID)
		if err != nil {
			return fmt.Errorf("회원 잠금 실패: %w: %w", ErrMemberRetrieval, err)
		}
		reviewer, reviewee = locked[reviewer.ID], locked[reviewee.ID]
		if reviewer == nil || reviewee == nil {
			return fmt.Errorf("잠금 중 회원 사라짐 %w", ErrMemberRetrieval)
		}

		reviewee.ApplyReview(reviewType)
		if reviewType == model.ReviewNoShow {
			penalized, err = s.receiveNoShow(ctx, tx, article, reviewee)
			if err != nil {
				return err
			}
		}
		reviewer.IncrementSendReviewCount()

		if err := s.memberRepository.Save(ctx, tx, reviewee); err != nil {
			return fmt.Errorf("리뷰 받는 회원 저장 실패: %w: %w", ErrMemberSave, err)
		}
		if reviewer != reviewee {
			if err := s.memberRepository.Save(ctx, tx, reviewer); err != nil {
				return fmt.Errorf("리뷰 보낸 회원 저장 실패: %w: %w", ErrMemberSave, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Warn("리뷰 보내기 실패",
			"gather_article_id", gatherArticleID,
			"reviewer", logger.MaskUsername(username),
			"review", request.Review,
			"error", err)
		return err
	}

	metrics.ReviewsTotal.WithLabelValues(string(reviewType)).Inc()
	if penalized {
		metrics.NoShowPenaltiesTotal.Inc()
		log.Info("노쇼 패널티 적용", "gather_article_id", gatherArticleID, "reviewee", request.Nickname)
	}
	return nil
}

// receiveNoShow counts a no-show report on the reviewee's participation and applies the join count penalty.
func (s *MemberService) receiveNoShow(ctx context.Context, tx *gorm.DB, article *model.GatherArticle, reviewee *model.Member) (bool, error) {
	participation, err := s.gatherArticleRepository.FindParticipation(ctx, tx, article.ID, reviewee.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("리뷰 받는 회원이 모임에 참가하지 않음 memberID=%d %w", reviewee.ID, gather.ErrMemberNotJoinedGatherArticle)
		}
		return false, fmt.Errorf("참가 기록 조회 실패: %w", err)
	}

	penalized := participation.ReceiveNoShow(article.CurrentParticipants)
	if penalized {
		reviewee.DecrementJoinCount()
	}

	if err := s.gatherArticleRepository.SaveParticipation(ctx, tx, participation); err != nil {
		return false, fmt.Errorf("참가 기록 저장 실패: %w", err)
	}
	return penalized, nil
}

func (s *MemberService) GetProfileByNickname(ctx context.Context, nickname string) (*ProfileResponse, error) {
	if strings.TrimSpace(nickname) == "" {
		return nil, fmt.Errorf("닉네임 없음 %w", ErrMemberNotFound)
	}

	var response *ProfileResponse

	err := database.WithReadOnlyTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.memberRepository.FindProfileByNickname(ctx, tx, nickname)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("프로필 없음 nickname=%s %w", nickname, ErrMemberNotFound)
			}
			return fmt.Errorf("프로필 조회 실패: %w: %w", ErrMemberRetrieval, err)
		}

		response = toProfileResponse(member)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

func toProfileResponse(member *model.Member) *ProfileResponse {
	response := &ProfileResponse{
		Nickname:            member.Nickname,
		Description:         member.Description,
		Sido:                member.Sido,
		Sgg:                 member.Sgg,
		Emd:                 member.Emd,
		BuddyScore:          member.BuddyScore,
		JoinCount:           member.JoinCount,
		TotalExcellentCount: member.TotalExcellentCount,
		TotalGoodCount:      member.TotalGoodCount,
		TotalBadCount:       member.TotalBadCount,
		Badges:              make([]BadgeImageResponse, 0),
	}
	if member.ProfileImage != nil {
		url := member.ProfileImage.URL
		response.ProfileImageURL = &url
	}
	for _, badge := range member.BadgeImages() {
		response.Badges = append(response.Badges, BadgeImageResponse{
			BadgeImageURL:  badge.URL,
			BadgeYearMonth: badge.BadgeYearMonth,
		})
	}
	return response
}

// UpdateProfile applies the non-empty fields of the request. A nil upload clears the profile image.
// The staged upload is always removed, whether or not the update commits.
func (s *MemberService) UpdateProfile(ctx context.Context, username string, request *UpdateProfileRequest, upload *ProfileImageUpload) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findByUsername(ctx, tx, username)
		if err != nil {
			return err
		}

		if request.Nickname != "" && request.Nickname != member.Nickname {
			if err := s.verifyNickname(ctx, tx, request.Nickname); err != nil {
				return err
			}
			member.AssignNickname(request.Nickname)
		}

		if request.Password != "" {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("비밀번호 암호화 실패: %w", err)
			}
			member.AssignPassword(string(hashedPassword))
		}

		if request.PhoneNumber != "" {
			member.AssignPhoneNumber(request.PhoneNumber)
			log.Debug("전화번호 변경", "phone", logger.MaskPhone(request.PhoneNumber))
		}

		if request.Description != "" {
			member.AssignDescription(request.Description)
		}

		if upload == nil || upload.File == nil {
			member.AssignProfileImage(nil)
		} else {
			image, err := s.saveProfileImage(ctx, tx, upload)
			if err != nil {
				return err
			}
			member.AssignProfileImage(image)
		}

		if err := s.memberRepository.Save(ctx, tx, member); err != nil {
			return fmt.Errorf("프로필 저장 실패: %w: %w", ErrMemberSave, err)
		}

		log.Info("프로필 수정", "username", logger.MaskUsername(username))
		return nil
	})
}

func (s *MemberService) saveProfileImage(ctx context.Context, tx *gorm.DB, upload *ProfileImageUpload) (*model.ProfileImage, error) {
	if upload.ContentType != "" && !strings.HasPrefix(upload.ContentType, "multipart/form-data") {
		return nil, fmt.Errorf("content-type=%s %w", upload.ContentType, ErrInvalidFileFormat)
	}

	info, err := s.files.SaveFile(upload.File)
	if err != nil {
		return nil, fmt.Errorf("프로필 이미지 임시 저장 실패: %w: %w", ErrProfileImageSave, err)
	}
	defer func() {
		if err := s.files.Discard(info); err != nil {
			logger.FromContext(ctx).Error("임시 파일 삭제 실패", "path", info.LocalPath, "error", err)
		}
	}()

	url, err := s.files.Publish(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("프로필 이미지 게시 실패: %w: %w", ErrProfileImageSave, err)
	}

	image := model.NewProfileImage(info.OriginalFilename, info.SavedFilename, url)
	if err := s.memberRepository.CreateProfileImage(ctx, tx, image); err != nil {
		return nil, fmt.Errorf("프로필 이미지 저장 실패: %w: %w", ErrProfileImageSave, err)
	}
	return image, nil
}

// findByUsername maps a missing authenticated member to ErrMemberRetrieval.
func (s *MemberService) findByUsername(ctx context.Context, tx *gorm.DB, username string) (*model.Member, error) {
	member, err := s.memberRepository.FindByUsername(ctx, tx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원 없음 username=%s %w", logger.MaskUsername(username), ErrMemberRetrieval)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w: %w", ErrMemberRetrieval, err)
	}
	return member, nil
}
