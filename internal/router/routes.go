package router

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/auth"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/district"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/gather"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/member"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/meta"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/database"
	sharedError "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/error"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/handler"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/metrics"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/middleware"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/token"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/storage"
)

var (
	errRouteNotFound    = errors.New("router: route not found")
	errMethodNotAllowed = errors.New("router: method not allowed")
)

// Dependencies are the infrastructure handles opened by main.
type Dependencies struct {
	Config *config.Config
	DB     *database.DB
	Redis  *redis.Client // nil when redis is disabled
	Files  *storage.Store
	Tokens token.Manager
}

// Services is the wired application graph, shared by the routes and startup tasks.
type Services struct {
	DistrictRepository *district.DistrictRepository
	DistrictCache      *district.RedisCache
	Auth               *auth.AuthService
	Member             *member.MemberService
}

// NewServices wires repositories and services using dependency injection
func NewServices(deps Dependencies) *Services {
	// repository
	memberRepository := member.NewMemberRepository()
	gatherArticleRepository := gather.NewGatherArticleRepository()
	districtRepository := district.NewDistrictRepository()

	// district
	districtCache := district.NewRedisCache(deps.Redis)
	locator := district.NewLocator(districtCache, districtRepository)
	nearDistricts := district.NewNearDistrictService(districtRepository)

	return &Services{
		DistrictRepository: districtRepository,
		DistrictCache:      districtCache,
		Auth:               auth.NewAuthService(deps.DB.DB, memberRepository, deps.Tokens),
		Member: member.NewMemberService(
			deps.DB.DB,
			memberRepository,
			gatherArticleRepository,
			nearDistricts,
			locator,
			deps.Files,
		),
	}
}

// Setup configures all application-specific routes
func Setup(router *gin.Engine, deps Dependencies, services *Services) {
	metaHandler := meta.NewHandler(deps.Config, deps.DB, deps.Redis)
	router.GET("/health", metaHandler.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// MinIO 미사용 시 업로드 이미지를 직접 서빙
	if !deps.Config.UseObjectStorage() {
		router.Static(deps.Config.Storage.URLPrefix, deps.Config.Storage.PublicDir)
	}

	router.NoRoute(func(c *gin.Context) {
		handler.RespondError(c, errRouteNotFound, sharedError.RouteNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		handler.RespondError(c, errMethodNotAllowed, sharedError.MethodNotAllowed)
	})

	authHandler := auth.NewAuthHandler(services.Auth)
	memberHandler := member.NewMemberHandler(services.Member)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/register", memberHandler.Register)
		authV1.POST("/username/check", memberHandler.VerifyUsernameDuplication)
		authV1.POST("/nickname/check", memberHandler.VerifyNicknameDuplication)
		authV1.POST("/login", authHandler.Login)
	}

	authenticated := router.Group("/api/v1")
	authenticated.Use(middleware.JWT(deps.Tokens))
	{
		authenticated.DELETE("/members/me", memberHandler.Withdraw)
		authenticated.GET("/members/me/neighborhoods", memberHandler.GetNeighbourhoods)
		authenticated.PUT("/members/me/neighborhood", memberHandler.UpdateNeighbourhood)
		authenticated.PUT("/members/me/radius", memberHandler.UpdateRadius)
		authenticated.PUT("/members/me/profile", memberHandler.UpdateProfile)
		authenticated.GET("/profiles/:nickname", memberHandler.GetProfile)
		authenticated.POST("/gather-articles/:gatherArticleId/reviews", memberHandler.SendReview)
	}
}
