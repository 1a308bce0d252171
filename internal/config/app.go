package config

import (
	http "github.com/dhruvp2403/samajportal/internal/delivery/http"
	"github.com/dhruvp2403/samajportal/internal/delivery/http/middleware"
	"github.com/dhruvp2403/samajportal/internal/delivery/http/route"
	"github.com/dhruvp2403/samajportal/internal/moderation"
	"github.com/dhruvp2403/samajportal/internal/notify"
	"github.com/dhruvp2403/samajportal/internal/repository"
	"github.com/dhruvp2403/samajportal/internal/usecase"
	"github.com/minio/minio-go/v7"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/knadh/koanf/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Router  *fiber.App
	DB      *pgxpool.Pool
	DBCache *redis.Client
	Log     *zap.Logger
	Config  *koanf.Koanf
	MinIO   *minio.Client
}

// NewBus picks the change-notification transport. The in-process bus is the
// default; the redis bus is for running more than one instance behind a
// load balancer.
func NewBus(config *ServerConfig) notify.Bus {
	if config.Config.String("NOTIFY_DRIVER") == "redis" {
		return notify.NewRedisBus(config.DBCache, config.Log)
	}

	return notify.NewMemoryBus(config.Log)
}

func Server(config *ServerConfig) {
	bus := NewBus(config)
	moderationEngine := moderation.NewEngineFromConfig(config.Config.String("MODERATION_DENYLIST"))

	adminRepository := repository.NewAdminRepository(config.Log, config.DB, config.DBCache)
	adminUsecase := usecase.NewAdminUsecase(adminRepository, config.DB, config.Log, config.Config)
	adminController := http.NewAdminController(adminUsecase, config.Log, config.Config)

	memberRepository := repository.NewMemberRepository(config.Log, config.DB, config.MinIO)
	memberUsecase := usecase.NewMemberUsecase(memberRepository, bus, config.DB, config.Log, config.Config)
	memberController := http.NewMemberController(memberUsecase, config.Log, config.Config)

	greetingRepository := repository.NewGreetingRepository(config.Log, config.DB)
	greetingUsecase := usecase.NewGreetingUsecase(greetingRepository, moderationEngine, bus, config.DB, config.Log, config.Config)
	greetingController := http.NewGreetingController(greetingUsecase, config.Log, config.Config)

	announcementRepository := repository.NewAnnouncementRepository(config.Log, config.DB)
	announcementUsecase := usecase.NewAnnouncementUsecase(announcementRepository, bus, config.DB, config.Log, config.Config)
	announcementController := http.NewAnnouncementController(announcementUsecase, config.Log, config.Config)

	dashboardUsecase := usecase.NewDashboardUsecase(memberRepository, greetingRepository, announcementRepository, config.Log, config.Config)
	dashboardController := http.NewDashboardController(dashboardUsecase, config.Log, config.Config)

	eventController := http.NewEventController(bus, config.Log, config.Config)

	authMiddleware := middleware.NewAuthMiddleware(config.Router, config.Log, config.Config, adminUsecase)

	routeConfig := route.RouteConfig{
		App:                    config.Router,
		AuthMiddleware:         authMiddleware,
		AdminController:        adminController,
		MemberController:       memberController,
		GreetingController:     greetingController,
		AnnouncementController: announcementController,
		DashboardController:    dashboardController,
		EventController:        eventController,
	}

	routeConfig.SetupRoute()
}
