package setup

import (
	"context"
	"testing"

	"github.com/dhruvp2403/samajportal/internal/delivery/http"
	"github.com/dhruvp2403/samajportal/internal/delivery/http/middleware"
	"github.com/dhruvp2403/samajportal/internal/delivery/http/route"
	"github.com/dhruvp2403/samajportal/internal/moderation"
	"github.com/dhruvp2403/samajportal/internal/notify"
	"github.com/dhruvp2403/samajportal/internal/repository"
	"github.com/dhruvp2403/samajportal/internal/usecase"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const TestBucketName = "samajportal-test"

func SetupTestApp(t *testing.T, pgURL, redisURL, minioURL string) (*fiber.App, *pgxpool.Pool, *redis.Client, *minio.Client) {
	t.Log("Setting up test application...")

	ctx := context.Background()

	// 1. Create test config with test infrastructure values
	testConfig := koanf.New(".")
	_ = testConfig.Set("POSTGRES_URL", pgURL)
	_ = testConfig.Set("REDIS_URL", redisURL)
	_ = testConfig.Set("MINIO_URL", minioURL)
	_ = testConfig.Set("MINIO_BUCKET_NAME", TestBucketName)
	_ = testConfig.Set("MINIO_PUBLIC_URL", "http://"+minioURL+"/"+TestBucketName)
	_ = testConfig.Set("JWT_SECRET_KEY", "test-secret-key-for-jwt-token-generation")
	_ = testConfig.Set("MODERATION_DENYLIST", "spam,scam,fraud")
	_ = testConfig.Set("NOTIFY_DRIVER", "memory")

	// 2. Connect to PostgreSQL
	t.Log("Connecting to test PostgreSQL...")
	dbPool, err := pgxpool.New(ctx, pgURL)
	if err != nil {
		t.Fatalf("failed to connect to test db: %v", err)
	}

	// 3. Connect to Redis
	t.Log("Connecting to test Redis...")
	redisClient := redis.NewClient(&redis.Options{
		Addr: redisURL,
		DB:   0,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		t.Fatalf("failed to connect to test redis: %v", err)
	}

	// 4. Connect to MinIO
	t.Log("Connecting to test MinIO...")
	minioClient, err := minio.New(minioURL, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	if err != nil {
		t.Fatalf("failed to connect to minio: %v", err)
	}

	exists, err := minioClient.BucketExists(ctx, TestBucketName)
	if err != nil {
		t.Fatalf("failed to check minio bucket: %v", err)
	}

	if !exists {
		t.Logf("Creating MinIO bucket: %s", TestBucketName)
		err = minioClient.MakeBucket(ctx, TestBucketName, minio.MakeBucketOptions{})
		if err != nil {
			t.Fatalf("failed to create minio bucket: %v", err)
		}
	} else {
		t.Logf("MinIO bucket already exists: %s", TestBucketName)
	}

	// 5. Setup logger (use development config for test)
	zapLogger := zap.NewExample()
	defer func() {
		_ = zapLogger.Sync()
	}()

	// 6. Shared collaborators
	bus := notify.NewMemoryBus(zapLogger)
	moderationEngine := moderation.NewEngineFromConfig(testConfig.String("MODERATION_DENYLIST"))

	// 7. Setup repositories
	adminRepository := repository.NewAdminRepository(zapLogger, dbPool, redisClient)
	memberRepository := repository.NewMemberRepository(zapLogger, dbPool, minioClient)
	greetingRepository := repository.NewGreetingRepository(zapLogger, dbPool)
	announcementRepository := repository.NewAnnouncementRepository(zapLogger, dbPool)

	// 8. Setup usecases
	adminUsecase := usecase.NewAdminUsecase(adminRepository, dbPool, zapLogger, testConfig)
	memberUsecase := usecase.NewMemberUsecase(memberRepository, bus, dbPool, zapLogger, testConfig)
	greetingUsecase := usecase.NewGreetingUsecase(greetingRepository, moderationEngine, bus, dbPool, zapLogger, testConfig)
	announcementUsecase := usecase.NewAnnouncementUsecase(announcementRepository, bus, dbPool, zapLogger, testConfig)
	dashboardUsecase := usecase.NewDashboardUsecase(memberRepository, greetingRepository, announcementRepository, zapLogger, testConfig)

	// 9. Setup controllers
	adminController := http.NewAdminController(adminUsecase, zapLogger, testConfig)
	memberController := http.NewMemberController(memberUsecase, zapLogger, testConfig)
	greetingController := http.NewGreetingController(greetingUsecase, zapLogger, testConfig)
	announcementController := http.NewAnnouncementController(announcementUsecase, zapLogger, testConfig)
	dashboardController := http.NewDashboardController(dashboardUsecase, zapLogger, testConfig)
	eventController := http.NewEventController(bus, zapLogger, testConfig)

	// 10. Setup middleware
	authMiddleware := middleware.NewAuthMiddleware(nil, zapLogger, testConfig, adminUsecase)

	// 11. Setup Fiber app
	fiberApp := fiber.New(fiber.Config{
		AppName:               "samajportal test",
		DisableStartupMessage: true,
		DisableKeepalive:      true, // Important for tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// 12. Setup routes
	routeConfig := route.RouteConfig{
		App:                    fiberApp,
		AuthMiddleware:         authMiddleware,
		AdminController:        adminController,
		MemberController:       memberController,
		GreetingController:     greetingController,
		AnnouncementController: announcementController,
		DashboardController:    dashboardController,
		EventController:        eventController,
	}

	routeConfig.SetupRoute()

	t.Log("Test application setup completed successfully")

	return fiberApp, dbPool, redisClient, minioClient
}
