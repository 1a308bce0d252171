package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhruvp2403/samajportal/internal/config"
	"github.com/dhruvp2403/samajportal/internal/delivery/http/middleware"
	exception "github.com/dhruvp2403/samajportal/internal/exception"
	tracemiddleware "github.com/dhruvp2403/samajportal/internal/middleware"
	"github.com/dhruvp2403/samajportal/internal/observability"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2/middleware/compress"
	zapLog "go.uber.org/zap"
)

func main() {
	time.Local = time.UTC
	// Flush zap buffered log first then cancel the context for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fiber := config.NewFiber()
	zap := config.NewZap()
	koanf := config.NewKoanf(zap)
	rds := config.NewRedisClient(koanf, zap)
	postgresql := config.NewPostgresqlPool(koanf, zap)
	minio := config.NewMinIO(koanf, zap)

	observabilityConfig := config.LoadObservabilityConfig(koanf, zap)
	if observabilityConfig.OtelEndpoint != "" {
		shutdownTracing, err := observability.Init(context.Background(), observabilityConfig, zap)
		if err != nil {
			zap.Fatal("failed to initialize tracing", zapLog.Error(err))
		}
		defer func() {
			_ = shutdownTracing(ctx)
		}()

		fiber.Use(otelfiber.Middleware(otelfiber.WithServerName(observabilityConfig.ServiceName)))
		fiber.Use(tracemiddleware.TraceLoggerMiddleware(zap))
	}

	// Custom recovery middleware to handle panics with JSON response
	fiber.Use(exception.Recovery(zap))

	fiber.Use(middleware.SetupCORS())
	fiber.Use(middleware.SetupRateLimiter(zap))
	fiber.Use("/api/auth/login", middleware.SetupAuthRateLimiter(zap))

	fiber.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	config.Server(&config.ServerConfig{
		Router:  fiber,
		DB:      postgresql,
		DBCache: rds,
		Log:     zap,
		Config:  koanf,
		MinIO:   minio,
	})

	GO_SERVER_PORT := koanf.String("GO_SERVER")

	zap.Info("Server is running on: " + GO_SERVER_PORT)

	var err error
	go func() {
		err = fiber.Listen(GO_SERVER_PORT)
		if err != nil {
			zap.Fatal("error starting server", zapLog.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	zap.Info("got one of stop signals")

	err = fiber.ShutdownWithContext(ctx)
	if err != nil {
		zap.Warn("timeout, forced kill!", zapLog.Error(err))
		_ = zap.Sync()
		os.Exit(1)
	}

	zap.Info("server has shut down gracefully")
	_ = zap.Sync()
}
