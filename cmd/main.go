package main

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/campushq-id/bootcamp-api/config"
	"github.com/campushq-id/bootcamp-api/internal/handler"
	"github.com/campushq-id/bootcamp-api/internal/middleware"
	"github.com/campushq-id/bootcamp-api/internal/repository"
	"github.com/campushq-id/bootcamp-api/internal/router"
	"github.com/campushq-id/bootcamp-api/internal/service"
	"github.com/campushq-id/bootcamp-api/pkg/database"
	"github.com/campushq-id/bootcamp-api/pkg/filestore"
	"github.com/campushq-id/bootcamp-api/pkg/geocoder"
	"github.com/campushq-id/bootcamp-api/pkg/logger"
	"github.com/campushq-id/bootcamp-api/pkg/redis"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	if err := database.SeedUsers(db); err != nil {
		// Seed data may already exist, keep starting.
		logger.GetLogger().Error("Failed to seed database", zap.Error(err))
	}

	redisClient := redis.NewClient(redis.Config{
		Addr:     cfg.RedisAddress(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
		Enabled:  cfg.Redis.Enabled,
	}, logger.GetLogger())
	defer redisClient.Close()

	logger.GetLogger().Info("Redis client initialized",
		zap.Bool("enabled", redisClient.IsEnabled()),
	)

	// Repositories
	bootcampRepo := repository.NewBootcampRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Geocoding goes through the cache so repeated zipcodes skip the provider.
	geo := geocoder.NewCachedGeocoder(
		geocoder.NewClient(cfg.Geocoder),
		redisClient,
		cfg.Redis.CacheTTL,
	)

	files, err := filestore.NewDiskStore(cfg.Upload.Dir)
	if err != nil {
		logger.GetLogger().Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	// Services
	jwtService := service.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)
	bootcampService := service.NewBootcampService(bootcampRepo, geo, files, cfg.Upload)
	courseService := service.NewCourseService(courseRepo, bootcampRepo)
	userService := service.NewUserService(userRepo, jwtService)

	// Handlers
	bootcampHandler := handler.NewBootcampHandler(bootcampService)
	courseHandler := handler.NewCourseHandler(courseService)
	authHandler := handler.NewAuthHandler(userService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	jwtMiddleware := middleware.NewJWTMiddleware(jwtService)

	r := router.NewRouter(
		bootcampHandler,
		courseHandler,
		authHandler,
		healthHandler,
		jwtMiddleware,
		cfg,
	).SetupRoutes()

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", cfg.App.Port),
		)
		if err := r.Run(":" + cfg.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", cfg.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}
