package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/internal/api"
	"backoffice/internal/api/handler"
	"backoffice/internal/app/service"
	"backoffice/internal/common/security"
	"backoffice/internal/domain/repository"
	"backoffice/internal/i18n"
	"backoffice/internal/platform/cache"
	"backoffice/internal/platform/config"
	"backoffice/internal/platform/database"
	"backoffice/internal/platform/logger"
	"backoffice/internal/platform/storage"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func main() {
	// 1. Configuration and logger
	config.Load()
	log := logger.New(config.AppConfig.AppEnv)
	defer log.Sync()

	ctx := context.Background()

	// 2. Mongo
	mongoClient, db, err := database.Connect(ctx)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(ctx, mongoClient)
	log.Info("mongo connected", zap.String("database", config.AppConfig.MongoDB))

	// 3. Redis (settings cache)
	rdb, err := cache.Connect(ctx)
	if err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}
	defer cache.Close(rdb)
	log.Info("redis connected")

	// 4. S3
	s3Client, err := storage.NewS3Client(ctx)
	if err != nil {
		log.Fatal("s3 client init failed", zap.Error(err))
	}

	// 5. Repositories
	userRepo := repository.NewMongoUserRepository(db)
	roleRepo := repository.NewMongoRoleRepository(db)
	permRepo := repository.NewMongoPermissionRepository(db)
	settingRepo := repository.NewMongoSettingRepository(db)
	apiKeyRepo := repository.NewMongoAPIKeyRepository(db)

	// 6. Services
	tokens, err := service.NewTokenService(config.AppConfig)
	if err != nil {
		log.Fatal("token service init failed", zap.Error(err))
	}
	hasher := security.NewPasswordHasher(config.AppConfig.BcryptCost)
	settings := service.NewSettingService(settingRepo, rdb, config.AppConfig.SettingCacheTTL, log)
	roles := service.NewRoleService(roleRepo, permRepo)
	authService := service.NewAuthService(userRepo, roles, settings, tokens, hasher,
		config.AppConfig.PasswordExpiredIn, log)
	userService := service.NewUserService(userRepo, roleRepo)
	fileService := service.NewFileService(s3Client, config.AppConfig.AWSBucket, config.AppConfig.AWSBaseURL)

	// 7. HTTP layer
	msgs := i18n.NewCatalog(config.AppConfig.DefaultLanguage)
	validate := validator.New()
	userHandler := handler.NewUserHandler(authService, userService, fileService, validate,
		msgs, config.AppConfig.DefaultLanguage, config.AppConfig.MaxPhotoSize)
	router := api.NewRouter(userHandler, tokens, apiKeyRepo, msgs, config.AppConfig.DefaultLanguage, log)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("server starting", zap.String("port", config.AppConfig.APIPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-stop

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}
	log.Info("server stopped gracefully")
}
