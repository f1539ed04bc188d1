package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"afrilance_backend/database"
	"afrilance_backend/internal/auth"
	"afrilance_backend/internal/cache"
	"afrilance_backend/internal/config"
	"afrilance_backend/internal/email"
	"afrilance_backend/internal/handlers"
	"afrilance_backend/internal/logger"
	"afrilance_backend/internal/models"
	"afrilance_backend/internal/repositories"
	"afrilance_backend/internal/routes"
	"afrilance_backend/internal/services"
	"afrilance_backend/internal/validator"
	"afrilance_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Run boots the whole application and blocks until shutdown.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	auth.InitJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err.Error())
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("migration failed", "error", err.Error())
	}

	mailer := email.NewSMTPProvider(
		cfg.Email.SMTPHost, cfg.Email.SMTPPort,
		cfg.Email.SMTPUsername, cfg.Email.SMTPPassword,
		cfg.Email.FromEmail, cfg.Email.FromName,
	)
	redisCache := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer redisCache.Close()

	appHandlers, userRepo := BuildHandlers(mailer, redisCache)

	if err := seedFirstAdmin(db, userRepo, cfg); err != nil {
		logger.Fatal("failed to seed first admin", "error", err.Error())
	}

	router := routes.SetupRouter(db, appHandlers)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go workers.NewTokenWorker(db, userRepo).Start(ctx)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", "error", err.Error())
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err.Error())
	}
}

// BuildHandlers constructs the full repository → service → handler graph.
// Tests call this with a mock mailer and a disabled cache.
func BuildHandlers(mailer email.Provider, redisCache *cache.Cache) (*handlers.AppHandlers, repositories.UserRepository) {
	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	proposalRepo := repositories.NewProposalRepository()
	contractRepo := repositories.NewContractRepository()
	walletRepo := repositories.NewWalletRepository()
	statsRepo := repositories.NewStatsRepository()

	authService := services.NewAuthService(userRepo, walletRepo)
	userService := services.NewUserService(userRepo, mailer)
	jobService := services.NewJobService(jobRepo, proposalRepo)
	proposalService := services.NewProposalService(proposalRepo, jobRepo, userRepo)
	contractService := services.NewContractService(contractRepo, jobRepo, proposalRepo, userRepo, walletRepo, mailer)
	walletService := services.NewWalletService(walletRepo, userRepo)
	statsService := services.NewStatsService(statsRepo, redisCache)

	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		Auth:     handlers.NewAuthHandler(base, authService),
		User:     handlers.NewUserHandler(base, userService, statsService),
		Job:      handlers.NewJobHandler(base, jobService, proposalService, contractService),
		Proposal: handlers.NewProposalHandler(base, proposalService),
		Contract: handlers.NewContractHandler(base, contractService, statsService),
		Wallet:   handlers.NewWalletHandler(base, walletService, contractService),
	}, userRepo
}

// seedFirstAdmin creates the bootstrap admin account when configured and
// not already present.
func seedFirstAdmin(db *gorm.DB, userRepo repositories.UserRepository, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	_, err := userRepo.FindByEmail(db, cfg.FirstAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		FullName:     "Platform Admin",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := userRepo.Create(db, admin); err != nil {
		return err
	}

	logger.Info("first admin created", "email", cfg.FirstAdminEmail)
	return nil
}
