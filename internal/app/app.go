package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"workhub_backend/internal/auth"
	"workhub_backend/internal/config"
	"workhub_backend/internal/email"
	"workhub_backend/internal/handlers"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/routes"
	"workhub_backend/internal/services"
	"workhub_backend/internal/validator"
	"workhub_backend/pkg/apperrors"
)

// Run boots the whole server: config, logging, database, migrations,
// seed data, router. Blocks until the listener stops.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	apperrors.SetDebug(cfg.IsDevelopment())
	auth.Init(cfg.JWT.Secret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTLMin, cfg.JWT.RefreshTTLDays)

	db, err := OpenDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := Seed(db, cfg); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	engine := SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return engine.Run(addr)
}

// OpenDatabase connects to postgres with gorm.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}
	if cfg.IsDevelopment() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}
	return gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
}

// SetupRouter wires repositories, services and handlers onto a fresh
// engine. Kept separate from Run so tests can build one over their own
// database.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewRefreshTokenRepository(db)
	businessRepo := repositories.NewBusinessRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewJobApplicationRepository(db)
	contributorRepo := repositories.NewContributorRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	mailer := email.NewMailer(cfg)

	authService := services.NewAuthService(userRepo, tokenRepo)
	businessService := services.NewBusinessService(businessRepo)
	jobService := services.NewJobService(jobRepo, businessRepo)
	applicationService := services.NewJobApplicationService(applicationRepo, jobRepo)
	contributorService := services.NewContributorService(contributorRepo)
	articleService := services.NewArticleService(articleRepo, contributorService)
	eventService := services.NewEventService(eventRepo)
	paymentService := services.NewPaymentService(paymentRepo, eventRepo, userRepo, mailer)
	adminService := services.NewAdminService(userRepo, businessService, contributorService,
		jobRepo, articleRepo, eventRepo, paymentRepo, mailer)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		Auth:           handlers.NewAuthHandler(base, authService),
		Business:       handlers.NewBusinessHandler(base, businessService),
		Job:            handlers.NewJobHandler(base, jobService),
		JobApplication: handlers.NewJobApplicationHandler(base, applicationService),
		Contributor:    handlers.NewContributorHandler(base, contributorService),
		Article:        handlers.NewArticleHandler(base, articleService),
		Event:          handlers.NewEventHandler(base, eventService),
		Payment:        handlers.NewPaymentHandler(base, paymentService),
		Admin:          handlers.NewAdminHandler(base, adminService, businessService, paymentService),
	}

	engine := gin.New()
	routes.Setup(engine, appHandlers)
	return engine
}
