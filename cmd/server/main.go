package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/glosas/backend/internal/application/billing"
	disputeapp "github.com/glosas/backend/internal/application/dispute"
	identityapp "github.com/glosas/backend/internal/application/identity"
	importerapp "github.com/glosas/backend/internal/application/importer"
	partnerapp "github.com/glosas/backend/internal/application/partner"
	reportapp "github.com/glosas/backend/internal/application/report"
	"github.com/glosas/backend/internal/infrastructure/auth"
	"github.com/glosas/backend/internal/infrastructure/config"
	"github.com/glosas/backend/internal/infrastructure/logger"
	"github.com/glosas/backend/internal/infrastructure/persistence"
	"github.com/glosas/backend/internal/interfaces/http/handler"
	"github.com/glosas/backend/internal/interfaces/http/middleware"
	"github.com/glosas/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting glosas backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Token blacklist backs logout; Redis in deployments, in-memory otherwise
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing Redis", zap.Error(err))
			}
		}()
		blacklist = redisBlacklist
		log.Info("Redis token blacklist enabled", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Using in-memory token blacklist; revocations are lost on restart")
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	institutionRepo := persistence.NewGormInstitutionRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	glosaRepo := persistence.NewGormGlosaRepository(db.DB)
	responseRepo := persistence.NewGormResponseRepository(db.DB)
	reasonCodeRepo := persistence.NewGormReasonCodeRepository(db.DB)
	attachmentRepo := persistence.NewGormAttachmentRepository(db.DB)
	reportRepo := persistence.NewGormDisputeReportRepository(db.DB)
	txManager := persistence.NewGormTxManager(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo)
	institutionService := partnerapp.NewInstitutionService(institutionRepo)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, institutionRepo)
	glosaService := disputeapp.NewGlosaService(glosaRepo, responseRepo, invoiceRepo, reasonCodeRepo, txManager, log)
	reasonCodeService := disputeapp.NewReasonCodeService(reasonCodeRepo)
	attachmentService := disputeapp.NewAttachmentService(attachmentRepo, glosaRepo, responseRepo)
	invoiceImportService := importerapp.NewInvoiceImportService(invoiceRepo, institutionRepo, cfg.Import.MaxRowErrors, log)
	glosaImportService := importerapp.NewGlosaImportService(glosaRepo, reasonCodeRepo, invoiceRepo, cfg.Import.MaxRowErrors, log)
	reportService := reportapp.NewReportService(reportRepo, log)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	authMW := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler(db.DB)).
		Register(handler.NewAuthHandler(authService, userService, authMW)).
		Register(handler.NewUserHandler(userService, authMW)).
		Register(handler.NewInstitutionHandler(institutionService, authMW)).
		Register(handler.NewReasonCodeHandler(reasonCodeService, authMW)).
		Register(handler.NewInvoiceHandler(invoiceService, glosaService, authMW)).
		Register(handler.NewGlosaHandler(glosaService, authMW)).
		Register(handler.NewAttachmentHandler(attachmentService, authMW)).
		Register(handler.NewImportHandler(invoiceImportService, glosaImportService, cfg.Import, authMW)).
		Register(handler.NewReportHandler(reportService, authMW))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
