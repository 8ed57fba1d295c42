package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/saraswaticlasses/institute-api/api/swagger"
	"github.com/saraswaticlasses/institute-api/internal/handler"
	"github.com/saraswaticlasses/institute-api/internal/middleware"
	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/repository"
	"github.com/saraswaticlasses/institute-api/internal/service"
	"github.com/saraswaticlasses/institute-api/internal/store"
	"github.com/saraswaticlasses/institute-api/pkg/cache"
	"github.com/saraswaticlasses/institute-api/pkg/config"
	"github.com/saraswaticlasses/institute-api/pkg/database"
	"github.com/saraswaticlasses/institute-api/pkg/logger"
	corsmiddleware "github.com/saraswaticlasses/institute-api/pkg/middleware/cors"
	reqidmiddleware "github.com/saraswaticlasses/institute-api/pkg/middleware/requestid"
)

// @title Saraswati Classes API
// @version 1.0.0
// @description Catalog, enrollment workflow and student access for the institute site
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	snapshots, err := newStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init snapshot store", "backend", cfg.Store.Backend, "error", err)
	}
	snapshots = store.WithObserver(snapshots, metricsSvc.ObserveStoreApply)
	defer snapshots.Close() //nolint:errcheck
	logr.Sugar().Infow("snapshot store ready", "backend", cfg.Store.Backend)

	courseRepo := repository.NewCourseRepository(snapshots)
	seriesRepo := repository.NewTestSeriesRepository(snapshots)
	posterRepo := repository.NewHeroPosterRepository(snapshots)
	studentRepo := repository.NewStudentRepository(snapshots)
	requestRepo := repository.NewEnrollmentRepository(snapshots)
	popupRepo := repository.NewPopupRepository(snapshots)
	sessionRepo := repository.NewSessionRepository(snapshots)

	authSvc := service.NewAuthService(studentRepo, sessionRepo, service.AuthConfig{
		AdminEmail:    cfg.Admin.Email,
		AdminPassword: cfg.Admin.Password,
		TokenSecret:   cfg.JWT.Secret,
		TokenExpiry:   cfg.JWT.Expiration,
		Issuer:        cfg.JWT.Issuer,
	}, nil, logr)
	catalogSvc := service.NewCatalogService(courseRepo, seriesRepo, posterRepo, studentRepo, requestRepo, snapshots, nil, logr)
	enrollmentSvc := service.NewEnrollmentService(requestRepo, studentRepo, courseRepo, seriesRepo, snapshots, nil, logr)
	studentSvc := service.NewStudentService(studentRepo, courseRepo, seriesRepo, snapshots, nil, logr)
	popupSvc := service.NewPopupService(popupRepo, nil, logr)
	exportSvc := service.NewExportService(requestRepo, logr)

	authHandler := handler.NewAuthHandler(authSvc, metricsSvc)
	courseHandler := handler.NewCourseHandler(catalogSvc)
	seriesHandler := handler.NewTestSeriesHandler(catalogSvc)
	posterHandler := handler.NewHeroPosterHandler(catalogSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc, metricsSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	popupHandler := handler.NewPopupHandler(popupSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	// Public surface: catalogs, landing content and the enrollment form.
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/session", authHandler.Session)
	api.GET("/courses", courseHandler.List)
	api.GET("/courses/:id", courseHandler.Get)
	api.GET("/test-series", seriesHandler.List)
	api.GET("/test-series/:id", seriesHandler.Get)
	api.GET("/hero-posters", posterHandler.ListEnabled)
	api.GET("/testimonials", courseHandler.Testimonials)
	api.GET("/popup", popupHandler.Get)
	api.POST("/enrollments", enrollmentHandler.Submit)

	admin := api.Group("/admin", middleware.JWT(authSvc), middleware.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/enrollments", enrollmentHandler.List)
		admin.POST("/enrollments/:id/approve", enrollmentHandler.Approve)
		admin.GET("/enrollments/:id/credentials", enrollmentHandler.Credentials)
		admin.POST("/enrollments/:id/credentials", enrollmentHandler.ConfirmCredentials)
		admin.PATCH("/enrollments/:id/status", enrollmentHandler.UpdateStatus)

		admin.POST("/courses", courseHandler.Create)
		admin.DELETE("/courses/:id", courseHandler.Delete)

		admin.POST("/test-series", seriesHandler.Create)
		admin.PATCH("/test-series/:id", seriesHandler.Update)
		admin.DELETE("/test-series/:id", seriesHandler.Delete)

		admin.GET("/hero-posters", posterHandler.List)
		admin.POST("/hero-posters", posterHandler.Create)
		admin.PATCH("/hero-posters/:id", posterHandler.Update)
		admin.DELETE("/hero-posters/:id", posterHandler.Delete)

		admin.GET("/students", studentHandler.List)
		admin.PATCH("/students/:id", studentHandler.Update)

		admin.PUT("/popup", popupHandler.Update)

		if cfg.Exports.Enabled {
			admin.GET("/exports/enrollments", exportHandler.EnrollmentReport)
		}
	}

	student := api.Group("/student", middleware.JWT(authSvc), middleware.RequireRoles(models.RoleStudent))
	{
		student.GET("/dashboard", studentHandler.Dashboard)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// newStore builds the snapshot store selected by configuration. Every
// backend persists the same key to JSON document layout.
func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendFile:
		return store.NewFileStore(cfg.Store.FilePath)
	case config.StoreBackendRedis:
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(client, cfg.Store.RedisPrefix), nil
	case config.StoreBackendPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		return store.NewPGStore(db)
	case config.StoreBackendMemory:
		return store.NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
