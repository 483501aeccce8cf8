package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/ayush2328/Exam-Portal/api/swagger"
	"github.com/ayush2328/Exam-Portal/internal/handler"
	internalmiddleware "github.com/ayush2328/Exam-Portal/internal/middleware"
	"github.com/ayush2328/Exam-Portal/internal/repository"
	"github.com/ayush2328/Exam-Portal/internal/service"
	"github.com/ayush2328/Exam-Portal/pkg/cache"
	"github.com/ayush2328/Exam-Portal/pkg/config"
	"github.com/ayush2328/Exam-Portal/pkg/database"
	"github.com/ayush2328/Exam-Portal/pkg/export"
	"github.com/ayush2328/Exam-Portal/pkg/logger"
	corsmiddleware "github.com/ayush2328/Exam-Portal/pkg/middleware/cors"
	reqidmiddleware "github.com/ayush2328/Exam-Portal/pkg/middleware/requestid"
)

// @title Exam Portal API
// @version 1.0.0
// @description Admit card and exam session backend
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

	// Explicit startup initialization: the store must be reachable at
	// boot, replacing the legacy connect-on-class-load behaviour.
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	store := repository.NewExamStore(db)
	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, true)
	}

	validate := validator.New()
	examSvc := service.NewExamService(store, cacheSvc, metricsSvc, validate, logr)
	admitSvc := service.NewAdmitCardService(store, export.NewAdmitCardRenderer(), metricsSvc, logr)

	examHandler := handler.NewExamHandler(examSvc)
	studentHandler := handler.NewStudentHandler(admitSvc)
	admitHandler := handler.NewAdmitCardHandler(admitSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(internalmiddleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.POST("/addExamSession", examHandler.AddExamSession)
	r.GET("/getSubjects", examHandler.GetSubjects)
	r.GET("/getExamSessions", examHandler.GetExamSessions)
	r.GET("/getStudents", studentHandler.GetStudents)
	r.GET("/getStudent", studentHandler.GetStudent)
	r.GET("/admitCard", admitHandler.AdmitCard)
	r.GET("/metrics", metricsHandler.Metrics)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
