package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidya_backend/internal/config"
	"vidya_backend/internal/controller"
	"vidya_backend/internal/generator"
	"vidya_backend/internal/repository"
	"vidya_backend/internal/service"
	"vidya_backend/pkg/database"
	"vidya_backend/pkg/logger"
	"vidya_backend/pkg/monitoring"
	"vidya_backend/pkg/security"
	"vidya_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user        *repository.UserRepository
	curriculum  *repository.CurriculumRepository
	content     *repository.ContentRepository
	progress    *repository.ProgressRepository
	quizAttempt *repository.QuizAttemptRepository
}

type services struct {
	storage    *service.StorageService
	auth       *service.AuthService
	curriculum *service.CurriculumService
	content    *service.ContentService
	user       *service.UserService
	quiz       *service.QuizService
	progress   *service.ProgressService
}

type controllers struct {
	auth       *controller.AuthController
	curriculum *controller.CurriculumController
	content    *controller.ContentController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		curriculum:  repository.NewCurriculumRepository(db),
		content:     repository.NewContentRepository(db),
		progress:    repository.NewProgressRepository(db),
		quizAttempt: repository.NewQuizAttemptRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.curriculum, cfg)
	s.curriculum = service.NewCurriculumService(repos.curriculum, repos.content)
	s.user = service.NewUserService(repos.user, repos.progress, repos.quizAttempt)

	gen := a.buildGenerator(cfg)
	s.content = service.NewContentService(repos.content, repos.curriculum, gen, rdb, s.storage)
	s.quiz = service.NewQuizService(repos.content, repos.quizAttempt, repos.user, s.user)
	s.progress = service.NewProgressService(repos.progress, repos.content, repos.user, s.user)

	return s
}

// buildGenerator assembles the strategy chain. The external provider is only
// registered when configured; the deterministic fallback is always last so
// content generation cannot fail outright.
func (a *App) buildGenerator(cfg *config.Config) *generator.Chain {
	var strategies []generator.Strategy
	if cfg.AI.BaseURL != "" {
		strategies = append(strategies, generator.NewProvider(cfg.AI, cfg.Video))
	}
	strategies = append(strategies, generator.NewFallback())
	return generator.NewChain(strategies...)
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.user, s.progress),
		curriculum: controller.NewCurriculumController(s.curriculum, s.user),
		content:    controller.NewContentController(s.content, s.quiz, s.progress, s.user),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	// Redis is optional; the content cache degrades to DB reads without it.
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, content cache disabled", zap.Error(err))
		rdb = nil
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("vidya-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
