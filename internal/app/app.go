package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lernraum_backend/internal/config"
	"lernraum_backend/internal/controller"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/service"
	"lernraum_backend/pkg/database"
	"lernraum_backend/pkg/logger"
	"lernraum_backend/pkg/monitoring"
	"lernraum_backend/pkg/security"
	"lernraum_backend/pkg/tracing"

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
	user         *repository.UserRepository
	invite       *repository.InviteRepository
	news         *repository.NewsRepository
	week         *repository.WeekRepository
	forum        *repository.ForumRepository
	qa           *repository.QARepository
	project      *repository.ProjectRepository
	tool         *repository.ToolRepository
	presentation *repository.PresentationRepository
	survey       *repository.SurveyRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	invite       *service.InviteService
	news         *service.NewsService
	week         *service.WeekService
	forum        *service.ForumService
	qa           *service.QAService
	project      *service.ProjectService
	tool         *service.ToolService
	presentation *service.PresentationService
	survey       *service.SurveyService
	storage      *service.StorageService
	idea         *service.IdeaService
	views        *service.ViewCounterService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	invite       *controller.InviteController
	news         *controller.NewsController
	week         *controller.WeekController
	forum        *controller.ForumController
	qa           *controller.QAController
	project      *controller.ProjectController
	tool         *controller.ToolController
	presentation *controller.PresentationController
	survey       *controller.SurveyController
	idea         *controller.IdeaController
	file         *controller.FileController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		invite:       repository.NewInviteRepository(db),
		news:         repository.NewNewsRepository(db),
		week:         repository.NewWeekRepository(db),
		forum:        repository.NewForumRepository(db),
		qa:           repository.NewQARepository(db),
		project:      repository.NewProjectRepository(db),
		tool:         repository.NewToolRepository(db),
		presentation: repository.NewPresentationRepository(db),
		survey:       repository.NewSurveyRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.invite, cfg)
	s.user = service.NewUserService(repos.user)
	s.invite = service.NewInviteService(repos.invite)
	s.news = service.NewNewsService(repos.news)
	s.week = service.NewWeekService(repos.week)
	s.forum = service.NewForumService(repos.forum)
	s.qa = service.NewQAService(repos.qa)
	s.project = service.NewProjectService(repos.project)
	s.tool = service.NewToolService(repos.tool)
	s.presentation = service.NewPresentationService(repos.presentation)
	s.survey = service.NewSurveyService(repos.survey)
	s.idea = service.NewIdeaService(cfg, rdb)
	s.views = service.NewViewCounterService(rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth, s.user),
		user:         controller.NewUserController(s.user),
		invite:       controller.NewInviteController(s.invite),
		news:         controller.NewNewsController(s.news, s.views),
		week:         controller.NewWeekController(s.week, s.storage),
		forum:        controller.NewForumController(s.forum),
		qa:           controller.NewQAController(s.qa, s.views),
		project:      controller.NewProjectController(s.project),
		tool:         controller.NewToolController(s.tool, s.storage),
		presentation: controller.NewPresentationController(s.presentation),
		survey:       controller.NewSurveyController(s.survey),
		idea:         controller.NewIdeaController(s.idea),
		file:         controller.NewFileController(s.storage),
		health:       controller.NewHealthController(db),
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
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("lernraum-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
		router.Static("/api/uploads", cfg.Storage.LocalPath)
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

	// Auf Signal warten und den Server geordnet herunterfahren
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
