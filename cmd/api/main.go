package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/contest-api/internal/config"
	"github.com/yourusername/contest-api/internal/domain/repository"
	"github.com/yourusername/contest-api/internal/handler"
	"github.com/yourusername/contest-api/internal/middleware"
	memRepo "github.com/yourusername/contest-api/internal/repository/memory"
	pgRepo "github.com/yourusername/contest-api/internal/repository/postgres"
	"github.com/yourusername/contest-api/internal/service"
	"github.com/yourusername/contest-api/pkg/database"
)

// repositories объединяет все репозитории одного бэкенда
type repositories struct {
	users        repository.UserRepository
	contests     repository.ContestRepository
	participants repository.ParticipantRepository
	winners      repository.WinnerRepository
	stats        repository.StatsRepository
}

// newRepositories выбирает бэкенд хранилища по конфигурации.
// Выбор происходит один раз при старте; переключение в рантайме не поддерживается.
func newRepositories(cfg *config.Config) (*repositories, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendMemory:
		log.Println("Хранилище: in-memory (данные не переживут перезапуск)")
		store := memRepo.NewStore()
		return &repositories{
			users:        memRepo.NewUserRepo(store),
			contests:     memRepo.NewContestRepo(store),
			participants: memRepo.NewParticipantRepo(store),
			winners:      memRepo.NewWinnerRepo(store),
			stats:        memRepo.NewStatsRepo(store),
		}, nil

	default: // postgres; валидность значения проверена при загрузке конфигурации
		db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
		if err != nil {
			return nil, err
		}
		if err := database.MigrateDB(db); err != nil {
			return nil, err
		}
		return &repositories{
			users:        pgRepo.NewUserRepo(db),
			contests:     pgRepo.NewContestRepo(db),
			participants: pgRepo.NewParticipantRepo(db),
			winners:      pgRepo.NewWinnerRepo(db),
			stats:        pgRepo.NewStatsRepo(db),
		}, nil
	}
}

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории выбранного бэкенда
	repos, err := newRepositories(cfg)
	if err != nil {
		log.Printf("Failed to initialize storage: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	userService := service.NewUserService(repos.users)
	contestService := service.NewContestService(repos.contests, repos.participants, repos.winners)
	statsService := service.NewStatsService(repos.stats)

	// Инициализируем обработчики
	userHandler := handler.NewUserHandler(userService, contestService)
	contestHandler := handler.NewContestHandler(contestService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		// Production: не доверять прокси-заголовкам (защита от IP spoofing)
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiting для мутирующих эндпоинтов; без Redis лимитер отключён
	writeGuard := func(c *gin.Context) { c.Next() }
	if cfg.Redis.Addr != "" {
		redisClient, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v. Rate limiting отключён.", err)
		} else {
			limiter := middleware.NewRateLimiter(redisClient)
			limitCfg := middleware.DefaultWriteRateLimitConfig()
			if cfg.RateLimit.MaxRequests > 0 {
				limitCfg.MaxRequests = cfg.RateLimit.MaxRequests
			}
			if cfg.RateLimit.WindowSec > 0 {
				limitCfg.Window = time.Duration(cfg.RateLimit.WindowSec) * time.Second
			}
			writeGuard = limiter.Limit(limitCfg)
			log.Println("Rate limiting включён для мутирующих эндпоинтов")
		}
	}

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Пользователи
		users := api.Group("/users")
		{
			users.POST("", writeGuard, userHandler.CreateUser)
			users.GET("/wallet/:address", userHandler.GetUserByWallet)
			users.GET("/:id/created-contests", userHandler.GetCreatedContests)
			users.GET("/:id/participated-contests", userHandler.GetParticipatedContests)
		}

		// Конкурсы
		contests := api.Group("/contests")
		{
			contests.GET("", contestHandler.ListContests)
			contests.POST("", writeGuard, contestHandler.CreateContest)
			contests.GET("/:id", contestHandler.GetContest)
			contests.PUT("/:id", writeGuard, contestHandler.UpdateContest)
			contests.POST("/:id/join", writeGuard, contestHandler.JoinContest)
			contests.GET("/:id/participants", contestHandler.GetParticipants)
			contests.GET("/:id/winners", contestHandler.GetWinners)
		}

		// Статистика платформы
		api.GET("/stats", statsHandler.GetPlatformStats)
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown с таймаутом
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
