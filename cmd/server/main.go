package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hirenow/hirenow-backend/internal/config"
	"github.com/hirenow/hirenow-backend/internal/db"
	"github.com/hirenow/hirenow-backend/internal/goroutine"
	httpHandlers "github.com/hirenow/hirenow-backend/internal/http/handlers"
	httpRouter "github.com/hirenow/hirenow-backend/internal/http/router"
	"github.com/hirenow/hirenow-backend/internal/logger"
	"github.com/hirenow/hirenow-backend/internal/repository"
	"github.com/hirenow/hirenow-backend/internal/seed"
	"github.com/hirenow/hirenow-backend/internal/service"
	"github.com/hirenow/hirenow-backend/internal/store"
	"github.com/hirenow/hirenow-backend/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Локальный файл состояния.
	if err := os.MkdirAll(filepath.Dir(cfg.DataPath), 0o755); err != nil {
		log.Fatalf("main: не удалось создать каталог данных: %v", err)
	}

	dbConn, err := db.NewSQLite(ctx, cfg.DataPath)
	if err != nil {
		log.Fatalf("main: ошибка открытия базы: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.InitSchema(ctx, dbConn); err != nil {
		log.Fatalf("main: ошибка инициализации схемы: %v", err)
	}

	// Гидратация состояния: снимок из базы, иначе стартовые данные.
	snapshots := repository.NewSnapshotRepository(dbConn)
	appStore := store.New(snapshots, seed.MustLoad())
	appStore.Hydrate(ctx)

	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)

	// Вебсокеты.
	hub := ws.NewHub(ctx)
	goroutine.SafeGo(hub.Run)

	// Сервисы.
	sessionService := service.NewSessionService(appStore, tokenManager)
	profileService := service.NewProfileService(appStore)
	catalogService := service.NewCatalogService(appStore)
	ratingService := service.NewRatingService(appStore)
	projectService := service.NewProjectService(appStore)
	hireService := service.NewHireRequestService(appStore, hub)
	reportService := service.NewReportService(appStore)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(sessionService)
	laborerHandler := httpHandlers.NewLaborerHandler(profileService, catalogService, ratingService)
	contractorHandler := httpHandlers.NewContractorHandler(profileService, ratingService)
	projectHandler := httpHandlers.NewProjectHandler(projectService, hireService)
	hireHandler := httpHandlers.NewHireHandler(hireService)
	reportHandler := httpHandlers.NewReportHandler(reportService)
	wsHandler := httpHandlers.NewWSHandler(hub, tokenManager, wsOriginChecker(cfg.AllowedOrigins))
	healthHandler := httpHandlers.NewHealthHandler(appStore)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, laborerHandler, contractorHandler, projectHandler, hireHandler, reportHandler, wsHandler, healthHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// wsOriginChecker разрешает WebSocket подключения только с допустимых origins.
func wsOriginChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if origin == a {
				return true
			}
		}
		return false
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
