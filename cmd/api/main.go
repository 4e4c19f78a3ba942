package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/cinejournal/docs"
	pkgvalidator "github.com/johnquangdev/cinejournal/pkg/validator"

	"github.com/johnquangdev/cinejournal/internal/adapter/handler"
	"github.com/johnquangdev/cinejournal/internal/adapter/repository"
	"github.com/johnquangdev/cinejournal/internal/infrastructure/cache"
	"github.com/johnquangdev/cinejournal/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/cinejournal/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/cinejournal/internal/usecase/insight"
	"github.com/johnquangdev/cinejournal/internal/usecase/journal"
	pkgai "github.com/johnquangdev/cinejournal/pkg/ai"
	"github.com/johnquangdev/cinejournal/pkg/config"
	"github.com/johnquangdev/cinejournal/pkg/logger"
)

// @title           CineJournal API
// @version         1.0
// @description     Voice journaling API that turns spoken reflections into cinematic monologues

// @BasePath  /api

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	ctx := context.Background()

	// Initialize Database
	zl.Info("connecting to mongodb", zap.String("database", cfg.Mongo.Database))
	mongoClient, db, err := database.NewMongoDB(ctx, cfg)
	if err != nil {
		zl.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer database.CloseDB(mongoClient)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		zl.Fatal("failed to create indexes", zap.Error(err))
	}

	// Initialize cache: Redis when configured, otherwise in-process
	var insightCache cache.Cache
	if cfg.Redis.Addr != "" {
		zl.Info("connecting to redis", zap.String("addr", cfg.Redis.Addr))
		redisClient, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			zl.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		insightCache = cache.NewRedisCache(redisClient)
	} else {
		zl.Info("redis not configured, using in-memory cache")
		mem := cache.NewMemoryStore(time.Minute)
		defer mem.Close()
		insightCache = mem
	}

	// Initialize repositories
	entryRepo := repository.NewJournalEntryRepository(db)
	insightRepo := repository.NewAIInsightRepository(db)

	// Initialize AI components
	transcriber, closeTranscriber := newTranscriber(ctx, cfg, zl)
	defer closeTranscriber()
	if !transcriber.Configured() {
		zl.Warn("transcription provider not configured, uploads will be rejected", zap.String("provider", transcriber.Name()))
	}

	gemini, err := pkgai.NewGeminiClient(ctx, &cfg.Gemini, cfg.Generation, zl)
	if err != nil {
		zl.Fatal("failed to initialize gemini", zap.Error(err))
	}
	defer gemini.Close()
	if !gemini.Configured() {
		zl.Warn("gemini not configured, cinematic rewrite and insights are disabled")
	}

	// Initialize services
	journalService := journal.NewService(entryRepo, transcriber, gemini, insightCache, journal.Options{
		PipelineTimeout: cfg.Pipeline.Timeout,
		InsightsTTL:     cfg.Cache.InsightsTTL,
		Location:        cfg.InsightLocation(),
	}, zl)

	insightService := insight.NewService(entryRepo, insightRepo, gemini, insight.Options{
		Window:     cfg.Insight.Window,
		MinEntries: cfg.Insight.MinEntries,
		Timeout:    cfg.Insight.Timeout,
	}, zl)

	var scheduler *insight.Scheduler
	if cfg.Insight.Enabled {
		scheduler, err = insight.NewScheduler(insightService, cfg.Insight.Schedule, cfg.InsightLocation(), zl)
		if err != nil {
			zl.Fatal("failed to schedule insight job", zap.Error(err))
		}
		scheduler.Start()
	}

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(zl, cfg.Upload.MaxBytes)

	e.Use(middleware.Recover())
	e.Use(httpmw.RequestLogger(zl))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.GetCORSOrigins(),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))
	// Multipart framing adds a little over the file itself
	e.Use(middleware.BodyLimit(strconv.FormatInt(cfg.Upload.MaxBytes+(1<<20), 10) + "B"))

	journalHandler := handler.NewJournalHandler(journalService, cfg.Upload.MaxBytes, zl)
	insightHandler := handler.NewInsightHandler(insightService, zl)
	router := handler.NewRouter(journalHandler, insightHandler, cfg.IsDevelopment())
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		zl.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.String("transcription_provider", transcriber.Name()),
		)

		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server stopped gracefully")
}

// newTranscriber builds the configured speech-to-text provider
func newTranscriber(ctx context.Context, cfg *config.Config, zl *zap.Logger) (journal.Transcriber, func()) {
	if cfg.Transcription.Provider == config.ProviderGoogle {
		client, err := pkgai.NewGoogleSpeechClient(ctx, &cfg.Speech, cfg.Transcription, zl)
		if err != nil {
			zl.Fatal("failed to initialize google speech", zap.Error(err))
		}
		return client, func() { _ = client.Close() }
	}
	return pkgai.NewAssemblyAIClient(&cfg.Assembly, cfg.Transcription, zl), func() {}
}
