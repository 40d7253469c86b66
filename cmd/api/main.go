package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	"github.com/jhoicas/stock-manager/internal/application/ports"
	"github.com/jhoicas/stock-manager/internal/application/stock"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
	"github.com/jhoicas/stock-manager/internal/infrastructure/email"
	"github.com/jhoicas/stock-manager/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/stock-manager/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-manager/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/stock-manager/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/stock-manager/internal/interfaces/http"
	"github.com/jhoicas/stock-manager/pkg/config"
	"github.com/jhoicas/stock-manager/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.App.CatalogBackend).
		Msg("iniciando aplicación")
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Catálogo y ajustes: PostgreSQL o memoria (desarrollo)
	var (
		catalog repository.CatalogProvider
		store   repository.ConfigStore
	)
	switch cfg.App.CatalogBackend {
	case config.BackendMemory:
		catalog = memory.NewCatalogRepository()
		store = memory.NewSettingsStore()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		catalog = postgres.NewProductRepository(pool, postgres.NewTxRunner(pool))
		store = postgres.NewSettingsRepository(pool)
	}

	// Caché de umbrales (opcional)
	if cfg.Redis.Enabled() {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, umbrales sin caché")
		} else {
			defer rdb.Close()
			store = infraredis.NewThresholdCache(rdb, store, cfg.Redis.ThresholdTTL, log)
		}
	}

	// Notificaciones: SMTP si está configurado, si no solo log
	var notifier ports.Notifier
	if cfg.SMTP.Enabled() {
		notifier = email.NewNotifier(email.NewSMTPSender(cfg.SMTP), cfg.Stock.AlertRecipients, cfg.App.Name)
		if len(cfg.Stock.AlertRecipients) == 0 {
			log.Warn().Msg("SMTP configurado sin ALERT_RECIPIENTS: las alertas fallarán")
		}
	} else {
		notifier = email.NewLogNotifier(log)
	}

	defaults := entity.Thresholds{Low: cfg.Stock.LowThreshold, Full: cfg.Stock.FullThreshold}
	settingsUC := stock.NewSettingsUseCase(store, defaults, log)
	reportGenerator := infrapdf.NewStockReportGenerator(cfg.App.Name, language.Make(cfg.App.Locale))
	stockUC := stock.NewStockUseCase(catalog, settingsUC, reportGenerator)
	importUC := stock.NewImportUseCase(catalog, log)
	alertUC := stock.NewAlertUseCase(catalog, settingsUC, notifier, log)

	limiter := httpRouter.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.RunCleanup(ctx, time.Minute)
	go alertUC.RunDigestLoop(ctx, cfg.Stock.DigestInterval)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 << 20,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Manager API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:    stockUC,
		SettingsUC: settingsUC,
		ImportUC:   importUC,
		AlertUC:    alertUC,
		Limiter:    limiter,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
