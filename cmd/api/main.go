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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/auth"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/inventory"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/usecase"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
	"github.com/qutubkothari/sak-erp-inventory/internal/infrastructure/postgres"
	"github.com/qutubkothari/sak-erp-inventory/internal/infrastructure/rediscache"
	httpRouter "github.com/qutubkothari/sak-erp-inventory/internal/interfaces/http"
	"github.com/qutubkothari/sak-erp-inventory/pkg/config"
	"github.com/qutubkothari/sak-erp-inventory/pkg/logger"
	"github.com/qutubkothari/sak-erp-inventory/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Format: cfg.Log.Format,
		Level:  cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("schema migrations")
		}
		log.Info().Msg("schema migrations applied")
	}

	metrics.Register()

	// Optional Redis read cache for the catalog; nil client = pass-through.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, catalog cache disabled")
			redisClient = nil
		}
	}
	cacheTTL := time.Duration(cfg.Redis.TTLSecs) * time.Second

	userRepo := postgres.NewUserRepository(pool)
	var warehouseRepo repository.WarehouseRepository = rediscache.NewWarehouseCache(postgres.NewWarehouseRepository(pool), redisClient, cacheTTL)
	var itemRepo repository.ItemRepository = rediscache.NewItemCache(postgres.NewItemRepository(pool), redisClient, cacheTTL)
	levelRepo := postgres.NewStockLevelRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	jobRepo := postgres.NewJobOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	alertEngine := inventory.NewAlertEngine(levelRepo, alertRepo, jobRepo, log)
	recorder := inventory.NewRecordMovementUseCase(txRunner, itemRepo, warehouseRepo, alertEngine, log)
	queries := inventory.NewStockQueryUseCase(levelRepo, movementRepo)
	reservationUC := inventory.NewReservationUseCase(txRunner, levelRepo)
	demoUC := inventory.NewDemoUseCase(txRunner, recorder, itemRepo, warehouseRepo, postgres.NewDemoRepository(pool), alertEngine, log)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SAK ERP Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		WarehouseUC:   warehouseUC,
		ItemUC:        itemUC,
		Recorder:      recorder,
		Queries:       queries,
		ReservationUC: reservationUC,
		AlertEngine:   alertEngine,
		DemoUC:        demoUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	if cfg.Alerts.SweepMinutes > 0 {
		go runAlertSweep(sweepCtx, pool, alertEngine, log, time.Duration(cfg.Alerts.SweepMinutes)*time.Minute)
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

// runAlertSweep periodically re-evaluates low-stock and job-order alerts for
// every tenant with stock. Failures are logged and the next tick retries.
func runAlertSweep(ctx context.Context, pool *pgxpool.Pool, engine *inventory.AlertEngine, log *logger.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		tenants, err := postgres.ListTenantIDs(ctx, pool)
		if err != nil {
			log.Error().Err(err).Msg("alert sweep: list tenants")
			continue
		}
		for _, tenantID := range tenants {
			if err := engine.CheckAllLowStock(ctx, tenantID); err != nil {
				log.Error().Err(err).Str("tenant_id", tenantID).Msg("alert sweep: low stock")
			}
			if err := engine.CheckJobOrderAlerts(ctx, tenantID); err != nil {
				log.Error().Err(err).Str("tenant_id", tenantID).Msg("alert sweep: job orders")
			}
		}
	}
}
