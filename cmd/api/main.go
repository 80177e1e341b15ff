package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Almacen-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// repos agrupa los adaptadores del backing elegido por STORE_DRIVER.
type repos struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	users      repository.UserRepository
	logs       repository.InventoryLogRepository
	txRunner   inventory.TxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			products:   postgres.NewProductRepository(pool),
			warehouses: postgres.NewWarehouseRepository(pool),
			users:      postgres.NewUserRepository(pool),
			logs:       postgres.NewInventoryLogRepository(pool),
			txRunner:   postgres.NewTxRunner(pool),
		}
	default: // memory
		store := memory.NewStore(nil)
		if cfg.Store.Seed {
			if err := memory.Seed(store); err != nil {
				log.Fatal().Err(err).Msg("seed del store en memoria")
			}
			log.Info().
				Str("admin", memory.SeedAdminEmail).
				Msg("datos demo sembrados")
		}
		r = repos{
			products:   memory.NewProductRepository(store),
			warehouses: memory.NewWarehouseRepository(store),
			users:      memory.NewUserRepository(store),
			logs:       memory.NewInventoryLogRepository(store),
			txRunner:   memory.NewTxRunner(store),
		}
	}

	productUC := usecase.NewProductUseCase(r.products, r.warehouses, nil)
	warehouseUC := usecase.NewWarehouseUseCase(r.warehouses, nil)
	userUC := usecase.NewUserUseCase(r.users, nil)
	updateStockUC := inventory.NewUpdateStockUseCase(r.txRunner, nil)
	logQueryUC := inventory.NewLogQueryUseCase(r.logs, nil)
	reportUC := report.NewReportUseCase(r.products, r.warehouses, infrapdf.NewMarotoReportGenerator(), nil)
	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, nil)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.Rate.Max,
		Expiration: time.Duration(cfg.Rate.Seconds) * time.Second,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		UserUC:      userUC,
		AuthUC:      authUC,
		UpdateStock: updateStockUC,
		LogQuery:    logQueryUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
