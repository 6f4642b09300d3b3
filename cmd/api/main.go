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

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/cart"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/events"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/session"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/repository"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/backend"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/memory"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/postgres"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/TiendaEmpeno-bff/internal/interfaces/http"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/config"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/logger"
)

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
		Str("backend", cfg.Backend.BaseURL).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacén local por contexto de navegador (análogo de localStorage).
	var almacen repository.AlmacenLocal
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		almacen = postgres.NewAlmacenLocalRepository(pool)
	case "redis":
		rstore, err := redisstore.New(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rstore.Close()
		almacen = rstore
	default:
		almacen = memory.New()
	}

	// El bus acopla el 401 ambiental del backend con el servicio de sesión.
	bus := events.NewBus()
	sesionesUC := session.NewSesionUseCase(almacen, bus, log)
	carritoUC := cart.NewCarritoUseCase(almacen, log)
	api := backend.NewCliente(cfg.Backend, almacen, bus, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda-Empeño BFF",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sesiones: sesionesUC,
		Carrito:  carritoUC,
		API:      api,
		Contexto: cfg.Contexto,
		Log:      log,
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
