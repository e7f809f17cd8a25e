package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"libreria/internal/config"
	"libreria/internal/http/handlers"
	applog "libreria/internal/log"
	"libreria/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "error interno"})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Info(c, "rate.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"detail": "demasiadas solicitudes"})
		},
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db)

	inv := app.Group("/inventario-pv")
	inv.Get("/", deps.InventarioHandler.List)
	inv.Post("/", deps.InventarioHandler.Add)
	inv.Post("/:id/ajustar", deps.InventarioHandler.Adjust)
	inv.Get("/por-pv/:pv_id", deps.InventarioHandler.ListByPuntoVenta)

	libros := app.Group("/libros")
	libros.Post("/", deps.LibroHandler.Create)
	libros.Get("/", deps.LibroHandler.List)
	libros.Get("/:id", deps.LibroHandler.Get)
	libros.Get("/:id/materias", deps.LibroHandler.Materias)
	libros.Patch("/:id", deps.LibroHandler.Update)
	libros.Delete("/:id", deps.LibroHandler.Delete)

	app.Get("/papel/", deps.PapelHandler.List)
	app.Get("/materias_primas/", deps.MateriaHandler.List)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "no encontrado"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
