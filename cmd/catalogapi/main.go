// Command catalogapi serves the catalog REST resources from a local sqlite
// file, for development against the admin.
package main

import (
	"context"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"catalogadmin/internal/config"
	"catalogadmin/internal/http/api"
	applog "catalogadmin/internal/log"
	"catalogadmin/internal/repos"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	db, err := repos.OpenDB(cfg.DevAPIDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "api.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		},
	})
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())

	api.New(db).Register(app)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	go func() {
		log.Printf("[catalogapi] dsn=%s listening on :%s", cfg.DevAPIDSN, cfg.DevAPIPort)
		if err := app.Listen(":" + cfg.DevAPIPort); err != nil {
			log.Fatal(err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(context.Background(), shutdownTimeout, map[string]gfshutdown.Operation{
		"http": func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
		"db": func(context.Context) error {
			return db.Close()
		},
	})
	os.Exit(<-wait)
}
