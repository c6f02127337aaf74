package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"provision-manager/core/config"
	"provision-manager/core/dataset"
	"provision-manager/core/loader"
	"provision-manager/core/logger"
	"provision-manager/core/middleware/auth"
	"provision-manager/core/middleware/rayid"

	"provision-manager/feature/devices"
	"provision-manager/feature/directory"
	"provision-manager/feature/portfolio"
	"provision-manager/feature/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "provision-manager/docs/swagger"
)

// @title Provision Manager API
// @version 1.0
// @description API for IT provisioning, device inventory, and SaaS spend reporting.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the provision manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Open the dataset source and verify the exports parse.
		source := dataset.NewSource(cfg.Data)
		snap, err := source.Snapshot()
		if err != nil {
			logg.Fatal("Failed to load CSV exports", zap.Error(err))
		}
		logg.Info("Datasets loaded",
			zap.Int("employees", len(snap.Employees)),
			zap.Int("devices", len(snap.Devices)),
			zap.Int("portfolio_accounts", len(snap.Portfolio)),
		)

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(directory.NewFeature(source, logg))
		mgr.Register(devices.NewFeature(source, logg))
		mgr.Register(portfolio.NewFeature(source, logg))
		mgr.Register(reconcile.NewFeature(source, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// Admin reload: drop the memoized snapshot so the next request
		// re-reads the CSV exports.
		app.Post("/admin/reload", func(c *fiber.Ctx) error {
			source.Reset()
			logger.WithRayID(logg, c).Info("Dataset cache reset")
			return c.JSON(fiber.Map{"status": "reloaded"})
		})

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
