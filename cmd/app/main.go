package main

import (
	"database/sql"
	"os"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/storelane/shop-admin-backend/internal/auth"
	"github.com/storelane/shop-admin-backend/internal/config"
	"github.com/storelane/shop-admin-backend/internal/dashboard"
	"github.com/storelane/shop-admin-backend/internal/logging"
	"github.com/storelane/shop-admin-backend/internal/middleware"
	"github.com/storelane/shop-admin-backend/internal/order"
	"github.com/storelane/shop-admin-backend/internal/product"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logging.Init("shop-admin", cfg.LogFile)

	if cfg.JWTSecret == "" {
		log.Error("JWT_SECRET is not set")
		os.Exit(1)
	}
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Error("ADMIN_USERNAME / ADMIN_PASSWORD are not set")
		os.Exit(1)
	}

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	app := fiber.New()
	setupCORS(app)
	app.Use(middleware.RequestLogger(logging.New("http")))
	app.Use(middleware.Metrics())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authHandler := auth.NewHandler(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	authHandler.RegisterPublicRoutes(app)

	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo)
	orderHandler := order.NewHandler(orderService)

	productHandler := product.NewHandler(product.NewService(product.NewPostgresRepository(db)))

	dashboardHandler := dashboard.NewHandler(dashboard.NewService(dashboard.NewPostgresRepository(db), orderRepo))

	// seeding stays outside the session gate; it is env-gated on its own
	orderHandler.RegisterDevRoutes(app)

	// everything registered below requires a valid admin session cookie
	app.Use(auth.Protect(cfg.JWTSecret))

	orderHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	dashboardHandler.RegisterProtectedRoutes(app)

	log.Info("starting server", "addr", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Error("server stopped", "error", err.Error())
		os.Exit(1)
	}
}

func setupCORS(app *fiber.App) {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		// admin UI dev server; credentials forbid a wildcard here
		origin = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))
}

func mustOpenDB(url string) *sql.DB {
	if url == "" {
		logging.Base().Error("DATABASE_URL is not set")
		os.Exit(1)
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		logging.Base().Error("open database", "error", err.Error())
		os.Exit(1)
	}
	if err := db.Ping(); err != nil {
		logging.Base().Error("ping database", "error", err.Error())
		os.Exit(1)
	}
	return db
}
