package main

import (
	"log"
	"os"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"fitbook/internal/config"
	"fitbook/internal/database"
	"fitbook/internal/metrics"
	"fitbook/internal/middleware"
	"fitbook/internal/modules/booking"
	"fitbook/internal/modules/catalog"
	"fitbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := newLogger(cfg)

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connect failed")
	}
	if err := repository.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	classRepo := repository.NewClassRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	m := metrics.New()

	bookingService := booking.NewService(bookingRepo, classRepo, cfg.DefaultTimezone, logger, m)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(classRepo, cfg.DefaultTimezone, logger)
	catalogHandler := catalog.NewHandler(catalogService)

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.Recovery(logger),
		middleware.RequestLogger(logger),
		middleware.CORS(),
		m.Middleware(),
	)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Fitness Booking API is running!"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	root := r.Group("/")
	{
		catalogHandler.RegisterRoutes(root)
		bookingHandler.RegisterRoutes(root)
	}

	logger.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(level).
		With().Timestamp().Str("service", "fitbook-api").
		Logger()

	if cfg.IsDev() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return logger
}
