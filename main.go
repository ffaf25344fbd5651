package main

import (
	"log"

	"github.com/gigbook/gigbook/config"
	"github.com/gigbook/gigbook/internal/handler"
	"github.com/gigbook/gigbook/internal/middleware"
	"github.com/gigbook/gigbook/internal/repository"
	"github.com/gigbook/gigbook/internal/service"
	"github.com/gigbook/gigbook/pkg/database"
	"github.com/gigbook/gigbook/pkg/rabbitmq"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Optional: listing lifecycle notifications
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RABBITMQ_URL not set, publishing disabled")
	}

	// Repositories
	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)

	// Services
	venueSvc := service.NewVenueService(venueRepo, showRepo, publisher)
	artistSvc := service.NewArtistService(artistRepo, showRepo, publisher)
	showSvc := service.NewShowService(showRepo, artistRepo, venueRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "gigbook"})
	})

	handler.NewHomeHandler(venueSvc, artistSvc).RegisterRoutes(e)
	handler.NewVenueHandler(venueSvc).RegisterRoutes(e)
	handler.NewArtistHandler(artistSvc).RegisterRoutes(e)
	handler.NewShowHandler(showSvc, artistSvc, venueSvc).RegisterRoutes(e)

	log.Printf("gigbook starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
