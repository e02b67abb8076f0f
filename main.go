package main

import (
	"log"

	"github.com/cetler74/dbcars-sub001/config"
	"github.com/cetler74/dbcars-sub001/internal/consumer"
	"github.com/cetler74/dbcars-sub001/internal/handler"
	"github.com/cetler74/dbcars-sub001/internal/middleware"
	"github.com/cetler74/dbcars-sub001/internal/repository"
	"github.com/cetler74/dbcars-sub001/internal/service"
	"github.com/cetler74/dbcars-sub001/pkg/database"
	"github.com/cetler74/dbcars-sub001/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// RabbitMQ consumer: sync bookings from the rental backend
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	// Repositories
	vehicleRepo := repository.NewVehicleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Services
	availabilitySvc := service.NewAvailabilityService(vehicleRepo, bookingRepo, noteRepo, cfg.Location())
	noteSvc := service.NewNoteService(noteRepo, vehicleRepo, publisher)
	bookingSvc := service.NewBookingService(bookingRepo, publisher)
	vehicleSvc := service.NewVehicleService(vehicleRepo)

	consumer.NewBookingConsumer(bookingSvc).Start(msgs)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = middleware.NewValidator()
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
	e.Use(echoMw.RequestID())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "availability-service"})
	})

	handler.NewVehicleHandler(vehicleSvc).RegisterRoutes(e)
	handler.NewAvailabilityHandler(availabilitySvc).RegisterRoutes(e)
	handler.NewNoteHandler(noteSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)

	log.Printf("Availability Service starting on :%s (time zone %s)", cfg.ServerPort, cfg.Location())
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
