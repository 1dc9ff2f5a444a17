package main

import (
	"log"
	"os"
	"time"

	"github.com/airlinehq/reservation-service/config"
	"github.com/airlinehq/reservation-service/internal/consumer"
	"github.com/airlinehq/reservation-service/internal/handler"
	"github.com/airlinehq/reservation-service/internal/idgen"
	"github.com/airlinehq/reservation-service/internal/middleware"
	"github.com/airlinehq/reservation-service/internal/repository"
	"github.com/airlinehq/reservation-service/internal/service"
	"github.com/airlinehq/reservation-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("failed to create data dir %s: %v", cfg.DataDir, err)
	}

	// Stores
	generalStore := repository.NewReservationStore(cfg.ReservationsFile)
	agentStore := repository.NewReservationStore(cfg.AgentFile)
	cardStore := repository.NewCardStore(cfg.CardsFile)
	flightStore := repository.NewFlightStore(cfg.FlightsFile)

	// RabbitMQ: lifecycle events out, flight records in
	var events service.EventPublisher
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer pub.Close()
		events = pub

		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer mqConsumer.Close()

		msgs, err := mqConsumer.Consume()
		if err != nil {
			log.Fatalf("failed to start consuming: %v", err)
		}
		consumer.NewFlightConsumer(flightStore).Start(msgs)
	} else {
		log.Println("RABBIT_URL not set, running without the broker")
	}

	// Service
	gen := idgen.New(time.Now().UnixNano())
	svc := service.NewReservationService(generalStore, agentStore, cardStore, flightStore, gen, events)

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
		return c.JSON(200, map[string]string{"status": "ok", "service": "reservation-service"})
	})

	handler.NewReservationHandler(svc).RegisterRoutes(e)

	log.Printf("Reservation Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
