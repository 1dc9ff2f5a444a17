package consumer

import (
	"encoding/json"
	"log"

	"github.com/airlinehq/reservation-service/internal/models"
	"github.com/airlinehq/reservation-service/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
)

// FlightConsumer lands flight records pushed by the ops system into the
// local flight directory file.
type FlightConsumer struct {
	flights repository.FlightStore
}

func NewFlightConsumer(flights repository.FlightStore) *FlightConsumer {
	return &FlightConsumer{flights: flights}
}

// Start listens for messages and upserts flight records into the directory.
func (fc *FlightConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			fc.handleMessage(msg)
		}
		log.Println("[FlightConsumer] channel closed, stopping consumer")
	}()
}

func (fc *FlightConsumer) handleMessage(msg amqp.Delivery) {
	var flight models.Flight
	if err := json.Unmarshal(msg.Body, &flight); err != nil {
		log.Printf("[FlightConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	// A directory record needs a number and at least one seat.
	if flight.FlightNumber == "" || flight.TotalSeats <= 0 {
		log.Printf("[FlightConsumer] rejected flight record %q: missing number or seat count", flight.FlightNumber)
		msg.Nack(false, false)
		return
	}

	if err := fc.flights.Upsert(flight); err != nil {
		log.Printf("[FlightConsumer] failed to upsert flight %s: %v", flight.FlightNumber, err)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[FlightConsumer] synced flight %s: %s -> %s", flight.FlightNumber, flight.Origin, flight.Destination)
	msg.Ack(false)
}
