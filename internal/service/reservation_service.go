package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/airlinehq/reservation-service/internal/idgen"
	"github.com/airlinehq/reservation-service/internal/models"
	"github.com/airlinehq/reservation-service/internal/repository"
)

var (
	ErrFlightNotFound      = errors.New("flight not found")
	ErrInvalidSeat         = errors.New("invalid seat number")
	ErrSeatTaken           = errors.New("seat already reserved")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrPaymentPending      = errors.New("payment pending")
	ErrInvalidPayment      = errors.New("invalid payment details")
)

// EventPublisher pushes reservation lifecycle events to the broker. A nil
// publisher disables publishing.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

type ReservationService interface {
	Book(ctx context.Context, actor models.Actor, flightNumber, seat string, payment PaymentInput) (*models.Reservation, error)
	Cancel(ctx context.Context, actor models.Actor, reservationID string) error
	CheckIn(ctx context.Context, actor models.Actor, reservationID string) (*models.BoardingPass, error)
	ConfirmCashPayment(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error)
	ListByPassenger(ctx context.Context, actor models.Actor) ([]models.Reservation, error)
	SearchFlights(ctx context.Context, origin, destination string) ([]models.Flight, error)
}

type reservationService struct {
	general  repository.ReservationStore
	agent    repository.ReservationStore
	flights  repository.FlightDirectory
	idgen    *idgen.Generator
	payments paymentProcessor
	events   EventPublisher
}

func NewReservationService(
	general, agent repository.ReservationStore,
	cards repository.CardStore,
	flights repository.FlightDirectory,
	gen *idgen.Generator,
	events EventPublisher,
) ReservationService {
	return &reservationService{
		general:  general,
		agent:    agent,
		flights:  flights,
		idgen:    gen,
		payments: paymentProcessor{cards: cards},
		events:   events,
	}
}

// Book turns a (flight, seat, payer) request into a durable reservation.
// The flight record is copied into the reservation at this point; later
// directory edits do not touch it. Availability is checked against the
// general store, which holds every reservation regardless of who made it,
// so agent and self-service bookings cannot collide on a seat.
func (s *reservationService) Book(ctx context.Context, actor models.Actor, flightNumber, seat string, payment PaymentInput) (*models.Reservation, error) {
	flight, err := s.flights.FindByNumber(flightNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}

	if err := validateSeat(seat, flight.TotalSeats); err != nil {
		return nil, err
	}

	byPassenger, err := s.general.Load()
	if err != nil {
		return nil, err
	}
	if !seatFree(flightNumber, seat, byPassenger) {
		return nil, ErrSeatTaken
	}

	id := s.idgen.Next(func(candidate string) bool {
		_, err := s.general.FindByID(candidate)
		return err == nil
	})

	res := models.Reservation{
		ReservationID: id,
		PassengerName: actor.Username,
		Flight:        flight,
		SeatNumber:    seat,
	}
	if err := s.payments.Process(&res, payment); err != nil {
		return nil, err
	}

	if err := s.general.Save([]models.Reservation{res}); err != nil {
		return nil, err
	}
	if actor.IsAgent() {
		if err := s.agent.Save([]models.Reservation{res}); err != nil {
			return nil, err
		}
	}

	s.publish("reservation.created", res)
	return &res, nil
}

// Cancel removes the reservation from the general store and, symmetrically,
// from the agent store. A booking mirrored into the agent store must not
// survive there after cancellation; absence there is fine, since passenger
// self-service bookings were never mirrored.
func (s *reservationService) Cancel(ctx context.Context, actor models.Actor, reservationID string) error {
	if err := s.general.RemoveByID(reservationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReservationNotFound
		}
		return err
	}
	if err := s.agent.RemoveByID(reservationID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	s.publish("reservation.cancelled", map[string]string{
		"reservationID": reservationID,
		"cancelledBy":   actor.Username,
	})
	return nil
}

// CheckIn produces a boarding pass for one of the actor's paid
// reservations. An unpaid reservation cannot board.
func (s *reservationService) CheckIn(ctx context.Context, actor models.Actor, reservationID string) (*models.BoardingPass, error) {
	res, err := s.findOwned(actor, reservationID)
	if err != nil {
		return nil, err
	}
	if !res.IsPaid {
		return nil, ErrPaymentPending
	}
	return &models.BoardingPass{
		ReservationID: res.ReservationID,
		Passenger:     res.PassengerName,
		FlightNumber:  res.Flight.FlightNumber,
		Origin:        res.Flight.Origin,
		Destination:   res.Flight.Destination,
		DepartureTime: res.Flight.DepartureTime,
		Seat:          res.SeatNumber,
	}, nil
}

// ConfirmCashPayment flips a held reservation to paid and re-persists it.
// Confirming an already-paid or missing reservation is reported as not
// found.
func (s *reservationService) ConfirmCashPayment(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error) {
	res, err := s.findOwned(actor, reservationID)
	if err != nil {
		return nil, err
	}
	if !res.Held() {
		return nil, ErrReservationNotFound
	}

	res.IsPaid = true
	if err := s.general.UpdateByID(res); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if actor.IsAgent() {
		if err := s.agent.UpdateByID(res); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	s.publish("reservation.paid", res)
	return &res, nil
}

func (s *reservationService) ListByPassenger(ctx context.Context, actor models.Actor) ([]models.Reservation, error) {
	byPassenger, err := s.general.Load()
	if err != nil {
		return nil, err
	}
	return byPassenger[actor.Username], nil
}

// SearchFlights lists directory records, optionally filtered by origin and
// destination. Empty criteria match everything.
func (s *reservationService) SearchFlights(ctx context.Context, origin, destination string) ([]models.Flight, error) {
	flights, err := s.flights.LoadAll()
	if err != nil {
		return nil, err
	}
	matches := make([]models.Flight, 0, len(flights))
	for _, fl := range flights {
		if origin != "" && fl.Origin != origin {
			continue
		}
		if destination != "" && fl.Destination != destination {
			continue
		}
		matches = append(matches, fl)
	}
	return matches, nil
}

func (s *reservationService) findOwned(actor models.Actor, reservationID string) (models.Reservation, error) {
	res, err := s.general.FindByID(reservationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Reservation{}, ErrReservationNotFound
		}
		return models.Reservation{}, err
	}
	if res.PassengerName != actor.Username {
		return models.Reservation{}, ErrReservationNotFound
	}
	return res, nil
}

func (s *reservationService) publish(routingKey string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(routingKey, payload); err != nil {
		log.Printf("[ReservationService] publish %s: %v", routingKey, err)
	}
}

// validateSeat bounds-checks the label against the flight's seat count.
// Labels stay free text otherwise: "14" and "014" are distinct seats.
func validateSeat(seat string, totalSeats int) error {
	n, err := strconv.Atoi(seat)
	if err != nil {
		return fmt.Errorf("%w: %q is not numeric", ErrInvalidSeat, seat)
	}
	if n < 1 || n > totalSeats {
		return fmt.Errorf("%w: %q out of range 1-%d", ErrInvalidSeat, seat, totalSeats)
	}
	return nil
}

// seatFree scans every stored reservation for the flight. A held (unpaid)
// reservation still occupies its seat.
func seatFree(flightNumber, seat string, byPassenger map[string][]models.Reservation) bool {
	for _, list := range byPassenger {
		for _, res := range list {
			if res.Flight.FlightNumber == flightNumber && res.SeatNumber == seat {
				return false
			}
		}
	}
	return true
}
