package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleReservation(paid bool) Reservation {
	return Reservation{
		ReservationID: "K457",
		PassengerName: "alice",
		Flight: Flight{
			FlightNumber:  "AA100",
			Origin:        "Cairo",
			Destination:   "London",
			DepartureTime: "2026-09-01 08:30",
			ArrivalTime:   "2026-09-01 13:10",
			AircraftType:  "A320",
			TotalSeats:    150,
			Status:        "On Time",
			Price:         "450.00",
		},
		SeatNumber:     "12",
		PaymentMethod:  PaymentMethodCash,
		PaymentDetails: "",
		IsPaid:         paid,
	}
}

func TestReservation_JSONRoundTrip(t *testing.T) {
	for _, paid := range []bool{false, true} {
		original := sampleReservation(paid)

		data, err := json.Marshal(original)
		assert.NoError(t, err)

		var decoded Reservation
		assert.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original, decoded)
	}
}

func TestReservation_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(sampleReservation(false))
	assert.NoError(t, err)

	var raw map[string]any
	assert.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"reservationID", "passengerName", "flight", "seatNumber", "paymentMethod", "paymentDetails", "isPaid"} {
		assert.Contains(t, raw, key)
	}

	flight, ok := raw["flight"].(map[string]any)
	assert.True(t, ok)
	for _, key := range []string{"flightNumber", "origin", "destination", "departureTime", "arrivalTime", "aircraftType", "totalSeats", "status", "price"} {
		assert.Contains(t, flight, key)
	}
}

func TestReservation_Held(t *testing.T) {
	res := sampleReservation(false)
	assert.True(t, res.Held())

	res.IsPaid = true
	assert.False(t, res.Held())

	card := sampleReservation(false)
	card.PaymentMethod = "4111111111111111"
	assert.False(t, card.Held())
}
