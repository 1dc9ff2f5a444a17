package models

// BoardingPass is the check-in view of a paid reservation.
type BoardingPass struct {
	ReservationID string
	Passenger     string
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureTime string
	Seat          string
}
