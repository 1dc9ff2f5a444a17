package dto

import "github.com/airlinehq/reservation-service/internal/models"

type ReservationResponse struct {
	ReservationID string `json:"reservation_id"`
	PassengerName string `json:"passenger_name"`
	FlightNumber  string `json:"flight_number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	SeatNumber    string `json:"seat_number"`
	PaymentMethod string `json:"payment_method"`
	IsPaid        bool   `json:"is_paid"`
	OnHold        bool   `json:"on_hold"`
	Note          string `json:"note,omitempty"`
}

type BoardingPassResponse struct {
	ReservationID string `json:"reservation_id"`
	Passenger     string `json:"passenger"`
	FlightNumber  string `json:"flight_number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	Seat          string `json:"seat"`
}

type FlightResponse struct {
	FlightNumber  string `json:"flight_number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	AircraftType  string `json:"aircraft_type"`
	TotalSeats    int    `json:"total_seats"`
	Status        string `json:"status"`
	Price         string `json:"price"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToReservationResponse(r *models.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ReservationID: r.ReservationID,
		PassengerName: r.PassengerName,
		FlightNumber:  r.Flight.FlightNumber,
		Origin:        r.Flight.Origin,
		Destination:   r.Flight.Destination,
		DepartureTime: r.Flight.DepartureTime,
		SeatNumber:    r.SeatNumber,
		PaymentMethod: r.PaymentMethod,
		IsPaid:        r.IsPaid,
		OnHold:        r.Held(),
	}
	if resp.OnHold {
		resp.Note = "Payment on hold. Please complete payment at the airport."
	}
	return resp
}

func ToBoardingPassResponse(bp *models.BoardingPass) BoardingPassResponse {
	return BoardingPassResponse{
		ReservationID: bp.ReservationID,
		Passenger:     bp.Passenger,
		FlightNumber:  bp.FlightNumber,
		Origin:        bp.Origin,
		Destination:   bp.Destination,
		DepartureTime: bp.DepartureTime,
		Seat:          bp.Seat,
	}
}

func ToFlightResponse(f models.Flight) FlightResponse {
	return FlightResponse{
		FlightNumber:  f.FlightNumber,
		Origin:        f.Origin,
		Destination:   f.Destination,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		AircraftType:  f.AircraftType,
		TotalSeats:    f.TotalSeats,
		Status:        f.Status,
		Price:         f.Price,
	}
}
