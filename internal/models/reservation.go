package models

// PaymentMethodCash marks a reservation held for payment at the airport.
// Card payments store the card number in PaymentMethod instead; an empty
// method means the reservation has not entered a payment flow yet.
const PaymentMethodCash = "Cash"

type Reservation struct {
	ReservationID  string `json:"reservationID"`
	PassengerName  string `json:"passengerName"`
	Flight         Flight `json:"flight"`
	SeatNumber     string `json:"seatNumber"`
	PaymentMethod  string `json:"paymentMethod"`
	PaymentDetails string `json:"paymentDetails"`
	IsPaid         bool   `json:"isPaid"`
}

// Held reports whether the reservation occupies its seat while still
// awaiting cash payment.
func (r Reservation) Held() bool {
	return r.PaymentMethod == PaymentMethodCash && !r.IsPaid
}
