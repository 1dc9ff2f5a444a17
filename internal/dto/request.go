package dto

// ActorParams identifies the caller on every reservation endpoint. Role
// defaults to passenger when blank; anything the handler does not
// recognize is rejected.
type ActorParams struct {
	Role     string `json:"role" query:"role"`
	Username string `json:"username" query:"username"`
}

type CardRequest struct {
	CardNumber string `json:"card_number"`
	ExpDate    string `json:"exp_date"`
	CardHolder string `json:"card_holder"`
	CVV        string `json:"cvv"`
}

type CreateReservationRequest struct {
	ActorParams
	FlightNumber  string       `json:"flight_number"`
	SeatNumber    string       `json:"seat_number"`
	PaymentMethod string       `json:"payment_method"` // "cash" or "card"
	SavedCardCVV  string       `json:"saved_card_cvv,omitempty"`
	Card          *CardRequest `json:"card,omitempty"`
}
