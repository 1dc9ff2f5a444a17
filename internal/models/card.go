package models

// Card is a passenger's saved card. The card store keeps exactly one per
// passenger and overwrites it on update; there is no card history.
type Card struct {
	CardNumber string `json:"cardNumber"`
	CVV        string `json:"cvv"`
	ExpDate    string `json:"expDate"`
	CardHolder string `json:"cardHolder"`
}
