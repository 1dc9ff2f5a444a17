package models

// Flight is a read-only reference record owned by the flight directory.
// A reservation embeds a copy taken at booking time; later edits to the
// directory do not flow back into existing reservations.
type Flight struct {
	FlightNumber  string `json:"flightNumber"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	AircraftType  string `json:"aircraftType"`
	TotalSeats    int    `json:"totalSeats"`
	Status        string `json:"status"`
	Price         string `json:"price"`
}
