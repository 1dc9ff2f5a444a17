package models

type Role string

const (
	RolePassenger    Role = "passenger"
	RoleBookingAgent Role = "booking_agent"
)

// Actor identifies who drives a reservation flow. Both roles share the
// same booking, cancellation, check-in and confirmation semantics; agents
// additionally mirror their bookings into the agent store.
type Actor struct {
	Role     Role
	Username string
}

func (a Actor) IsAgent() bool { return a.Role == RoleBookingAgent }
