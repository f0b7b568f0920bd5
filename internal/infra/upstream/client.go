package upstream

import (
	"tastybite-booking/internal/usecase/commands"
	"tastybite-booking/internal/usecase/queries"
)

// Client is the full surface the booking gateway needs from a reservation
// backend. Both the fake and the HTTP implementation satisfy it.
type Client interface {
	commands.AvailabilityClient
	commands.ReservationClient
	queries.ReservationReader
}

var (
	_ Client = (*FakeClient)(nil)
	_ Client = (*HTTPClient)(nil)
)
