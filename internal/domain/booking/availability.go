package booking

import "errors"

var (
	ErrMissingTable        = errors.New("available result requires an assigned table")
	ErrUnexpectedTable     = errors.New("unavailable result cannot carry an assigned table")
	ErrMissingReservation  = errors.New("reservation id is required")
	ErrInvalidConfirmation = errors.New("invalid confirmation status")
)

// AvailabilityResult is immutable once produced. available=true carries
// exactly one assigned table and no alternatives; available=false carries the
// backend's alternatives in the order the backend ranked them.
type AvailabilityResult struct {
	available    bool
	table        *TableRef
	message      string
	alternatives []AlternativeSlot
}

func NewAvailableResult(table TableRef, message string) AvailabilityResult {
	t := table
	return AvailabilityResult{available: true, table: &t, message: message}
}

func NewUnavailableResult(message string, alternatives []AlternativeSlot) AvailabilityResult {
	return AvailabilityResult{
		available:    false,
		message:      message,
		alternatives: alternatives,
	}
}

func (r AvailabilityResult) Available() bool {
	return r.available
}

func (r AvailabilityResult) Table() (TableRef, bool) {
	if r.table == nil {
		return TableRef{}, false
	}
	return *r.table, true
}

func (r AvailabilityResult) Message() string {
	return r.message
}

func (r AvailabilityResult) Alternatives() []AlternativeSlot {
	out := make([]AlternativeSlot, len(r.alternatives))
	copy(out, r.alternatives)
	return out
}

func (r AvailabilityResult) IsZero() bool {
	return !r.available && r.table == nil && r.message == "" && r.alternatives == nil
}

// Confirmation is the terminal artifact of a completed booking run. Once
// created the workflow may only be reset, never mutated.
type Confirmation struct {
	reservationID    string
	table            TableRef
	date             Date
	time             TimeOfDay
	partySize        PartySize
	customerName     string
	status           Status
	confirmationSent bool
}

func NewConfirmation(
	reservationID string,
	table TableRef,
	date Date,
	timeOfDay TimeOfDay,
	partySize PartySize,
	customerName string,
	status Status,
	confirmationSent bool,
) (Confirmation, error) {
	if reservationID == "" {
		return Confirmation{}, ErrMissingReservation
	}
	if !status.IsValid() {
		return Confirmation{}, ErrInvalidConfirmation
	}
	return Confirmation{
		reservationID:    reservationID,
		table:            table,
		date:             date,
		time:             timeOfDay,
		partySize:        partySize,
		customerName:     customerName,
		status:           status,
		confirmationSent: confirmationSent,
	}, nil
}

func (c Confirmation) ReservationID() string {
	return c.reservationID
}

func (c Confirmation) Table() TableRef {
	return c.table
}

func (c Confirmation) Date() Date {
	return c.date
}

func (c Confirmation) Time() TimeOfDay {
	return c.time
}

func (c Confirmation) PartySize() PartySize {
	return c.partySize
}

func (c Confirmation) CustomerName() string {
	return c.customerName
}

func (c Confirmation) Status() Status {
	return c.status
}

// ConfirmationSent reports whether the downstream email/SMS channel
// succeeded. False is non-fatal: the reservation itself still stands.
func (c Confirmation) ConfirmationSent() bool {
	return c.confirmationSent
}

func (c Confirmation) IsZero() bool {
	return c.reservationID == ""
}
