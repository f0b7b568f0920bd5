package queries

import (
	"time"

	"tastybite-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SessionView struct {
	ID           uuid.UUID         `json:"id"`
	Step         string            `json:"step"`
	Criteria     *CriteriaView     `json:"criteria,omitempty"`
	Availability *AvailabilityView `json:"availability,omitempty"`
	SlotResolved bool              `json:"slot_resolved"`
	Details      DetailsView       `json:"details"`
	Confirmation *ConfirmationView `json:"confirmation,omitempty"`
	Notices      []NoticeView      `json:"notices"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type CriteriaView struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"party_size"`
}

type AvailabilityView struct {
	Available    bool              `json:"available"`
	TableID      *int              `json:"table_id,omitempty"`
	TableName    *string           `json:"table_name,omitempty"`
	Message      string            `json:"message"`
	Alternatives []AlternativeView `json:"alternatives"`
}

type AlternativeView struct {
	Time            string `json:"time"`
	AvailableTables int    `json:"available_tables"`
}

type NoticeView struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type DetailsView struct {
	FullName        string `json:"full_name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type ConfirmationView struct {
	ReservationID    string `json:"reservation_id"`
	TableName        string `json:"table_name"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	PartySize        int    `json:"party_size"`
	CustomerName     string `json:"customer_name"`
	Status           string `json:"status"`
	ConfirmationSent bool   `json:"confirmation_sent"`
}

type ReservationListItem struct {
	ID              string    `json:"id"`
	ReservationDate time.Time `json:"reservation_date"`
	PartySize       int       `json:"party_size"`
	Status          string    `json:"status"`
	TableNumber     *string   `json:"table_number,omitempty"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
}

func NewSessionView(s *booking.Session) *SessionView {
	view := &SessionView{
		ID:           s.ID(),
		Step:         s.Step().String(),
		SlotResolved: s.SlotResolved(),
		Details:      newDetailsView(s.Details()),
		Notices:      []NoticeView{},
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}

	for _, n := range s.Notices() {
		view.Notices = append(view.Notices, NoticeView{Kind: n.Kind, Title: n.Title, Message: n.Message})
	}

	if criteria := s.Criteria(); !criteria.IsZero() {
		view.Criteria = &CriteriaView{
			Date:      criteria.Date().String(),
			Time:      criteria.Time().String(),
			PartySize: criteria.PartySize().Int(),
		}
	}
	if availability := s.Availability(); !availability.IsZero() {
		view.Availability = newAvailabilityView(availability)
	}
	if confirmation := s.Confirmation(); !confirmation.IsZero() {
		view.Confirmation = newConfirmationView(confirmation)
	}
	return view
}

func newAvailabilityView(r booking.AvailabilityResult) *AvailabilityView {
	view := &AvailabilityView{
		Available:    r.Available(),
		Message:      r.Message(),
		Alternatives: []AlternativeView{},
	}
	if table, ok := r.Table(); ok {
		id := table.ID()
		name := table.Name()
		view.TableID = &id
		view.TableName = &name
	}
	for _, alt := range r.Alternatives() {
		view.Alternatives = append(view.Alternatives, AlternativeView{
			Time:            alt.Time().String(),
			AvailableTables: alt.AvailableTables(),
		})
	}
	return view
}

func newDetailsView(d booking.GuestDetails) DetailsView {
	return DetailsView{
		FullName:        d.FullName,
		Phone:           d.Phone,
		Email:           d.Email,
		SpecialRequests: d.SpecialRequests,
	}
}

func newConfirmationView(c booking.Confirmation) *ConfirmationView {
	return &ConfirmationView{
		ReservationID:    c.ReservationID(),
		TableName:        c.Table().Name(),
		Date:             c.Date().String(),
		Time:             c.Time().String(),
		PartySize:        c.PartySize().Int(),
		CustomerName:     c.CustomerName(),
		Status:           c.Status().String(),
		ConfirmationSent: c.ConfirmationSent(),
	}
}
