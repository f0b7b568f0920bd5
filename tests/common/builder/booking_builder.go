//go:build unit || e2e

package builder

import (
	"time"

	"tastybite-booking/internal/domain/booking"
	reqdto "tastybite-booking/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID          uuid.UUID
	Date            string
	Time            string
	PartySize       int
	FullName        string
	Phone           string
	Email           string
	SpecialRequests string
	Now             time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		UserID:    uuid.New(),
		Date:      "2025-06-15",
		Time:      "19:30",
		PartySize: 2,
		FullName:  "Taro Yamada",
		Phone:     "090-1234-5678",
		Email:     "taro@example.com",
		Now:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCriteria() (booking.SearchCriteria, error) {
	return booking.NewSearchCriteria(b.Date, b.Time, b.PartySize, b.Now)
}

func (b *BookingBuilder) BuildDetails() booking.GuestDetails {
	return booking.GuestDetails{
		FullName:        b.FullName,
		Phone:           b.Phone,
		Email:           b.Email,
		SpecialRequests: b.SpecialRequests,
	}
}

// BuildSession returns a fresh session on the Search step owned by UserID,
// with the builder's criteria pre-filled into the search form.
func (b *BookingBuilder) BuildSession() *booking.Session {
	criteria, err := b.BuildCriteria()
	if err != nil {
		criteria = booking.SearchCriteria{}
	}
	return booking.NewSession(b.UserID, b.BuildDetails(), criteria, b.Now)
}

// BuildSessionOnAvailability advances the session past a successful search.
func (b *BookingBuilder) BuildSessionOnAvailability(result booking.AvailabilityResult) (*booking.Session, error) {
	session := b.BuildSession()
	criteria, err := b.BuildCriteria()
	if err != nil {
		return nil, err
	}
	if err := session.ApplyAvailability(criteria, result, b.Now); err != nil {
		return nil, err
	}
	return session, nil
}

// BuildSessionOnDetails advances the session to the Details step with a
// resolved table.
func (b *BookingBuilder) BuildSessionOnDetails() (*booking.Session, error) {
	result := booking.NewAvailableResult(booking.NewTableRef(2, "Table 2"), "Table for 2 available")
	session, err := b.BuildSessionOnAvailability(result)
	if err != nil {
		return nil, err
	}
	if err := session.Proceed(b.Now); err != nil {
		return nil, err
	}
	return session, nil
}

func (b *BookingBuilder) BuildSearchRequestDTO() reqdto.SearchRequest {
	return reqdto.SearchRequest{
		Date:      b.Date,
		Time:      b.Time,
		PartySize: b.PartySize,
	}
}

func (b *BookingBuilder) BuildUpdateDetailsRequestDTO() reqdto.UpdateDetailsRequest {
	return reqdto.UpdateDetailsRequest{
		FullName:        b.FullName,
		Phone:           b.Phone,
		Email:           b.Email,
		SpecialRequests: b.SpecialRequests,
	}
}
