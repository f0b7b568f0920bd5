package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MinPartySize = 1
	MaxPartySize = 12

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrDateInPast       = errors.New("date cannot be in the past")
	ErrInvalidTime      = errors.New("invalid time")
	ErrInvalidPartySize = errors.New("party size out of range")
	ErrMissingFullName  = errors.New("full name is required")
	ErrMissingPhone     = errors.New("phone is required")
	ErrMissingEmail     = errors.New("email is required")
)

type Date struct {
	value string
}

// NewDate parses a YYYY-MM-DD calendar date and rejects dates before today
// (today is derived from now in local time).
func NewDate(value string, now time.Time) (Date, error) {
	parsed, err := time.ParseInLocation(DateLayout, value, now.Location())
	if err != nil {
		return Date{}, ErrInvalidDate
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.Before(today) {
		return Date{}, ErrDateInPast
	}

	return Date{value: parsed.Format(DateLayout)}, nil
}

func (d Date) String() string {
	return d.value
}

func (d Date) IsZero() bool {
	return d.value == ""
}

type TimeOfDay struct {
	value string
}

func NewTimeOfDay(value string) (TimeOfDay, error) {
	parsed, err := time.Parse(TimeLayout, value)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTime
	}
	return TimeOfDay{value: parsed.Format(TimeLayout)}, nil
}

func (t TimeOfDay) String() string {
	return t.value
}

func (t TimeOfDay) IsZero() bool {
	return t.value == ""
}

type PartySize struct {
	value int
}

func NewPartySize(value int) (PartySize, error) {
	if value < MinPartySize || value > MaxPartySize {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: value}, nil
}

func (p PartySize) Int() int {
	return p.value
}

type SearchCriteria struct {
	date      Date
	time      TimeOfDay
	partySize PartySize
}

// NewSearchCriteria validates all fields at the input boundary. Downstream
// consumers rely on a constructed value being well-formed.
func NewSearchCriteria(date, timeOfDay string, partySize int, now time.Time) (SearchCriteria, error) {
	d, err := NewDate(date, now)
	if err != nil {
		return SearchCriteria{}, err
	}
	t, err := NewTimeOfDay(timeOfDay)
	if err != nil {
		return SearchCriteria{}, err
	}
	p, err := NewPartySize(partySize)
	if err != nil {
		return SearchCriteria{}, err
	}
	return SearchCriteria{date: d, time: t, partySize: p}, nil
}

func (c SearchCriteria) Date() Date {
	return c.date
}

func (c SearchCriteria) Time() TimeOfDay {
	return c.time
}

func (c SearchCriteria) PartySize() PartySize {
	return c.partySize
}

func (c SearchCriteria) IsZero() bool {
	return c.date.IsZero()
}

// WithTime derives new criteria for an alternative slot keeping date and
// party size as requested.
func (c SearchCriteria) WithTime(t TimeOfDay) SearchCriteria {
	return SearchCriteria{date: c.date, time: t, partySize: c.partySize}
}

func (c SearchCriteria) ReservationDateTime(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(
		DateLayout+"T"+TimeLayout,
		fmt.Sprintf("%sT%s", c.date.String(), c.time.String()),
		loc,
	)
}

type TableRef struct {
	id   int
	name string
}

func NewTableRef(id int, name string) TableRef {
	return TableRef{id: id, name: name}
}

func (t TableRef) ID() int {
	return t.id
}

func (t TableRef) Name() string {
	return t.name
}

type AlternativeSlot struct {
	time            TimeOfDay
	availableTables int
}

func NewAlternativeSlot(t TimeOfDay, availableTables int) (AlternativeSlot, error) {
	if availableTables < 1 {
		return AlternativeSlot{}, errors.New("alternative slot must have at least one table")
	}
	return AlternativeSlot{time: t, availableTables: availableTables}, nil
}

func (a AlternativeSlot) Time() TimeOfDay {
	return a.time
}

func (a AlternativeSlot) AvailableTables() int {
	return a.availableTables
}

type GuestDetails struct {
	FullName        string
	Phone           string
	Email           string
	SpecialRequests string
}

// Validate reports the first missing required field. SpecialRequests is
// always optional.
func (g GuestDetails) Validate() error {
	if strings.TrimSpace(g.FullName) == "" {
		return ErrMissingFullName
	}
	if strings.TrimSpace(g.Phone) == "" {
		return ErrMissingPhone
	}
	if strings.TrimSpace(g.Email) == "" {
		return ErrMissingEmail
	}
	return nil
}

func (g GuestDetails) IsComplete() bool {
	return g.Validate() == nil
}
