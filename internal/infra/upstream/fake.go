package upstream

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"tastybite-booking/internal/domain/booking"
	"tastybite-booking/internal/pkg/clock"
	"tastybite-booking/internal/pkg/errs"
	"tastybite-booking/internal/usecase/queries"
)

type table struct {
	id       int
	name     string
	capacity int
}

// Floor plan adapted from the backend's seed data.
var floor = []table{
	{id: 1, name: "Table 1", capacity: 4},
	{id: 2, name: "Table 2", capacity: 2},
	{id: 3, name: "Table 3", capacity: 4},
	{id: 4, name: "Table 4", capacity: 6},
	{id: 5, name: "Table 5", capacity: 8},
	{id: 6, name: "Table 6", capacity: 2},
	{id: 7, name: "Table 7", capacity: 4},
	{id: 8, name: "Table 8", capacity: 6},
}

type hold struct {
	tableID int
	date    string
	time    string
}

type fakeReservation struct {
	id              int
	tableID         int
	reservationDate time.Time
	partySize       int
	status          string
	tableName       string
	specialRequests string
}

// FakeClient is a deterministic in-memory stand-in for the restaurant
// backend. Availability is a pure function of the recorded holds; there is
// deliberately no randomness so the same query always answers the same way.
type FakeClient struct {
	mu           sync.Mutex
	holds        []hold
	reservations []fakeReservation
	nextID       int
	loc          *time.Location
	clock        clock.Clock
}

func NewFakeClient(clk clock.Clock) *FakeClient {
	return &FakeClient{
		nextID: 1,
		loc:    time.Local,
		clock:  clk,
	}
}

func (f *FakeClient) CheckAvailability(_ context.Context, token string, criteria booking.SearchCriteria) (booking.AvailabilityResult, error) {
	if token == "" {
		return booking.AvailabilityResult{}, errs.ErrAuthenticationRequired
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	date := criteria.Date().String()
	timeOfDay := criteria.Time().String()
	partySize := criteria.PartySize().Int()

	if best, ok := f.bestTable(date, timeOfDay, partySize); ok {
		message := fmt.Sprintf("Table for %d available at %s", partySize, timeOfDay)
		return booking.NewAvailableResult(booking.NewTableRef(best.id, best.name), message), nil
	}

	alternatives := f.alternativeSlots(date, timeOfDay, partySize)
	message := fmt.Sprintf("No tables available for %d people on %s", partySize, date)
	if len(alternatives) > 0 {
		times := make([]string, 0, 2)
		for _, alt := range alternatives {
			times = append(times, alt.Time().String())
			if len(times) == 2 {
				break
			}
		}
		message = fmt.Sprintf("No table available at %s, but available at %s", timeOfDay, strings.Join(times, " or "))
	}
	return booking.NewUnavailableResult(message, alternatives), nil
}

func (f *FakeClient) ConfirmReservation(_ context.Context, token string, details booking.GuestDetails, criteria booking.SearchCriteria, tableRef booking.TableRef) (booking.Confirmation, error) {
	if token == "" {
		return booking.Confirmation{}, errs.ErrAuthenticationRequired
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	date := criteria.Date().String()
	timeOfDay := criteria.Time().String()

	// Re-check before committing, the way the real endpoint guards against a
	// hold landing between query and confirmation.
	if f.isHeld(tableRef.ID(), date, timeOfDay) {
		return booking.Confirmation{}, errs.New("table is no longer available")
	}

	id := f.nextID
	f.nextID++
	reservationID := fmt.Sprintf("RES-%06d", id)

	f.holds = append(f.holds, hold{tableID: tableRef.ID(), date: date, time: timeOfDay})

	when, _ := criteria.ReservationDateTime(f.loc)
	f.reservations = append(f.reservations, fakeReservation{
		id:              id,
		tableID:         tableRef.ID(),
		reservationDate: when,
		partySize:       criteria.PartySize().Int(),
		status:          booking.StatusConfirmed.String(),
		tableName:       tableRef.Name(),
		specialRequests: details.SpecialRequests,
	})

	return booking.NewConfirmation(
		reservationID,
		tableRef,
		criteria.Date(),
		criteria.Time(),
		criteria.PartySize(),
		details.FullName,
		booking.StatusConfirmed,
		true,
	)
}

func (f *FakeClient) CancelReservation(_ context.Context, token string, reservationID string) error {
	if token == "" {
		return errs.ErrAuthenticationRequired
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var id int
	if _, err := fmt.Sscanf(reservationID, "RES-%06d", &id); err != nil {
		return errs.ErrReservationNotFound
	}
	for i, r := range f.reservations {
		if r.id == id {
			f.reservations[i].status = "canceled"
			f.releaseHold(r)
			return nil
		}
	}
	return errs.ErrReservationNotFound
}

func (f *FakeClient) ListMyReservations(_ context.Context, token string) ([]*queries.ReservationListItem, error) {
	if token == "" {
		return nil, errs.ErrAuthenticationRequired
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]*queries.ReservationListItem, 0, len(f.reservations))
	for _, r := range f.reservations {
		tableName := r.tableName
		special := r.specialRequests
		items = append(items, &queries.ReservationListItem{
			ID:              fmt.Sprintf("RES-%06d", r.id),
			ReservationDate: r.reservationDate,
			PartySize:       r.partySize,
			Status:          r.status,
			TableNumber:     &tableName,
			SpecialRequests: &special,
		})
	}
	return items, nil
}

// OccupyAll holds every table for the given slot. Test and demo hook for
// exercising the alternatives path deterministically.
func (f *FakeClient) OccupyAll(date, timeOfDay string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range floor {
		f.holds = append(f.holds, hold{tableID: t.id, date: date, time: timeOfDay})
	}
}

func (f *FakeClient) bestTable(date, timeOfDay string, partySize int) (table, bool) {
	best := table{}
	found := false
	for _, t := range floor {
		if t.capacity < partySize || f.isHeld(t.id, date, timeOfDay) {
			continue
		}
		// Smallest table that fits the party wins.
		if !found || t.capacity < best.capacity {
			best = t
			found = true
		}
	}
	return best, found
}

func (f *FakeClient) isHeld(tableID int, date, timeOfDay string) bool {
	for _, h := range f.holds {
		if h.tableID == tableID && h.date == date && h.time == timeOfDay {
			return true
		}
	}
	return false
}

func (f *FakeClient) releaseHold(r fakeReservation) {
	date := r.reservationDate.Format(booking.DateLayout)
	timeOfDay := r.reservationDate.Format(booking.TimeLayout)
	for i, h := range f.holds {
		if h.tableID == r.tableID && h.date == date && h.time == timeOfDay {
			f.holds = append(f.holds[:i], f.holds[i+1:]...)
			return
		}
	}
}

// alternativeSlots walks the service window (17:00-22:00, half-hour grid)
// and offers up to four other times that still have capacity, in grid order.
func (f *FakeClient) alternativeSlots(date, requestedTime string, partySize int) []booking.AlternativeSlot {
	const maxAlternatives = 4

	alternatives := []booking.AlternativeSlot{}
	slot, _ := time.Parse(booking.TimeLayout, "17:00")
	end, _ := time.Parse(booking.TimeLayout, "22:00")

	for !slot.After(end) {
		timeStr := slot.Format(booking.TimeLayout)
		slot = slot.Add(30 * time.Minute)

		if timeStr == requestedTime {
			continue
		}
		count := f.countAvailable(date, timeStr, partySize)
		if count == 0 {
			continue
		}
		t, _ := booking.NewTimeOfDay(timeStr)
		alt, _ := booking.NewAlternativeSlot(t, count)
		alternatives = append(alternatives, alt)
		if len(alternatives) == maxAlternatives {
			break
		}
	}
	return alternatives
}

func (f *FakeClient) countAvailable(date, timeOfDay string, partySize int) int {
	count := 0
	for _, t := range floor {
		if t.capacity >= partySize && !f.isHeld(t.id, date, timeOfDay) {
			count++
		}
	}
	return count
}
