package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition  = errors.New("action not allowed in current step")
	ErrSlotNotResolved    = errors.New("no slot resolved")
	ErrUnknownAlternative = errors.New("alternative slot not offered")
	ErrDetailsIncomplete  = errors.New("guest details incomplete")
)

// Session is one run of the booking wizard. It owns the search criteria, the
// latest availability result, the guest details and the terminal confirmation,
// and enforces the step preconditions:
//
//	Search -> Availability -> Details -> Confirmation -> (reset) Search
//
// Failed service calls leave the session on its current step; all entered
// input survives a failure so the guest can retry.
type Session struct {
	id           uuid.UUID
	userID       uuid.UUID
	step         Step
	criteria     SearchCriteria
	availability AvailabilityResult
	table        *TableRef
	details      GuestDetails
	confirmation Confirmation
	notices      []Notice
	createdAt    time.Time
	updatedAt    time.Time
}

// Notice is one non-blocking message shown to the guest, the server-side
// rendition of the wizard's toasts. The session keeps a short rolling buffer.
type Notice struct {
	Kind    string
	Title   string
	Message string
	At      time.Time
}

const maxNotices = 8

// NewSession starts a fresh run on the Search step. details carry the
// defaults seeded from the authenticated identity; criteria pre-fills the
// search form so the guest edits rather than types from scratch.
func NewSession(userID uuid.UUID, details GuestDetails, criteria SearchCriteria, now time.Time) *Session {
	return &Session{
		id:        uuid.New(),
		userID:    userID,
		step:      StepSearch,
		criteria:  criteria,
		details:   details,
		createdAt: now,
		updatedAt: now,
	}
}

func (s *Session) ID() uuid.UUID                    { return s.id }
func (s *Session) UserID() uuid.UUID                { return s.userID }
func (s *Session) Step() Step                       { return s.step }
func (s *Session) Criteria() SearchCriteria         { return s.criteria }
func (s *Session) Availability() AvailabilityResult { return s.availability }
func (s *Session) Details() GuestDetails            { return s.details }
func (s *Session) Confirmation() Confirmation       { return s.confirmation }
func (s *Session) CreatedAt() time.Time             { return s.createdAt }
func (s *Session) UpdatedAt() time.Time             { return s.updatedAt }

func (s *Session) Notices() []Notice {
	out := make([]Notice, len(s.notices))
	copy(out, s.notices)
	return out
}

// PushNotice appends a toast, dropping the oldest past the buffer cap.
func (s *Session) PushNotice(n Notice) {
	s.notices = append(s.notices, n)
	if len(s.notices) > maxNotices {
		s.notices = s.notices[len(s.notices)-maxNotices:]
	}
}

// Table returns the resolved table, present once the original query succeeded
// or an alternative was selected.
func (s *Session) Table() (TableRef, bool) {
	if s.table == nil {
		return TableRef{}, false
	}
	return *s.table, true
}

func (s *Session) SlotResolved() bool {
	return s.table != nil
}

// CanSearch reports whether a new availability query may be submitted.
// Searching is the entry action of the wizard and only valid on Search.
func (s *Session) CanSearch() bool {
	return s.step == StepSearch
}

// ApplyAvailability records the outcome of an availability query and moves to
// the Availability step. The resolved table follows the result: present on
// success, cleared when only alternatives were offered.
func (s *Session) ApplyAvailability(criteria SearchCriteria, result AvailabilityResult, now time.Time) error {
	if s.step != StepSearch && s.step != StepAvailability {
		return ErrInvalidTransition
	}

	s.criteria = criteria
	s.availability = result
	s.table = nil
	if table, ok := result.Table(); ok {
		s.table = &table
	}
	s.step = StepAvailability
	s.updatedAt = now
	return nil
}

// FindAlternative looks up an offered alternative by its time. Selection is
// only meaningful while on the Availability step.
func (s *Session) FindAlternative(t TimeOfDay) (AlternativeSlot, error) {
	if s.step != StepAvailability {
		return AlternativeSlot{}, ErrInvalidTransition
	}
	for _, alt := range s.availability.Alternatives() {
		if alt.Time() == t {
			return alt, nil
		}
	}
	return AlternativeSlot{}, ErrUnknownAlternative
}

// Proceed moves to the Details step. Requires a resolved slot, either from
// the original query or from a selected alternative.
func (s *Session) Proceed(now time.Time) error {
	if s.step != StepAvailability {
		return ErrInvalidTransition
	}
	if !s.SlotResolved() {
		return ErrSlotNotResolved
	}
	s.step = StepDetails
	s.updatedAt = now
	return nil
}

// Back steps one screen towards Search. The availability result and entered
// details are kept so going forward again loses nothing.
func (s *Session) Back(now time.Time) error {
	switch s.step {
	case StepAvailability:
		s.step = StepSearch
	case StepDetails:
		s.step = StepAvailability
	default:
		return ErrInvalidTransition
	}
	s.updatedAt = now
	return nil
}

func (s *Session) UpdateDetails(details GuestDetails, now time.Time) error {
	if s.step != StepDetails {
		return ErrInvalidTransition
	}
	s.details = details
	s.updatedAt = now
	return nil
}

// PrepareConfirm validates the preconditions of a confirmation request
// without side effects, so nothing reaches the service layer with incomplete
// input.
func (s *Session) PrepareConfirm() (SearchCriteria, TableRef, GuestDetails, error) {
	if s.step != StepDetails {
		return SearchCriteria{}, TableRef{}, GuestDetails{}, ErrInvalidTransition
	}
	if s.table == nil {
		return SearchCriteria{}, TableRef{}, GuestDetails{}, ErrSlotNotResolved
	}
	if err := s.details.Validate(); err != nil {
		return SearchCriteria{}, TableRef{}, GuestDetails{}, ErrDetailsIncomplete
	}
	return s.criteria, *s.table, s.details, nil
}

// ApplyConfirmation records the terminal artifact. Exactly one confirmation
// exists per completed run; only Reset may follow.
func (s *Session) ApplyConfirmation(confirmation Confirmation, now time.Time) error {
	if s.step != StepDetails {
		return ErrInvalidTransition
	}
	s.confirmation = confirmation
	s.step = StepConfirmation
	s.updatedAt = now
	return nil
}

// Reset discards availability, details and confirmation and returns to
// Search. details re-seed from the current identity and criteria from the
// caller's defaults, so the form never comes back empty.
func (s *Session) Reset(details GuestDetails, criteria SearchCriteria, now time.Time) {
	s.criteria = criteria
	s.availability = AvailabilityResult{}
	s.table = nil
	s.details = details
	s.confirmation = Confirmation{}
	s.notices = nil
	s.step = StepSearch
	s.updatedAt = now
}
