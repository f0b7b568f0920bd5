package commands

import (
	"context"

	"tastybite-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Identity is the authenticated guest as the external identity collaborator
// reports it. The raw token travels with it so upstream calls can be made on
// the guest's behalf.
type Identity struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Phone  string
	Token  string
}

// GuestDefaults derives the pre-filled detail form for a fresh wizard run.
func (i Identity) GuestDefaults() booking.GuestDetails {
	return booking.GuestDetails{
		FullName: i.Name,
		Phone:    i.Phone,
		Email:    i.Email,
	}
}

type IdentityProvider interface {
	Identify(token string) (*Identity, error)
}

type NotificationKind string

const (
	KindSuccess NotificationKind = "success"
	KindError   NotificationKind = "error"
	KindInfo    NotificationKind = "info"
)

// NotificationSink receives user-visible, non-blocking outcomes. Failures
// pushed here never abort the workflow.
type NotificationSink interface {
	Notify(kind NotificationKind, title, message string)
}

type AvailabilityClient interface {
	CheckAvailability(ctx context.Context, token string, criteria booking.SearchCriteria) (booking.AvailabilityResult, error)
}

type ReservationClient interface {
	ConfirmReservation(ctx context.Context, token string, details booking.GuestDetails, criteria booking.SearchCriteria, table booking.TableRef) (booking.Confirmation, error)
	CancelReservation(ctx context.Context, token string, reservationID string) error
}

// SessionStore holds live wizard sessions. Acquire marks a session busy for
// the duration of one action; a second acquire while busy fails with
// errs.ErrActionInProgress, mirroring UI affordances disabled while a request
// is pending.
type SessionStore interface {
	Put(session *booking.Session)
	Acquire(id uuid.UUID) (*booking.Session, error)
	Release(id uuid.UUID)
	Delete(id uuid.UUID)
	Peek(id uuid.UUID) (*booking.Session, error)
}
