package commands

import (
	"context"
	"errors"
	"fmt"

	"tastybite-booking/internal/domain/booking"
	"tastybite-booking/internal/infra"
	"tastybite-booking/internal/pkg/clock"
	"tastybite-booking/internal/pkg/config"
	"tastybite-booking/internal/pkg/errs"
	"tastybite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Placeholder assignment used when an alternative slot is resolved locally
// without a second availability query.
var placeholderTable = booking.NewTableRef(1, "Table 1")

type SearchParams struct {
	Date      string
	Time      string
	PartySize int
}

type BookingCommands interface {
	StartSession(ctx context.Context, token string) (*queries.SessionView, error)
	Search(ctx context.Context, token string, sessionID uuid.UUID, params SearchParams) (*queries.SessionView, error)
	SelectAlternative(ctx context.Context, token string, sessionID uuid.UUID, timeOfDay string) (*queries.SessionView, error)
	Proceed(ctx context.Context, token string, sessionID uuid.UUID) (*queries.SessionView, error)
	Back(ctx context.Context, token string, sessionID uuid.UUID) (*queries.SessionView, error)
	UpdateDetails(ctx context.Context, token string, sessionID uuid.UUID, details booking.GuestDetails) (*queries.SessionView, error)
	Confirm(ctx context.Context, token string, sessionID uuid.UUID) (*queries.SessionView, error)
	Reset(ctx context.Context, token string, sessionID uuid.UUID) (*queries.SessionView, error)
	CancelReservation(ctx context.Context, token string, reservationID string) error
}

type bookingCommandsImpl struct {
	availability AvailabilityClient
	reservations ReservationClient
	identity     IdentityProvider
	notifier     NotificationSink
	sessions     SessionStore
	clock        clock.Clock
	cfg          config.BookingConfig
}

func NewBookingCommands(
	availability AvailabilityClient,
	reservations ReservationClient,
	identity IdentityProvider,
	notifier NotificationSink,
	sessions SessionStore,
	clock clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		availability: availability,
		reservations: reservations,
		identity:     identity,
		notifier:     notifier,
		sessions:     sessions,
		clock:        clock,
		cfg:          cfg.Booking,
	}
}

func (c *bookingCommandsImpl) StartSession(_ context.Context, token string) (*queries.SessionView, error) {
	identity, err := c.identify(token)
	if err != nil {
		return nil, err
	}

	session := booking.NewSession(identity.UserID, identity.GuestDefaults(), c.defaultCriteria(), c.clock.Now())
	c.sessions.Put(session)
	return queries.NewSessionView(session), nil
}

func (c *bookingCommandsImpl) Search(ctx context.Context, token string, sessionID uuid.UUID, params SearchParams) (*queries.SessionView, error) {
	identity, err := c.identify(token)
	if err != nil {
		return nil, err
	}

	criteria, err := booking.NewSearchCriteria(params.Date, params.Time, params.PartySize, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return c.withSession(identity, sessionID, func(session *booking.Session) error {
		if !session.CanSearch() {
			return booking.ErrInvalidTransition
		}

		result, err := c.availability.CheckAvailability(ctx, identity.Token, criteria)
		if err != nil {
			// Surface and stay on Search; the guest re-triggers manually.
			c.toast(session, KindError, "Availability Check Failed", "We could not check table availability. Please try again.")
			return errs.Mark(err, errs.ErrAvailabilityService)
		}

		if applyErr := session.ApplyAvailability(criteria, result, c.clock.Now()); applyErr != nil {
			return applyErr
		}

		if result.Available() {
			c.toast(session, KindSuccess, "Table Available", result.Message())
		} else {
			c.toast(session, KindInfo, "Requested Time Unavailable", result.Message())
		}
		return nil
	})
}

// SelectAlternative resolves one of the offered slots. By default the result
// is re-derived locally with a placeholder table and no second network call
// (optimistic, matches the original UI). With StrictAlternatives the
// availability service is consulted again for the alternative time.
func (c *bookingCommandsImpl) SelectAlternative(ctx context.Context, token string, sessionID uuid.UUID, timeOfDay string) (*queries.SessionView, error) {
	identity, err := c.identify(token)
	if err != nil {
		return nil, err
	}

	selected, err := booking.NewTimeOfDay(timeOfDay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return c.withSession(identity, sessionID, func(session *booking.Session) error {
		alt, err := session.FindAlternative(selected)
		if err != nil {
			return err
		}

		criteria := session.Criteria().WithTime(alt.Time())

		var result booking.AvailabilityResult
		if c.cfg.StrictAlternatives {
			result, err = c.availability.CheckAvailability(ctx, identity.Token, criteria)
			if err != nil {
				c.toast(session, KindError, "Availability Check Failed", "We could not verify the selected time. Please try again.")
				return errs.Mark(err, errs.ErrAvailabilityService)
			}
		} else {
			message := fmt.Sprintf("Table for %d available at %s", criteria.PartySize().Int(), criteria.Time().String())
			result = booking.NewAvailableResult(placeholderTable, message)
		}

		return session.ApplyAvailability(criteria, result, c.clock.Now())
	})
}

func (c *bookingCommandsImpl) Proceed(_ context.Context, token string, sessionID uuid.UUID) (*queries.SessionView, error) {
	identity, err := c.identify(token)
	if err != nil {
		return nil, err
	}
	return c.withSession(identity, sessionID, func(session *booking.Session) error {
		return session.Proceed(c.clock.Now())
	})
}

func (c *bookingCommandsImpl) Back(_ context.Context, token string, sessionID uuid.UUID) (*queries.SessionView, error) {
	identity, err := c.identify(token)
	if err != nil {
		return nil, err
	}
	return c.withSession(identity, sessionID, func(session *booking.Session) error {
		return session.Back(c.clock.Now())
	})
}

func (c *bookingCommandsImpl) UpdateDetails(_ context.Context, token string, sessionID uuid.UUID, details booking.GuestDetails) (*queries.SessionView, error) {
	identity, err := c.identify(token)
	if err != nil {
		return nil, err
	}
	return c.withSession(identity, sessionID, func(session *booking.Session) error {
		return session.UpdateDetails(details, c.clock.Now())
	})
}

func (c *bookingCommandsImpl) Confirm(ctx context.Context, token string, sessionID uuid.UUID) (*queries.SessionView, error) {
	identity, err := c.identify(token)
	if err != nil {
		return nil, err
	}

	return c.withSession(identity, sessionID, func(session *booking.Session) error {
		criteria, table, details, err := session.PrepareConfirm()
		if err != nil {
			return err
		}

		confirmation, err := c.reservations.ConfirmReservation(ctx, identity.Token, details, criteria, table)
		if err != nil {
			// Stay on Details with all entered data intact.
			c.toast(session, KindError, "Booking Failed", "We could not complete your reservation. Please try again.")
			return errs.Mark(err, errs.ErrConfirmationService)
		}

		if applyErr := session.ApplyConfirmation(confirmation, c.clock.Now()); applyErr != nil {
			return applyErr
		}

		c.toast(session, KindSuccess, "Reservation Confirmed",
			fmt.Sprintf("Your table is booked. Reference: %s", confirmation.ReservationID()))
		if !confirmation.ConfirmationSent() {
			// Non-fatal: the reservation stands even when email/SMS delivery failed.
			c.toast(session, KindInfo, "Confirmation Message Not Sent",
				"Your reservation is confirmed, but we could not send a confirmation message.")
		}
		return nil
	})
}

func (c *bookingCommandsImpl) Reset(_ context.Context, token string, sessionID uuid.UUID) (*queries.SessionView, error) {
	identity, err := c.identify(token)
	if err != nil {
		return nil, err
	}
	return c.withSession(identity, sessionID, func(session *booking.Session) error {
		session.Reset(identity.GuestDefaults(), c.defaultCriteria(), c.clock.Now())
		return nil
	})
}

// defaultCriteria pre-fills the search form: today's date with the configured
// time and party size.
func (c *bookingCommandsImpl) defaultCriteria() booking.SearchCriteria {
	now := c.clock.Now()
	criteria, err := booking.NewSearchCriteria(now.Format(booking.DateLayout), c.cfg.DefaultTime, c.cfg.DefaultPartySize, now)
	if err != nil {
		// Misconfigured defaults leave the form blank instead of blocking the wizard.
		return booking.SearchCriteria{}
	}
	return criteria
}

func (c *bookingCommandsImpl) CancelReservation(ctx context.Context, token string, reservationID string) error {
	identity, err := c.identify(token)
	if err != nil {
		return err
	}
	if reservationID == "" {
		return errs.Mark(booking.ErrMissingReservation, errs.ErrDomainValidation)
	}

	if err := c.reservations.CancelReservation(ctx, identity.Token, reservationID); err != nil {
		if errors.Is(err, errs.ErrReservationNotFound) || infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrReservationNotFound
		}
		c.notifier.Notify(KindError, "Cancellation Failed", "We could not cancel your reservation. Please try again.")
		return errs.Mark(err, errs.ErrReservationService)
	}

	c.notifier.Notify(KindSuccess, "Reservation Canceled", "Your reservation has been canceled.")
	return nil
}

// toast reports an outcome through the sink and keeps a copy in the
// session's notice buffer so the next session view carries it.
func (c *bookingCommandsImpl) toast(session *booking.Session, kind NotificationKind, title, message string) {
	c.notifier.Notify(kind, title, message)
	session.PushNotice(booking.Notice{
		Kind:    string(kind),
		Title:   title,
		Message: message,
		At:      c.clock.Now(),
	})
}

func (c *bookingCommandsImpl) identify(token string) (*Identity, error) {
	if token == "" {
		return nil, errs.ErrAuthenticationRequired
	}
	identity, err := c.identity.Identify(token)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrAuthenticationRequired)
	}
	return identity, nil
}

// withSession runs one wizard action while the session is held busy, so a
// second action on the same session fails fast instead of racing the first.
func (c *bookingCommandsImpl) withSession(identity *Identity, sessionID uuid.UUID, action func(*booking.Session) error) (*queries.SessionView, error) {
	session, err := c.sessions.Acquire(sessionID)
	if err != nil {
		return nil, err
	}
	defer c.sessions.Release(sessionID)

	if session.UserID() != identity.UserID {
		return nil, errs.ErrSessionNotFound
	}

	if err := action(session); err != nil {
		return nil, err
	}

	c.sessions.Put(session)
	return queries.NewSessionView(session), nil
}
