//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tastybite-booking/internal/domain/booking"
	"tastybite-booking/internal/infra/sessionstore"
	"tastybite-booking/internal/pkg/clock"
	"tastybite-booking/internal/pkg/config"
	"tastybite-booking/internal/pkg/errs"
	"tastybite-booking/internal/usecase/commands"
	commandsmock "tastybite-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const validToken = "valid-token"

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockAvailability *commandsmock.MockAvailabilityClient
	mockReservations *commandsmock.MockReservationClient
	mockIdentity     *commandsmock.MockIdentityProvider
	mockNotifier     *commandsmock.MockNotificationSink
	store            *sessionstore.Store
	clock            *clock.MockClock
	cfg              config.Config
	commands         commands.BookingCommands
	userID           uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAvailability = commandsmock.NewMockAvailabilityClient(s.ctrl)
	s.mockReservations = commandsmock.NewMockReservationClient(s.ctrl)
	s.mockIdentity = commandsmock.NewMockIdentityProvider(s.ctrl)
	s.mockNotifier = commandsmock.NewMockNotificationSink(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.cfg = config.NewTestConfig()
	s.store = sessionstore.New(s.cfg.Booking.SessionTTL, s.clock)
	s.userID = uuid.New()

	s.commands = commands.NewBookingCommands(
		s.mockAvailability, s.mockReservations, s.mockIdentity, s.mockNotifier,
		s.store, s.clock, s.cfg,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) identity() *commands.Identity {
	return &commands.Identity{
		UserID: s.userID,
		Name:   "Taro Yamada",
		Email:  "taro@example.com",
		Phone:  "090-1234-5678",
		Token:  validToken,
	}
}

func (s *BookingCommandsTestSuite) expectIdentify() {
	s.mockIdentity.EXPECT().Identify(validToken).Return(s.identity(), nil).AnyTimes()
}

func (s *BookingCommandsTestSuite) anyNotifications() {
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *BookingCommandsTestSuite) startSession() uuid.UUID {
	view, err := s.commands.StartSession(context.Background(), validToken)
	s.Require().NoError(err)
	return view.ID
}

func (s *BookingCommandsTestSuite) searchParams() commands.SearchParams {
	return commands.SearchParams{Date: "2025-06-15", Time: "19:30", PartySize: 2}
}

func availableTable2() booking.AvailabilityResult {
	return booking.NewAvailableResult(booking.NewTableRef(2, "Table 2"), "Table for 2 available at 19:30")
}

func unavailableWithAlternatives(s *BookingCommandsTestSuite) booking.AvailabilityResult {
	alt1800, err := booking.NewTimeOfDay("18:00")
	s.Require().NoError(err)
	alt2030, err := booking.NewTimeOfDay("20:30")
	s.Require().NoError(err)
	slot1, err := booking.NewAlternativeSlot(alt1800, 3)
	s.Require().NoError(err)
	slot2, err := booking.NewAlternativeSlot(alt2030, 1)
	s.Require().NoError(err)
	return booking.NewUnavailableResult("No tables available at 19:30", []booking.AlternativeSlot{slot1, slot2})
}

// ================================================================================
// TestStartSession
// ================================================================================

func (s *BookingCommandsTestSuite) TestStartSession() {
	s.Run("success: seeds detail and criteria defaults", func() {
		s.expectIdentify()

		view, err := s.commands.StartSession(context.Background(), validToken)
		s.Require().NoError(err)

		s.Equal("search", view.Step)
		s.Equal("Taro Yamada", view.Details.FullName)
		s.Equal("090-1234-5678", view.Details.Phone)
		s.Equal("taro@example.com", view.Details.Email)
		s.False(view.SlotResolved)

		s.Require().NotNil(view.Criteria, "the search form starts pre-filled")
		s.Equal("2025-06-01", view.Criteria.Date)
		s.Equal("19:00", view.Criteria.Time)
		s.Equal(2, view.Criteria.PartySize)
	})

	s.Run("error: empty token fails before any collaborator is touched", func() {
		_, err := s.commands.StartSession(context.Background(), "")
		s.Require().ErrorIs(err, errs.ErrAuthenticationRequired)
	})

	s.Run("error: identity provider rejection maps to authentication required", func() {
		s.mockIdentity.EXPECT().Identify("bad-token").Return(nil, errors.New("signature invalid"))

		_, err := s.commands.StartSession(context.Background(), "bad-token")
		s.Require().ErrorIs(err, errs.ErrAuthenticationRequired)
	})
}

// ================================================================================
// TestSearch
// ================================================================================

func (s *BookingCommandsTestSuite) TestSearch() {
	s.Run("success: available result resolves the table and notifies", func() {
		s.expectIdentify()
		sessionID := s.startSession()

		s.mockAvailability.EXPECT().
			CheckAvailability(gomock.Any(), validToken, gomock.Any()).
			Return(availableTable2(), nil)
		s.mockNotifier.EXPECT().Notify(commands.KindSuccess, "Table Available", "Table for 2 available at 19:30")

		view, err := s.commands.Search(context.Background(), validToken, sessionID, s.searchParams())
		s.Require().NoError(err)

		s.Equal("availability", view.Step)
		s.True(view.SlotResolved)
		s.Require().NotNil(view.Availability)
		s.True(view.Availability.Available)
		s.Require().NotNil(view.Availability.TableName)
		s.Equal("Table 2", *view.Availability.TableName)
		s.Require().NotEmpty(view.Notices)
		s.Equal("Table Available", view.Notices[len(view.Notices)-1].Title)
	})

	s.Run("success: unavailable result keeps alternatives in backend order", func() {
		s.expectIdentify()
		sessionID := s.startSession()

		s.mockAvailability.EXPECT().
			CheckAvailability(gomock.Any(), validToken, gomock.Any()).
			Return(unavailableWithAlternatives(s), nil)
		s.mockNotifier.EXPECT().Notify(commands.KindInfo, "Requested Time Unavailable", gomock.Any())

		view, err := s.commands.Search(context.Background(), validToken, sessionID, s.searchParams())
		s.Require().NoError(err)

		s.False(view.SlotResolved)
		s.Require().NotNil(view.Availability)
		s.Require().Len(view.Availability.Alternatives, 2)
		s.Equal("18:00", view.Availability.Alternatives[0].Time)
		s.Equal("20:30", view.Availability.Alternatives[1].Time)
	})

	s.Run("error: invalid criteria rejected before the service is called", func() {
		s.expectIdentify()
		sessionID := s.startSession()

		params := s.searchParams()
		params.PartySize = 13

		_, err := s.commands.Search(context.Background(), validToken, sessionID, params)
		s.Require().ErrorIs(err, errs.ErrDomainValidation)
		s.Require().ErrorIs(err, booking.ErrInvalidPartySize)
	})

	s.Run("error: service failure keeps the session on Search for retry", func() {
		s.expectIdentify()
		sessionID := s.startSession()

		s.mockAvailability.EXPECT().
			CheckAvailability(gomock.Any(), validToken, gomock.Any()).
			Return(booking.AvailabilityResult{}, errors.New("connection refused"))
		s.mockNotifier.EXPECT().Notify(commands.KindError, "Availability Check Failed", gomock.Any())

		_, err := s.commands.Search(context.Background(), validToken, sessionID, s.searchParams())
		s.Require().ErrorIs(err, errs.ErrAvailabilityService)

		session, peekErr := s.store.Peek(sessionID)
		s.Require().NoError(peekErr)
		s.Equal(booking.StepSearch, session.Step())
		s.True(session.CanSearch(), "the guest re-triggers manually after a failure")
	})

	s.Run("error: searching is not allowed from Details", func() {
		s.expectIdentify()
		s.anyNotifications()
		sessionID := s.startSession()
		s.advanceToDetails(sessionID)

		_, err := s.commands.Search(context.Background(), validToken, sessionID, s.searchParams())
		s.Require().ErrorIs(err, booking.ErrInvalidTransition)
	})

	s.Run("error: unknown session", func() {
		s.expectIdentify()

		_, err := s.commands.Search(context.Background(), validToken, uuid.New(), s.searchParams())
		s.Require().ErrorIs(err, errs.ErrSessionNotFound)
	})
}

// ================================================================================
// TestSelectAlternative
// ================================================================================

func (s *BookingCommandsTestSuite) TestSelectAlternative() {
	s.Run("success: resolves locally without a second availability call", func() {
		s.expectIdentify()
		sessionID := s.startSession()

		s.mockAvailability.EXPECT().
			CheckAvailability(gomock.Any(), validToken, gomock.Any()).
			Return(unavailableWithAlternatives(s), nil).
			Times(1) // the initial search only
		s.anyNotifications()

		_, err := s.commands.Search(context.Background(), validToken, sessionID, s.searchParams())
		s.Require().NoError(err)

		view, err := s.commands.SelectAlternative(context.Background(), validToken, sessionID, "18:00")
		s.Require().NoError(err)

		s.True(view.SlotResolved)
		s.Require().NotNil(view.Criteria)
		s.Equal("18:00", view.Criteria.Time)
		s.Equal(2, view.Criteria.PartySize, "party size carries over from the original query")
		s.Require().NotNil(view.Availability)
		s.Equal("Table for 2 available at 18:00", view.Availability.Message)
	})

	s.Run("success: strict mode re-queries the availability service", func() {
		strictCfg := config.NewTestConfig()
		strictCfg.Booking.StrictAlternatives = true
		strictCommands := commands.NewBookingCommands(
			s.mockAvailability, s.mockReservations, s.mockIdentity, s.mockNotifier,
			s.store, s.clock, strictCfg,
		)

		s.expectIdentify()
		s.anyNotifications()

		view, err := strictCommands.StartSession(context.Background(), validToken)
		s.Require().NoError(err)
		sessionID := view.ID

		s.mockAvailability.EXPECT().
			CheckAvailability(gomock.Any(), validToken, gomock.Any()).
			Return(unavailableWithAlternatives(s), nil)

		_, err = strictCommands.Search(context.Background(), validToken, sessionID, s.searchParams())
		s.Require().NoError(err)

		s.mockAvailability.EXPECT().
			CheckAvailability(gomock.Any(), validToken, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, criteria booking.SearchCriteria) (booking.AvailabilityResult, error) {
				s.Equal("18:00", criteria.Time().String())
				return booking.NewAvailableResult(booking.NewTableRef(5, "Table 5"), "Table for 2 available at 18:00"), nil
			})

		view, err = strictCommands.SelectAlternative(context.Background(), validToken, sessionID, "18:00")
		s.Require().NoError(err)
		s.Require().NotNil(view.Availability.TableName)
		s.Equal("Table 5", *view.Availability.TableName)
	})

	s.Run("error: selecting a slot that was not offered", func() {
		s.expectIdentify()
		s.anyNotifications()
		sessionID := s.startSession()

		s.mockAvailability.EXPECT().
			CheckAvailability(gomock.Any(), validToken, gomock.Any()).
			Return(unavailableWithAlternatives(s), nil)

		_, err := s.commands.Search(context.Background(), validToken, sessionID, s.searchParams())
		s.Require().NoError(err)

		_, err = s.commands.SelectAlternative(context.Background(), validToken, sessionID, "21:00")
		s.Require().ErrorIs(err, booking.ErrUnknownAlternative)
	})

	s.Run("error: malformed time", func() {
		s.expectIdentify()
		sessionID := s.startSession()

		_, err := s.commands.SelectAlternative(context.Background(), validToken, sessionID, "8pm")
		s.Require().ErrorIs(err, errs.ErrDomainValidation)
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *BookingCommandsTestSuite) TestConfirm() {
	s.Run("success: full happy path ends on Confirmation", func() {
		s.expectIdentify()
		sessionID := s.startSession()

		s.mockAvailability.EXPECT().
			CheckAvailability(gomock.Any(), validToken, gomock.Any()).
			Return(availableTable2(), nil)
		s.mockNotifier.EXPECT().Notify(commands.KindSuccess, "Table Available", gomock.Any())

		_, err := s.commands.Search(context.Background(), validToken, sessionID, s.searchParams())
		s.Require().NoError(err)

		_, err = s.commands.Proceed(context.Background(), validToken, sessionID)
		s.Require().NoError(err)

		confirmation := s.buildConfirmation("RES-000042", true)
		s.mockReservations.EXPECT().
			ConfirmReservation(gomock.Any(), validToken, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, details booking.GuestDetails, criteria booking.SearchCriteria, table booking.TableRef) (booking.Confirmation, error) {
				s.Equal("Taro Yamada", details.FullName)
				s.Equal("2025-06-15", criteria.Date().String())
				s.Equal(2, table.ID())
				return confirmation, nil
			})
		s.mockNotifier.EXPECT().Notify(commands.KindSuccess, "Reservation Confirmed", "Your table is booked. Reference: RES-000042")

		view, err := s.commands.Confirm(context.Background(), validToken, sessionID)
		s.Require().NoError(err)

		s.Equal("confirmation", view.Step)
		s.Require().NotNil(view.Confirmation)
		s.Equal("RES-000042", view.Confirmation.ReservationID)
		s.Equal("Table 2", view.Confirmation.TableName)
		s.True(view.Confirmation.ConfirmationSent)
	})

	s.Run("success: unsent confirmation message adds an informational notice", func() {
		s.expectIdentify()
		sessionID := s.startSession()
		s.advanceToDetails(sessionID)

		s.mockReservations.EXPECT().
			ConfirmReservation(gomock.Any(), validToken, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s.buildConfirmation("RES-000043", false), nil)
		s.mockNotifier.EXPECT().Notify(commands.KindSuccess, "Reservation Confirmed", gomock.Any())
		s.mockNotifier.EXPECT().Notify(commands.KindInfo, "Confirmation Message Not Sent", gomock.Any())

		view, err := s.commands.Confirm(context.Background(), validToken, sessionID)
		s.Require().NoError(err)
		s.False(view.Confirmation.ConfirmationSent)
	})

	s.Run("error: service failure keeps step and details intact", func() {
		s.expectIdentify()
		sessionID := s.startSession()
		s.advanceToDetails(sessionID)

		updated := booking.GuestDetails{
			FullName:        "Hanako Sato",
			Phone:           "080-0000-0000",
			Email:           "hanako@example.com",
			SpecialRequests: "window seat",
		}
		_, err := s.commands.UpdateDetails(context.Background(), validToken, sessionID, updated)
		s.Require().NoError(err)

		s.mockReservations.EXPECT().
			ConfirmReservation(gomock.Any(), validToken, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(booking.Confirmation{}, errors.New("upstream 500"))
		s.mockNotifier.EXPECT().Notify(commands.KindError, "Booking Failed", gomock.Any())

		_, err = s.commands.Confirm(context.Background(), validToken, sessionID)
		s.Require().ErrorIs(err, errs.ErrConfirmationService)

		session, peekErr := s.store.Peek(sessionID)
		s.Require().NoError(peekErr)
		s.Equal(booking.StepDetails, session.Step())
		s.Equal(updated, session.Details(), "entered details survive a failed confirmation")
	})

	s.Run("error: incomplete details never reach the reservation service", func() {
		s.expectIdentify()
		sessionID := s.startSession()
		s.advanceToDetails(sessionID)

		_, err := s.commands.UpdateDetails(context.Background(), validToken, sessionID, booking.GuestDetails{FullName: "Taro"})
		s.Require().NoError(err)

		_, err = s.commands.Confirm(context.Background(), validToken, sessionID)
		s.Require().ErrorIs(err, booking.ErrDetailsIncomplete)
	})
}

// ================================================================================
// TestReset / session guards
// ================================================================================

func (s *BookingCommandsTestSuite) TestReset() {
	s.expectIdentify()
	s.anyNotifications()
	sessionID := s.startSession()
	s.advanceToDetails(sessionID)

	s.mockReservations.EXPECT().
		ConfirmReservation(gomock.Any(), validToken, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(s.buildConfirmation("RES-000042", true), nil)
	_, err := s.commands.Confirm(context.Background(), validToken, sessionID)
	s.Require().NoError(err)

	view, err := s.commands.Reset(context.Background(), validToken, sessionID)
	s.Require().NoError(err)

	s.Equal("search", view.Step)
	s.False(view.SlotResolved)
	s.Nil(view.Availability)
	s.Nil(view.Confirmation)
	s.Equal("Taro Yamada", view.Details.FullName, "defaults re-seed from the identity")

	s.Require().NotNil(view.Criteria, "the search form re-seeds instead of coming back empty")
	s.Equal("2025-06-01", view.Criteria.Date, "today per the wizard clock")
	s.Equal("19:00", view.Criteria.Time)
	s.Equal(2, view.Criteria.PartySize)
}

func (s *BookingCommandsTestSuite) TestSessionGuards() {
	s.Run("busy session rejects a concurrent action", func() {
		s.expectIdentify()
		sessionID := s.startSession()

		_, err := s.store.Acquire(sessionID)
		s.Require().NoError(err)
		defer s.store.Release(sessionID)

		_, err = s.commands.Proceed(context.Background(), validToken, sessionID)
		s.Require().ErrorIs(err, errs.ErrActionInProgress)
	})

	s.Run("another guest's session reads as not found", func() {
		s.expectIdentify()
		sessionID := s.startSession()

		stranger := &commands.Identity{UserID: uuid.New(), Name: "Someone Else", Token: "other-token"}
		s.mockIdentity.EXPECT().Identify("other-token").Return(stranger, nil)

		_, err := s.commands.Proceed(context.Background(), "other-token", sessionID)
		s.Require().ErrorIs(err, errs.ErrSessionNotFound)
	})
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func (s *BookingCommandsTestSuite) TestCancelReservation() {
	s.Run("success: notifies the guest", func() {
		s.expectIdentify()

		s.mockReservations.EXPECT().CancelReservation(gomock.Any(), validToken, "RES-000042").Return(nil)
		s.mockNotifier.EXPECT().Notify(commands.KindSuccess, "Reservation Canceled", gomock.Any())

		err := s.commands.CancelReservation(context.Background(), validToken, "RES-000042")
		s.Require().NoError(err)
	})

	s.Run("error: missing reservation id", func() {
		s.expectIdentify()

		err := s.commands.CancelReservation(context.Background(), validToken, "")
		s.Require().ErrorIs(err, errs.ErrDomainValidation)
	})

	s.Run("error: unknown reservation maps to not found", func() {
		s.expectIdentify()

		s.mockReservations.EXPECT().
			CancelReservation(gomock.Any(), validToken, "RES-999999").
			Return(errs.ErrReservationNotFound)

		err := s.commands.CancelReservation(context.Background(), validToken, "RES-999999")
		s.Require().ErrorIs(err, errs.ErrReservationNotFound)
	})

	s.Run("error: service failure marks the reservation service", func() {
		s.expectIdentify()

		s.mockReservations.EXPECT().
			CancelReservation(gomock.Any(), validToken, "RES-000042").
			Return(errors.New("upstream 500"))
		s.mockNotifier.EXPECT().Notify(commands.KindError, "Cancellation Failed", gomock.Any())

		err := s.commands.CancelReservation(context.Background(), validToken, "RES-000042")
		s.Require().ErrorIs(err, errs.ErrReservationService)
	})
}

// advanceToDetails walks a session through a successful search and proceed.
func (s *BookingCommandsTestSuite) advanceToDetails(sessionID uuid.UUID) {
	s.T().Helper()

	s.mockAvailability.EXPECT().
		CheckAvailability(gomock.Any(), validToken, gomock.Any()).
		Return(availableTable2(), nil)
	s.mockNotifier.EXPECT().Notify(commands.KindSuccess, "Table Available", gomock.Any()).AnyTimes()

	_, err := s.commands.Search(context.Background(), validToken, sessionID, s.searchParams())
	s.Require().NoError(err)

	_, err = s.commands.Proceed(context.Background(), validToken, sessionID)
	s.Require().NoError(err)
}

func (s *BookingCommandsTestSuite) buildConfirmation(id string, sent bool) booking.Confirmation {
	s.T().Helper()

	now := s.clock.Now()
	date, err := booking.NewDate("2025-06-15", now)
	s.Require().NoError(err)
	tod, err := booking.NewTimeOfDay("19:30")
	s.Require().NoError(err)
	size, err := booking.NewPartySize(2)
	s.Require().NoError(err)

	confirmation, err := booking.NewConfirmation(
		id, booking.NewTableRef(2, "Table 2"), date, tod, size,
		"Taro Yamada", booking.StatusConfirmed, sent,
	)
	s.Require().NoError(err)
	return confirmation
}
