package queries

import (
	"context"

	"tastybite-booking/internal/domain/booking"
	"tastybite-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// SessionReader is the read port into the live session store.
type SessionReader interface {
	Peek(id uuid.UUID) (*booking.Session, error)
}

type SessionQueries interface {
	Get(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*SessionView, error)
}

type sessionQueriesImpl struct {
	sessions SessionReader
}

func NewSessionQueries(sessions SessionReader) SessionQueries {
	return &sessionQueriesImpl{sessions: sessions}
}

func (q *sessionQueriesImpl) Get(_ context.Context, userID uuid.UUID, sessionID uuid.UUID) (*SessionView, error) {
	session, err := q.sessions.Peek(sessionID)
	if err != nil {
		return nil, err
	}
	// Sessions are private to their owner; report foreign ids as missing.
	if session.UserID() != userID {
		return nil, errs.ErrSessionNotFound
	}
	return NewSessionView(session), nil
}
