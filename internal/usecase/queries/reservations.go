package queries

import (
	"context"

	"tastybite-booking/internal/pkg/errs"
)

// ReservationReader is the read port into the backend reservation service.
type ReservationReader interface {
	ListMyReservations(ctx context.Context, token string) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	ListMine(ctx context.Context, token string) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	reader ReservationReader
}

func NewReservationQueries(reader ReservationReader) ReservationQueries {
	return &reservationQueriesImpl{reader: reader}
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, token string) ([]*ReservationListItem, error) {
	if token == "" {
		return nil, errs.ErrAuthenticationRequired
	}
	items, err := q.reader.ListMyReservations(ctx, token)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrReservationService)
	}
	if items == nil {
		items = []*ReservationListItem{}
	}
	return items, nil
}
