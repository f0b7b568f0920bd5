package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"tastybite-booking/internal/domain/booking"
	"tastybite-booking/internal/infra"
	"tastybite-booking/internal/pkg/clock"
	"tastybite-booking/internal/pkg/config"
	"tastybite-booking/internal/usecase/queries"
)

// HTTPClient talks to the restaurant backend REST API. It implements the
// availability and reservation ports plus the read side for reservation
// listings. Every call carries the guest's bearer token; callers guarantee a
// token is present before a request is issued.
type HTTPClient struct {
	hc      *http.Client
	baseURL string
	loc     *time.Location
	clock   clock.Clock
	logger  *slog.Logger
}

func NewHTTPClient(cfg config.BookingConfig, clk clock.Clock, logger *slog.Logger) *HTTPClient {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		loc = time.Local
	}
	return &HTTPClient{
		hc:      &http.Client{Timeout: cfg.UpstreamTimeout},
		baseURL: cfg.UpstreamBaseURL,
		loc:     loc,
		clock:   clk,
		logger:  logger,
	}
}

type availabilityRequest struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"party_size"`
}

type alternativeTime struct {
	Time            string `json:"time"`
	AvailableTables int    `json:"available_tables"`
}

type availabilityResponse struct {
	Available    bool              `json:"available"`
	TableID      *int              `json:"table_id,omitempty"`
	TableName    *string           `json:"table_name,omitempty"`
	Message      string            `json:"message"`
	Alternatives []alternativeTime `json:"alternatives"`
}

type createReservationRequest struct {
	ReservationDate string `json:"reservation_date"`
	PartySize       int    `json:"party_size"`
	SpecialRequests string `json:"special_requests"`
}

type confirmationResponse struct {
	ReservationID    string `json:"reservation_id"`
	TableName        string `json:"table_name"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	PartySize        int    `json:"party_size"`
	CustomerName     string `json:"customer_name"`
	Status           string `json:"status"`
	ConfirmationSent bool   `json:"confirmation_sent"`
}

type reservationRow struct {
	ID              json.Number `json:"id"`
	ReservationDate time.Time   `json:"reservation_date"`
	PartySize       int         `json:"party_size"`
	Status          string      `json:"status"`
	TableNumber     *string     `json:"table_number,omitempty"`
	SpecialRequests *string     `json:"special_requests,omitempty"`
}

func (c *HTTPClient) CheckAvailability(ctx context.Context, token string, criteria booking.SearchCriteria) (booking.AvailabilityResult, error) {
	reqBody := availabilityRequest{
		Date:      criteria.Date().String(),
		Time:      criteria.Time().String(),
		PartySize: criteria.PartySize().Int(),
	}

	var resp availabilityResponse
	if err := c.do(ctx, http.MethodPost, "/tables/check-availability", token, reqBody, &resp); err != nil {
		return booking.AvailabilityResult{}, err
	}

	return c.toAvailabilityResult(resp)
}

func (c *HTTPClient) toAvailabilityResult(resp availabilityResponse) (booking.AvailabilityResult, error) {
	if resp.Available {
		if resp.TableID == nil || resp.TableName == nil {
			return booking.AvailabilityResult{}, infra.WrapClientErr(c.logger, infra.KindBadResponse,
				"available response missing table assignment", nil)
		}
		return booking.NewAvailableResult(booking.NewTableRef(*resp.TableID, *resp.TableName), resp.Message), nil
	}

	// Preserve the backend's own ranking of alternatives.
	alternatives := make([]booking.AlternativeSlot, 0, len(resp.Alternatives))
	for _, alt := range resp.Alternatives {
		t, err := booking.NewTimeOfDay(alt.Time)
		if err != nil {
			return booking.AvailabilityResult{}, infra.WrapClientErr(c.logger, infra.KindBadResponse,
				fmt.Sprintf("malformed alternative time %q", alt.Time), err)
		}
		slot, err := booking.NewAlternativeSlot(t, alt.AvailableTables)
		if err != nil {
			return booking.AvailabilityResult{}, infra.WrapClientErr(c.logger, infra.KindBadResponse,
				"malformed alternative slot", err)
		}
		alternatives = append(alternatives, slot)
	}
	return booking.NewUnavailableResult(resp.Message, alternatives), nil
}

// ConfirmReservation runs the backend's two-call flow: create the
// reservation record, then confirm it against the assigned table.
func (c *HTTPClient) ConfirmReservation(ctx context.Context, token string, details booking.GuestDetails, criteria booking.SearchCriteria, table booking.TableRef) (booking.Confirmation, error) {
	createBody := createReservationRequest{
		ReservationDate: fmt.Sprintf("%sT%s:00", criteria.Date().String(), criteria.Time().String()),
		PartySize:       criteria.PartySize().Int(),
		SpecialRequests: details.SpecialRequests,
	}

	var record map[string]any
	if err := c.do(ctx, http.MethodPost, "/reservations/", token, createBody, &record); err != nil {
		return booking.Confirmation{}, err
	}

	// The confirm endpoint expects the full reservation record plus the table id.
	record["table_id"] = table.ID()

	var resp confirmationResponse
	if err := c.do(ctx, http.MethodPost, "/tables/confirm-reservation", token, record, &resp); err != nil {
		return booking.Confirmation{}, err
	}

	return c.toConfirmation(resp)
}

func (c *HTTPClient) toConfirmation(resp confirmationResponse) (booking.Confirmation, error) {
	date, err := booking.NewDate(resp.Date, c.clock.Now().In(c.loc))
	if err != nil {
		return booking.Confirmation{}, infra.WrapClientErr(c.logger, infra.KindBadResponse,
			fmt.Sprintf("malformed confirmation date %q", resp.Date), err)
	}
	timeOfDay, err := booking.NewTimeOfDay(resp.Time)
	if err != nil {
		return booking.Confirmation{}, infra.WrapClientErr(c.logger, infra.KindBadResponse,
			fmt.Sprintf("malformed confirmation time %q", resp.Time), err)
	}
	partySize, err := booking.NewPartySize(resp.PartySize)
	if err != nil {
		return booking.Confirmation{}, infra.WrapClientErr(c.logger, infra.KindBadResponse,
			"malformed confirmation party size", err)
	}

	confirmation, err := booking.NewConfirmation(
		resp.ReservationID,
		booking.NewTableRef(0, resp.TableName),
		date,
		timeOfDay,
		partySize,
		resp.CustomerName,
		booking.Status(resp.Status),
		resp.ConfirmationSent,
	)
	if err != nil {
		return booking.Confirmation{}, infra.WrapClientErr(c.logger, infra.KindBadResponse,
			"malformed confirmation record", err)
	}
	return confirmation, nil
}

func (c *HTTPClient) CancelReservation(ctx context.Context, token string, reservationID string) error {
	return c.do(ctx, http.MethodDelete, "/reservations/"+reservationID, token, nil, nil)
}

func (c *HTTPClient) ListMyReservations(ctx context.Context, token string) ([]*queries.ReservationListItem, error) {
	var rows []reservationRow
	if err := c.do(ctx, http.MethodGet, "/reservations/my-reservations", token, nil, &rows); err != nil {
		return nil, err
	}

	items := make([]*queries.ReservationListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.ReservationListItem{
			ID:              row.ID.String(),
			ReservationDate: row.ReservationDate,
			PartySize:       row.PartySize,
			Status:          row.Status,
			TableNumber:     row.TableNumber,
			SpecialRequests: row.SpecialRequests,
		})
	}
	return items, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return infra.WrapClientErr(c.logger, infra.KindBadRequest, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return infra.WrapClientErr(c.logger, infra.KindBadRequest, "failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return infra.WrapClientErr(c.logger, infra.KindUpstreamFailure, method+" "+path+" failed", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapClientErr(c.logger, infra.KindBadResponse, "failed to read response body", err)
	}

	if resp.StatusCode >= 400 {
		return c.statusError(resp.StatusCode, path, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return infra.WrapClientErr(c.logger, infra.KindBadResponse, "failed to decode response body", err)
		}
	}
	return nil
}

func (c *HTTPClient) statusError(status int, path string, body []byte) error {
	// FastAPI-style error payloads carry a human message in "detail".
	var payload struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(body, &payload)
	msg := payload.Detail
	if msg == "" {
		msg = fmt.Sprintf("%s returned status %d", path, status)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return infra.WrapClientErr(c.logger, infra.KindUnauthorized, msg, nil)
	case status == http.StatusNotFound:
		return infra.WrapClientErr(c.logger, infra.KindNotFound, msg, nil)
	case status == http.StatusConflict:
		return infra.WrapClientErr(c.logger, infra.KindConflict, msg, nil)
	case status < 500:
		return infra.WrapClientErr(c.logger, infra.KindBadRequest, msg, nil)
	default:
		return infra.WrapClientErr(c.logger, infra.KindUpstreamFailure, msg, nil)
	}
}
