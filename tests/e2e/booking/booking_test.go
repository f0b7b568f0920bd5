//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"tastybite-booking/internal/handler/dto/request"
	"tastybite-booking/internal/usecase/queries"
	"tastybite-booking/tests/common/helper"
	"tastybite-booking/tests/e2e"
	jwtHelper "tastybite-booking/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	sessionsURL     = "/api/booking/sessions"
	reservationsURL = "/api/reservations"
)

type bookingSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(bookingSuite))
}

// フェイクバックエンドの予約状態を持ち越さないよう、テスト毎にアプリを組み立て直す
func (s *bookingSuite) SetupTest() {
	s.SetupSharedSuite(s.T())
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.T(), s.Config.JWT)
}

func (s *bookingSuite) startSession(token string) queries.SessionView {
	w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL, nil, token)
	var view queries.SessionView
	helper.AssertSuccessResponse(s.T(), w, http.StatusCreated, &view)
	return view
}

func (s *bookingSuite) sessionURL(view queries.SessionView, action string) string {
	if action == "" {
		return fmt.Sprintf("%s/%s", sessionsURL, view.ID)
	}
	return fmt.Sprintf("%s/%s/%s", sessionsURL, view.ID, action)
}

// ウィザードの全画面を通しで進める正常系
func (s *bookingSuite) TestFullBookingFlow() {
	_, token := s.jwtHelper.IssueToken(s.T(), "Taro Yamada", "taro@example.com", "090-1234-5678")

	view := s.startSession(token)
	s.Equal("search", view.Step)
	s.Equal("Taro Yamada", view.Details.FullName, "トークンの情報が初期値として入るはず")
	s.Equal("taro@example.com", view.Details.Email)
	require.NotNil(s.T(), view.Criteria, "検索フォームは初期値入りで始まる")
	s.Equal(s.Config.Booking.DefaultTime, view.Criteria.Time)
	s.Equal(s.Config.Booking.DefaultPartySize, view.Criteria.PartySize)

	// 検索: 2名ならもっとも小さい2人席が取れる
	w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(view, "search"), request.SearchRequest{
		Date:      "2027-03-14",
		Time:      "19:30",
		PartySize: 2,
	}, token)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)

	tableID := 2
	tableName := "Table 2"
	expected := &queries.SessionView{
		Step:         "availability",
		Criteria:     &queries.CriteriaView{Date: "2027-03-14", Time: "19:30", PartySize: 2},
		SlotResolved: true,
		Availability: &queries.AvailabilityView{
			Available:    true,
			TableID:      &tableID,
			TableName:    &tableName,
			Message:      "Table for 2 available at 19:30",
			Alternatives: []queries.AlternativeView{},
		},
		Details: queries.DetailsView{
			FullName: "Taro Yamada",
			Phone:    "090-1234-5678",
			Email:    "taro@example.com",
		},
	}
	opts := []cmp.Option{
		cmpopts.IgnoreFields(queries.SessionView{}, "ID", "CreatedAt", "UpdatedAt", "Notices"),
	}
	if diff := cmp.Diff(expected, &view, opts...); diff != "" {
		s.T().Errorf("Session view mismatch (-want +got):\n%s", diff)
	}
	require.NotEmpty(s.T(), view.Notices, "検索結果のトーストが積まれるはず")
	s.Equal("Table Available", view.Notices[len(view.Notices)-1].Title)

	w = helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(view, "proceed"), nil, token)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
	s.Equal("details", view.Step)

	w = helper.PerformRequest(s.T(), s.Router, http.MethodPut, s.sessionURL(view, "details"), request.UpdateDetailsRequest{
		FullName:        "Taro Yamada",
		Phone:           "090-1234-5678",
		Email:           "taro@example.com",
		SpecialRequests: "Window seat please",
	}, token)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
	s.Equal("Window seat please", view.Details.SpecialRequests)

	w = helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(view, "confirm"), nil, token)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
	s.Equal("confirmation", view.Step)
	require.NotNil(s.T(), view.Confirmation)
	s.Regexp(`^RES-\d{6}$`, view.Confirmation.ReservationID)
	s.Equal("confirmed", view.Confirmation.Status)
	s.Equal("Table 2", view.Confirmation.TableName)
	s.True(view.Confirmation.ConfirmationSent)

	// 一覧に出て、取り消せる
	var items []queries.ReservationListItem
	w = helper.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL, nil, token)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
	require.Len(s.T(), items, 1)
	s.Equal(view.Confirmation.ReservationID, items[0].ID)
	s.Equal(2, items[0].PartySize)

	w = helper.PerformRequest(s.T(), s.Router, http.MethodDelete, reservationsURL+"/"+items[0].ID, nil, token)
	s.Equal(http.StatusNoContent, w.Code)

	w = helper.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL, nil, token)
	s.Equal(http.StatusOK, w.Code)
	helper.DecodeResponseBody(s.T(), w.Body, &items)
	require.Len(s.T(), items, 1)
	s.Equal("canceled", items[0].Status)
}

// 満席になった枠では代替時間帯で予約まで進められる
func (s *bookingSuite) TestAlternativeFlow() {
	_, firstToken := s.jwtHelper.IssueToken(s.T(), "Hanako Sato", "hanako@example.com", "")
	_, secondToken := s.jwtHelper.IssueToken(s.T(), "Jiro Suzuki", "jiro@example.com", "")

	// 8人席は1卓しかないので、先客が埋めると同時刻は満席になる
	first := s.startSession(firstToken)
	w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(first, "search"), request.SearchRequest{
		Date: "2027-04-02", Time: "19:00", PartySize: 8,
	}, firstToken)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)
	require.True(s.T(), first.Availability.Available)
	w = helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(first, "proceed"), nil, firstToken)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)
	w = helper.PerformRequest(s.T(), s.Router, http.MethodPut, s.sessionURL(first, "details"), request.UpdateDetailsRequest{
		FullName: "Hanako Sato", Phone: "080-0000-0001", Email: "hanako@example.com",
	}, firstToken)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)
	w = helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(first, "confirm"), nil, firstToken)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)

	second := s.startSession(secondToken)
	w = helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(second, "search"), request.SearchRequest{
		Date: "2027-04-02", Time: "19:00", PartySize: 8,
	}, secondToken)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
	s.False(second.Availability.Available)
	s.False(second.SlotResolved)
	require.NotEmpty(s.T(), second.Availability.Alternatives)

	// スロットが未確定のままでは先に進めない
	w = helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(second, "proceed"), nil, secondToken)
	s.Equal(http.StatusUnprocessableEntity, w.Code)

	alt := second.Availability.Alternatives[0]
	w = helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(second, "alternative"), request.SelectAlternativeRequest{
		Time: alt.Time,
	}, secondToken)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
	s.True(second.Availability.Available)
	s.True(second.SlotResolved)
	s.Equal(alt.Time, second.Criteria.Time)

	w = helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(second, "proceed"), nil, secondToken)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
	w = helper.PerformRequest(s.T(), s.Router, http.MethodPut, s.sessionURL(second, "details"), request.UpdateDetailsRequest{
		FullName: "Jiro Suzuki", Phone: "080-0000-0002", Email: "jiro@example.com",
	}, secondToken)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
	w = helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(second, "confirm"), nil, secondToken)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
	s.Equal("confirmation", second.Step)
	s.Equal(alt.Time, second.Confirmation.Time)
}

// 戻る・やり直しの画面遷移
func (s *bookingSuite) TestBackAndReset() {
	_, token := s.jwtHelper.IssueToken(s.T(), "Taro Yamada", "taro@example.com", "")

	view := s.startSession(token)
	w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(view, "search"), request.SearchRequest{
		Date: "2027-05-20", Time: "18:00", PartySize: 4,
	}, token)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)

	w = helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(view, "back"), nil, token)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
	s.Equal("search", view.Step)
	s.NotNil(view.Availability, "戻っても検索結果は残る")

	// 検索画面からさらに戻ることはできない
	w = helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(view, "back"), nil, token)
	helper.AssertErrorResponse(s.T(), w, http.StatusConflict, "not allowed in current step")

	w = helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(view, "reset"), nil, token)
	helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
	s.Equal("search", view.Step)
	s.Nil(view.Availability)
	s.Empty(view.Notices, "やり直しでトーストも消える")

	// やり直し後も検索フォームは空ではなく初期値入りで返る
	require.NotNil(s.T(), view.Criteria)
	s.Equal(time.Now().Format("2006-01-02"), view.Criteria.Date)
	s.Equal(s.Config.Booking.DefaultTime, view.Criteria.Time)
	s.Equal(s.Config.Booking.DefaultPartySize, view.Criteria.PartySize)
}

// 入力バリデーションはハンドラ層で弾かれる
func (s *bookingSuite) TestSearchValidation() {
	_, token := s.jwtHelper.IssueToken(s.T(), "Taro Yamada", "taro@example.com", "")
	view := s.startSession(token)

	base := map[string]any{"date": "2027-06-01", "time": "19:00", "party_size": 4}
	cases := map[string]func(map[string]any){
		"party size above the limit": helper.Field("party_size", 13),
		"missing date":               helper.Field("date", nil),
		"empty time":                 helper.Field("time", ""),
	}
	for name, mutate := range cases {
		s.Run(name, func() {
			body := map[string]any{}
			for k, v := range base {
				body[k] = v
			}
			mutate(body)

			w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, s.sessionURL(view, "search"), body, token)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

// 認証とセッション所有権のガード
func (s *bookingSuite) TestAuthGuards() {
	w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL, nil, "")
	helper.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")

	w = helper.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL, nil, "not-a-token")
	helper.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")

	// 他人のセッションは見えない
	_, ownerToken := s.jwtHelper.IssueToken(s.T(), "Owner", "owner@example.com", "")
	_, otherToken := s.jwtHelper.IssueToken(s.T(), "Other", "other@example.com", "")
	view := s.startSession(ownerToken)

	w = helper.PerformRequest(s.T(), s.Router, http.MethodGet, s.sessionURL(view, ""), nil, otherToken)
	helper.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking session not found")
}
