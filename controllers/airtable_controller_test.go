package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"swipe_server/models"
	"swipe_server/services"
)

type stubAirtable struct {
	raw   services.RawResponse
	err   error
	calls int
	table string
	query string
	swipe models.SwipeRequest
}

func (s *stubAirtable) Query(_ context.Context, table, params string) (services.RawResponse, error) {
	s.calls++
	s.table = table
	s.query = params
	return s.raw, s.err
}

func (s *stubAirtable) CreateSwipe(_ context.Context, swipe models.SwipeRequest) (services.RawResponse, error) {
	s.calls++
	s.swipe = swipe
	return s.raw, s.err
}

func TestQuery_DefaultsTable(t *testing.T) {
	body := []byte(`{"records":[]}`)
	svc := &stubAirtable{raw: services.RawResponse{StatusCode: http.StatusOK, Body: body}}
	c := NewAirtableController(svc, "Listings")

	rec := httptest.NewRecorder()
	c.Query(rec, httptest.NewRequest(http.MethodGet, "/airtable", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, body, rec.Body.Bytes())
	require.Equal(t, "Listings", svc.table)
	require.Empty(t, svc.query)
}

func TestQuery_PassesTableAndParams(t *testing.T) {
	svc := &stubAirtable{raw: services.RawResponse{StatusCode: http.StatusOK, Body: []byte(`{}`)}}
	c := NewAirtableController(svc, "Listings")

	target := "/airtable?table=Swipes&params=" + "maxRecords%3D5%26view%3DGrid%2520view"
	rec := httptest.NewRecorder()
	c.Query(rec, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Swipes", svc.table)
	require.Equal(t, "maxRecords=5&view=Grid%20view", svc.query)
}

func TestQuery_RelaysUpstreamError(t *testing.T) {
	svc := &stubAirtable{err: &services.Error{
		Kind:    services.KindUpstream,
		Message: "airtable query returned status 403",
		Status:  http.StatusForbidden,
		Details: "INVALID_PERMISSIONS_OR_MODEL_NOT_FOUND",
	}}
	rec := httptest.NewRecorder()
	NewAirtableController(svc, "Listings").Query(rec, httptest.NewRequest(http.MethodGet, "/airtable", nil))

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error":"airtable query returned status 403","details":"INVALID_PERMISSIONS_OR_MODEL_NOT_FOUND"}`, rec.Body.String())
}

func TestLogSwipe_Created(t *testing.T) {
	created := []byte(`{"records":[{"id":"recNew","fields":{}}]}`)
	svc := &stubAirtable{raw: services.RawResponse{StatusCode: http.StatusOK, ContentType: "application/json", Body: created}}
	c := NewAirtableController(svc, "Listings")

	body := `{"renterId":"renter-1","listingRecordId":"recL","swipeAction":"Dislike","timestamp":"2024-05-01T10:00:00Z"}`
	rec := httptest.NewRecorder()
	c.LogSwipe(rec, httptest.NewRequest(http.MethodPost, "/airtable/swipe", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, created, rec.Body.Bytes())
	require.Equal(t, models.SwipeRequest{
		RenterID:        "renter-1",
		ListingRecordID: "recL",
		SwipeAction:     models.SwipeActionDislike,
		Timestamp:       "2024-05-01T10:00:00Z",
	}, svc.swipe)
}

func TestLogSwipe_MissingFields(t *testing.T) {
	cases := map[string]string{
		"renterId":        `{"listingRecordId":"recL","swipeAction":"Like","timestamp":"t"}`,
		"listingRecordId": `{"renterId":"r","swipeAction":"Like","timestamp":"t"}`,
		"swipeAction":     `{"renterId":"r","listingRecordId":"recL","timestamp":"t"}`,
		"timestamp":       `{"renterId":"r","listingRecordId":"recL","swipeAction":"Like"}`,
	}
	for field, body := range cases {
		t.Run(field, func(t *testing.T) {
			svc := &stubAirtable{}
			rec := httptest.NewRecorder()
			NewAirtableController(svc, "Listings").LogSwipe(rec, httptest.NewRequest(http.MethodPost, "/airtable/swipe", strings.NewReader(body)))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), field)
			require.Zero(t, svc.calls)
		})
	}
}

func TestLogSwipe_InvalidAction(t *testing.T) {
	svc := &stubAirtable{}
	body := `{"renterId":"r","listingRecordId":"recL","swipeAction":"Superlike","timestamp":"t"}`
	rec := httptest.NewRecorder()
	NewAirtableController(svc, "Listings").LogSwipe(rec, httptest.NewRequest(http.MethodPost, "/airtable/swipe", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, svc.calls)
}

func TestLogSwipe_UpstreamRejected(t *testing.T) {
	svc := &stubAirtable{err: &services.Error{
		Kind:    services.KindUpstream,
		Message: "airtable create_swipe returned status 422",
		Status:  http.StatusUnprocessableEntity,
		Details: "Unknown field name: \"Renter_ID\"",
	}}
	body := `{"renterId":"r","listingRecordId":"recL","swipeAction":"Like","timestamp":"t"}`
	rec := httptest.NewRecorder()
	NewAirtableController(svc, "Listings").LogSwipe(rec, httptest.NewRequest(http.MethodPost, "/airtable/swipe", strings.NewReader(body)))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), `"details"`)
}

func TestLogSwipe_TransportFailure(t *testing.T) {
	svc := &stubAirtable{err: &services.Error{Kind: services.KindUpstream, Message: "airtable create_swipe request failed"}}
	body := `{"renterId":"r","listingRecordId":"recL","swipeAction":"Like","timestamp":"t"}`
	rec := httptest.NewRecorder()
	NewAirtableController(svc, "Listings").LogSwipe(rec, httptest.NewRequest(http.MethodPost, "/airtable/swipe", strings.NewReader(body)))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
