package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"swipe_server/helpers"
	"swipe_server/models"
	"swipe_server/services"
)

// AirtableProxy reads tables and writes swipe records.
type AirtableProxy interface {
	Query(ctx context.Context, table, params string) (services.RawResponse, error)
	CreateSwipe(ctx context.Context, swipe models.SwipeRequest) (services.RawResponse, error)
}

// AirtableController handles HTTP requests for the tabular store
type AirtableController struct {
	AirtableService AirtableProxy
	DefaultTable    string
}

// NewAirtableController creates a new AirtableController instance
func NewAirtableController(airtableService AirtableProxy, defaultTable string) *AirtableController {
	return &AirtableController{AirtableService: airtableService, DefaultTable: defaultTable}
}

// Query relays a read of ?table= with the pre-encoded ?params= fragment
func (ac *AirtableController) Query(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	table := strings.TrimSpace(query.Get("table"))
	if table == "" {
		table = ac.DefaultTable
	}

	raw, err := ac.AirtableService.Query(r.Context(), table, query.Get("params"))
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.WriteRawResponse(w, raw)
}

// LogSwipe records a renter's like or dislike of a listing
func (ac *AirtableController) LogSwipe(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var request models.SwipeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&request); err != nil {
		logger.Info().Err(err).Msg("invalid swipe payload")
		helpers.WriteJSONResponse(w, http.StatusBadRequest, helpers.ErrorResponse{Error: "Invalid request payload"})
		return
	}

	if missing := request.MissingFields(); len(missing) > 0 {
		helpers.WriteError(w, r, services.ValidationError("Missing required fields: "+strings.Join(missing, ", ")))
		return
	}
	if !models.IsValidSwipeAction(request.SwipeAction) {
		helpers.WriteError(w, r, services.ValidationError("swipeAction must be Like or Dislike"))
		return
	}

	raw, err := ac.AirtableService.CreateSwipe(r.Context(), request)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	logger.Info().Str("renter_id", request.RenterID).Str("action", request.SwipeAction).Msg("swipe logged")

	raw.StatusCode = http.StatusCreated
	helpers.WriteRawResponse(w, raw)
}
