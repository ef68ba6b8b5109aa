package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"swipe_server/services"
)

const internalErrorMessage = "Internal server error"

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONResponse encodes data as JSON with the given status.
func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// WriteRawResponse relays an upstream body and status without touching the
// bytes.
func WriteRawResponse(w http.ResponseWriter, raw services.RawResponse) {
	contentType := raw.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(raw.StatusCode)
	_, _ = w.Write(raw.Body)
}

// WriteError maps a service error to its HTTP status and body. Upstream
// errors carrying an upstream status are relayed with that status and the
// extracted details; all other upstream failures become 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		logger.Error().Err(err).Msg("unexpected error")
		WriteJSONResponse(w, http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
		return
	}

	switch svcErr.Kind {
	case services.KindValidation:
		WriteJSONResponse(w, http.StatusBadRequest, ErrorResponse{Error: svcErr.Message})
	case services.KindTimeout:
		logger.Warn().Err(err).Msg("upstream timed out")
		WriteJSONResponse(w, http.StatusGatewayTimeout, ErrorResponse{Error: svcErr.Message})
	case services.KindUpstream:
		if svcErr.Status > 0 {
			logger.Warn().Err(err).Int("upstream_status", svcErr.Status).Msg("upstream rejected request")
			WriteJSONResponse(w, svcErr.Status, ErrorResponse{Error: svcErr.Message, Details: svcErr.Details})
			return
		}
		logger.Error().Err(err).Msg("upstream request failed")
		WriteJSONResponse(w, http.StatusInternalServerError, ErrorResponse{Error: svcErr.Message})
	default:
		logger.Error().Err(err).Msg("internal error")
		WriteJSONResponse(w, http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
	}
}
