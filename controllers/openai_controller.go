package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"swipe_server/helpers"
	"swipe_server/services"
)

// Completer forwards a raw chat completion request.
type Completer interface {
	Complete(ctx context.Context, body []byte) (services.RawResponse, error)
}

// OpenAIController proxies the stateless chat completions endpoint
type OpenAIController struct {
	OpenAIService Completer
}

// NewOpenAIController creates a new OpenAIController instance
func NewOpenAIController(openAIService Completer) *OpenAIController {
	return &OpenAIController{OpenAIService: openAIService}
}

// Proxy forwards the request body untouched and relays the upstream answer
func (oc *OpenAIController) Proxy(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		zerolog.Ctx(r.Context()).Info().Err(err).Msg("unreadable completion payload")
		helpers.WriteJSONResponse(w, http.StatusBadRequest, helpers.ErrorResponse{Error: "Invalid request payload"})
		return
	}

	raw, err := oc.OpenAIService.Complete(r.Context(), body)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.WriteRawResponse(w, raw)
}
