package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"swipe_server/helpers"
	"swipe_server/models"
)

// ChatReplier produces an assistant reply for a renter message.
type ChatReplier interface {
	Reply(ctx context.Context, req models.ChatRequest) (models.ChatReply, error)
}

// ChatController handles HTTP requests for the assistant conversation
type ChatController struct {
	ChatService ChatReplier
}

// NewChatController creates a new ChatController instance
func NewChatController(chatService ChatReplier) *ChatController {
	return &ChatController{ChatService: chatService}
}

// Chat relays a single message to the assistant
func (cc *ChatController) Chat(w http.ResponseWriter, r *http.Request) {
	var request models.ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&request); err != nil {
		zerolog.Ctx(r.Context()).Info().Err(err).Msg("invalid chat payload")
		helpers.WriteJSONResponse(w, http.StatusBadRequest, helpers.ErrorResponse{Error: "Invalid request payload"})
		return
	}

	reply, err := cc.ChatService.Reply(r.Context(), request)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, reply)
}
