package routes

import (
	"swipe_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up the assistant conversation route
func RegisterChatRoutes(r *mux.Router, chatService controllers.ChatReplier) {
	controller := controllers.NewChatController(chatService)

	r.HandleFunc("/chat", controller.Chat).Methods("POST")
}
