package routes

import (
	"swipe_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterOpenAIRoutes sets up the raw chat completion proxy
func RegisterOpenAIRoutes(r *mux.Router, openAIService controllers.Completer) {
	controller := controllers.NewOpenAIController(openAIService)

	r.HandleFunc("/openai", controller.Proxy).Methods("POST")
}
