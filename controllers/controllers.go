package controllers

import (
	"net/http"

	"swipe_server/helpers"
)

// maxBodyBytes caps every inbound JSON body.
const maxBodyBytes = 1 << 20

// HealthCheckHandler reports liveness without touching any upstream.
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Swipe proxy is running."})
}
