package routes

import (
	"swipe_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterAirtableRoutes sets up routes for the tabular store
func RegisterAirtableRoutes(r *mux.Router, airtableService controllers.AirtableProxy, listingsTable string) {
	controller := controllers.NewAirtableController(airtableService, listingsTable)

	r.HandleFunc("/airtable", controller.Query).Methods("GET")
	r.HandleFunc("/airtable/swipe", controller.LogSwipe).Methods("POST")
}
