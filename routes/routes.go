package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"swipe_server/controllers"
	"swipe_server/utils"
)

// RegisterRoutes sets up the routes that need no upstream
func RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/healthz", controllers.HealthCheckHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

// NewHandler wraps the router with CORS for the allowed origins and the
// request id, request log and security header middleware.
func NewHandler(r *mux.Router, allowedOrigins []string) http.Handler {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
	}).Handler(r)

	return utils.WithRequestID(utils.WithRequestLog(routeTemplates(r), utils.WithSecurityHeaders(corsHandler)))
}

// routeTemplates lists the path of every registered route.
func routeTemplates(r *mux.Router) []string {
	var templates []string
	_ = r.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		if tpl, err := route.GetPathTemplate(); err == nil {
			templates = append(templates, tpl)
		}
		return nil
	})
	return templates
}
