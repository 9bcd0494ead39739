package http

import (
	"fmt"
	"net/http"

	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/pkg/response"

	"github.com/CAFxX/httpcompression"
	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	doctorHandler           *handler.DoctorHandler
	pageHandler             *handler.PageHandler
	corsMiddleware          *middleware.CORSMiddleware
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	pageHandler *handler.PageHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		doctorHandler:           doctorHandler,
		pageHandler:             pageHandler,
		corsMiddleware:          corsMiddleware,
		requestLoggerMiddleware: requestLoggerMiddleware,
	}
}

// Setup registers every route and returns the root handler. Request logging
// wraps the router so unmatched paths are logged too.
func (r *Router) Setup() (http.Handler, error) {
	// SSE streams are flushed event by event and stay uncompressed.
	compress, err := httpcompression.DefaultAdapter()
	if err != nil {
		return nil, fmt.Errorf("failed to create compression adapter: %w", err)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.Use(r.corsMiddleware.Handle)
	api.Use(compress)

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory (public, read-only)
	api.HandleFunc("/doctors", r.doctorHandler.GetDoctors).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/doctors/suggestions", r.doctorHandler.GetSuggestions).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/specialties", r.doctorHandler.GetVocabulary).Methods(http.MethodGet, http.MethodOptions)
	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "")
	})

	// Datastar endpoints behind the page controls
	ui := r.router.PathPrefix("/ui").Subrouter()
	ui.HandleFunc("/search", r.pageHandler.Search).Methods(http.MethodGet)
	ui.HandleFunc("/select", r.pageHandler.Select).Methods(http.MethodGet)
	ui.HandleFunc("/update", r.pageHandler.Update).Methods(http.MethodGet)
	ui.HandleFunc("/toggle", r.pageHandler.Toggle).Methods(http.MethodGet)
	ui.HandleFunc("/refresh", r.pageHandler.Refresh).Methods(http.MethodGet)

	// Page
	r.router.Handle("/", compress(http.HandlerFunc(r.pageHandler.Index))).Methods(http.MethodGet)

	return r.requestLoggerMiddleware.Handle(r.router), nil
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
