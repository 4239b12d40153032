package handler

import (
	"net/http"

	"github.com/pthana/linkshort/pkg/config"
	"github.com/pthana/linkshort/pkg/ports"

	"github.com/gorilla/mux"
)

// NewRouter creates and configures the main application router
func NewRouter(cfg *config.Config, service ports.LinkService, cleanup ports.CleanupService) http.Handler {
	h := NewHTTPHandler(service, cleanup, cfg.BaseURL)

	r := mux.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(Recover)

	r.HandleFunc("/healthz", h.Health).Methods("GET")
	r.HandleFunc("/create", h.Create).Methods("POST")
	r.HandleFunc("/urls", h.List).Methods("GET")
	r.HandleFunc("/clicks/{short_code}", h.ClickCount).Methods("GET")
	r.HandleFunc("/cleanup", h.Cleanup).Methods("DELETE")

	// Redirect route last so it cannot shadow the fixed paths.
	r.HandleFunc("/{short_code}", h.Redirect).Methods("GET")

	return r
}
