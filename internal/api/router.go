package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/liakhandrii/agentcore-memory-browser/internal/api/recovery"
)

// NewRouter wires the browser's routes to the handler.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(recovery.Middleware(h.log))

	r.HandleFunc("/", h.Home).Methods(http.MethodGet)
	r.HandleFunc("/ui/select", h.Select).Methods(http.MethodPost)

	r.HandleFunc("/ui/events/list", h.ListEvents).Methods(http.MethodPost)
	r.HandleFunc("/ui/events/add", h.AddEvent).Methods(http.MethodPost)
	r.HandleFunc("/ui/records/list", h.ListRecords).Methods(http.MethodPost)
	r.HandleFunc("/ui/records/search", h.RetrieveRecords).Methods(http.MethodPost)

	r.HandleFunc("/ui/items/json", h.ItemJSON).Methods(http.MethodGet)
	r.HandleFunc("/ui/items/delete", h.DeleteItem).Methods(http.MethodPost)

	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
