// Package httpapi exposes the behaviour registry over HTTP while a scenario
// is replayed: Prometheus metrics, liveness and a snapshot of the active
// desktop notification behaviours.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/ariel-frischer/notifybehaviour/internal/behaviour"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// BehaviourView is the JSON form of one active behaviour.
type BehaviourView struct {
	EntityID  string `json:"entity_id"`
	AppName   string `json:"app_name"`
	Summary   string `json:"summary"`
	Body      string `json:"body"`
	Icon      string `json:"icon"`
	TimeoutMS int32  `json:"timeout_ms"`
}

// NewMux returns the router served by `notifyctl replay --metrics-addr`.
func NewMux(p *behaviour.Provider) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/behaviours", func(w http.ResponseWriter, r *http.Request) {
		views := make([]BehaviourView, 0, p.Len())
		for _, id := range p.IDs() {
			b, ok := p.Get(id)
			if !ok {
				// detached between IDs and Get
				continue
			}
			n := b.Notification()
			views = append(views, BehaviourView{
				EntityID:  id.String(),
				AppName:   n.AppName,
				Summary:   n.Summary,
				Body:      n.Body,
				Icon:      n.Icon,
				TimeoutMS: n.Timeout.Millis(),
			})
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"behaviours": views}); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		}
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": msg})
}
