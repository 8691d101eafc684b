package handler

import (
	"context"
	"net/http"

	"github.com/actuallystonmai/nutrisathi-service/internal/service"
)

const (
	appName    = "NutriSathi API"
	appVersion = "0.1.0"
)

// Pinger is a dependency the health check reports on.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	service *service.Service
	deps    map[string]Pinger
}

// NewHandler wires the HTTP layer to svc. deps are named for /health.
func NewHandler(svc *service.Service, deps map[string]Pinger) *Handler {
	return &Handler{service: svc, deps: deps}
}

// GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"name": appName, "version": appVersion})
}

// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Checks: make(map[string]string, len(h.deps))}
	status := http.StatusOK
	for name, dep := range h.deps {
		if err := dep.Ping(r.Context()); err != nil {
			resp.Checks[name] = "unavailable"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}
	writeJSON(w, status, resp)
}

// GET /dishes
func (h *Handler) ListDishes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Catalog().Snapshot())
}
