package health

import (
	"context"
	"net/http"
	"time"

	httputil "dreamshoots/pkg/http"
	"dreamshoots/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const readyTimeout = 2 * time.Second

type Response struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
	log   *logger.Logger
}

// NewHealthHandler returns liveness and readiness probes. A nil store means
// the in-memory driver, which is always ready.
func NewHealthHandler(store Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		store: store,
		log:   log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, Response{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.store == nil {
		if err := httputil.WriteJSON(w, http.StatusOK, Response{
			Status:   "ready",
			Database: "memory",
		}); err != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Error("Database health check failed",
			"error", err,
			"path", r.URL.Path,
		)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, Response{
			Status:   "unavailable",
			Database: "error",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, Response{
		Status:   "ready",
		Database: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
