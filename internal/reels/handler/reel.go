package handler

import (
	"net/http"

	"dreamshoots/internal/reels/service"
	httputil "dreamshoots/pkg/http"
	"dreamshoots/pkg/logger"
	"dreamshoots/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ReelHandler struct {
	service service.ReelService
	log     *logger.Logger
	gate    func(httprouter.Handle) httprouter.Handle
}

func NewReelHandler(service service.ReelService, log *logger.Logger, gate func(httprouter.Handle) httprouter.Handle) *ReelHandler {
	return &ReelHandler{
		service: service,
		log:     log,
		gate:    gate,
	}
}

func (h *ReelHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.ReelCreate
	if err := httputil.DecodeJSON(r, &input); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	reel, err := h.service.Add(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, reel); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ReelHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	reels, err := h.service.List(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, reels); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReelHandler) Embeds(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	reels, err := h.service.Embeds(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Embeds", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, reels); err != nil {
		h.log.Error("failed to write success response", "handler", "Embeds", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReelHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *ReelHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/reels", h.List)
	router.GET("/api/v1/reels/embeds", h.Embeds)
	router.POST("/api/v1/reels", h.gate(h.Create))
	router.DELETE("/api/v1/reels/id/:id", h.gate(h.Delete))
}
