package handler

import (
	"net/http"

	"dreamshoots/internal/bookings/query"
	"dreamshoots/internal/bookings/service"
	httputil "dreamshoots/pkg/http"
	"dreamshoots/pkg/logger"
	"dreamshoots/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
	gate    func(httprouter.Handle) httprouter.Handle
}

// NewBookingHandler wires the booking routes. gate wraps every route except
// public intake.
func NewBookingHandler(service service.BookingService, log *logger.Logger, gate func(httprouter.Handle) httprouter.Handle) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
		gate:    gate,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.BookingCreate
	if err := httputil.DecodeJSON(r, &input); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	booking, err := h.service.Create(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

// List returns the filtered bookings as a bare array.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	list, ok := h.list(w, r, "List")
	if !ok {
		return
	}

	if err := httputil.WriteSuccess(w, list.Bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

// Dashboard returns the filtered bookings together with the unfiltered summary.
func (h *BookingHandler) Dashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	list, ok := h.list(w, r, "Dashboard")
	if !ok {
		return
	}

	if err := httputil.WriteSuccess(w, list); err != nil {
		h.log.Error("failed to write success response", "handler", "Dashboard", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Summary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Summary", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, summary); err != nil {
		h.log.Error("failed to write success response", "handler", "Summary", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var update model.BookingStatusUpdate
	if err := httputil.DecodeJSON(r, &update); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateStatus", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), id, update.Status)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateStatus", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateStatus", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *BookingHandler) Export(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	params := r.URL.Query()

	filter, err := query.ParseFilter(params.Get("status"), params.Get("preferred_date"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Export", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	file, err := h.service.Export(r.Context(), filter, params.Get("format"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Export", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteAttachment(w, file.ContentType, file.Filename, file.Data); err != nil {
		h.log.Error("failed to write attachment", "handler", "Export", "operation", "WriteAttachment", "error", err)
	}
}

func (h *BookingHandler) list(w http.ResponseWriter, r *http.Request, handler string) (*model.BookingList, bool) {
	params := r.URL.Query()

	filter, err := query.ParseFilter(params.Get("status"), params.Get("preferred_date"))
	if err == nil {
		var list *model.BookingList
		if list, err = h.service.List(r.Context(), filter); err == nil {
			return list, true
		}
	}

	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
	return nil, false
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings", h.gate(h.List))
	router.GET("/api/v1/bookings/summary", h.gate(h.Summary))
	router.GET("/api/v1/bookings/dashboard", h.gate(h.Dashboard))
	router.GET("/api/v1/bookings/export", h.gate(h.Export))
	router.GET("/api/v1/bookings/id/:id", h.gate(h.GetByID))
	router.PATCH("/api/v1/bookings/id/:id/status", h.gate(h.UpdateStatus))
	router.DELETE("/api/v1/bookings/id/:id", h.gate(h.Delete))
}
