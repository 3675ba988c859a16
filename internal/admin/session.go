// Package admin serves the dashboard's token check.
package admin

import (
	"net/http"

	httputil "dreamshoots/pkg/http"

	"github.com/julienschmidt/httprouter"
)

type SessionHandler struct {
	gate func(httprouter.Handle) httprouter.Handle
}

func NewSessionHandler(gate func(httprouter.Handle) httprouter.Handle) *SessionHandler {
	return &SessionHandler{gate: gate}
}

// Verify answers 204 when the gate accepts the request's admin token. It
// grants nothing; every privileged call is checked again on its own.
func (h *SessionHandler) Verify(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteNoContent(w)
}

func (h *SessionHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/admin/session", h.gate(h.Verify))
}
