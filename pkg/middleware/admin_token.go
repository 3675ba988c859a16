package middleware

import (
	"crypto/subtle"
	"net/http"

	apperrors "dreamshoots/pkg/errors"
	httputil "dreamshoots/pkg/http"
	"dreamshoots/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const DefaultAdminTokenHeader = "X-Admin-Token"

// AdminToken guards privileged routes with the shared admin secret carried in
// header. onReject, when set, is called for every refused request.
func AdminToken(secret, header string, log *logger.Logger, onReject func()) func(httprouter.Handle) httprouter.Handle {
	if header == "" {
		header = DefaultAdminTokenHeader
	}
	expected := []byte(secret)

	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			provided := r.Header.Get(header)

			var reason string
			switch {
			case provided == "":
				reason = "Missing admin token"
			case len(expected) == 0 || subtle.ConstantTimeCompare([]byte(provided), expected) != 1:
				reason = "Admin token mismatch"
			default:
				next(w, r, ps)
				return
			}

			log.Warn("Unauthorized admin request",
				"request_id", RequestID(r),
				"reason", reason,
				"method", r.Method,
				"path", r.URL.Path,
				"received_len", len(provided),
				"expected_len", len(expected),
			)
			if onReject != nil {
				onReject()
			}

			if err := httputil.WriteError(w, apperrors.Unauthorized(reason)); err != nil {
				log.Error("failed to write response",
					"handler", "AdminToken",
					"operation", "WriteError",
					"error", err,
				)
			}
		}
	}
}
