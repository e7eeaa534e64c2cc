// internal/handler/errors.go
//
// JSON helpers and the error-kind → HTTP-status mapping.  Every sentinel
// from internal/website and internal/theme lands here exactly once, so the
// API stays predictable as kinds grow.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/yanizio/picohost/internal/theme"
	"github.com/yanizio/picohost/internal/website"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errBody struct {
	Error string `json:"error"`
}

// writeError translates an error kind into a status and JSON body.  The
// wrapped message is user-facing (already translated); unknown kinds are
// logged and masked as 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, website.ErrMinLength),
		errors.Is(err, website.ErrInvalidChars),
		errors.Is(err, website.ErrInvalidPath),
		errors.Is(err, website.ErrContentNotLocal):
		writeJSON(w, http.StatusUnprocessableEntity, errBody{err.Error()})
	case errors.Is(err, website.ErrNotOwner),
		errors.Is(err, website.ErrAccessDenied):
		writeJSON(w, http.StatusForbidden, errBody{err.Error()})
	case errors.Is(err, website.ErrPageNotFound),
		errors.Is(err, website.ErrWebsiteNotFound),
		errors.Is(err, theme.ErrThemeNotFound):
		writeJSON(w, http.StatusNotFound, errBody{err.Error()})
	case errors.Is(err, website.ErrSiteExists),
		errors.Is(err, theme.ErrThemeExists):
		writeJSON(w, http.StatusConflict, errBody{err.Error()})
	default:
		zap.S().Errorw("internal error", "err", err)
		writeJSON(w, http.StatusInternalServerError, errBody{"internal error"})
	}
}
