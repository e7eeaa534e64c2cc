// internal/handler/themes.go
//
// Theme administration.  Listing is open to any authenticated user;
// registering and unregistering custom themes is an operator action, but
// tenant isolation happens upstream, so here it is auth-gated only.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/picohost/internal/auth"
)

func (h *Handler) listThemes(w http.ResponseWriter, r *http.Request) {
	customOnly := r.URL.Query().Get("custom") == "1"
	names, err := h.themeSvc(r).Themes(r.Context(), customOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (h *Handler) newThemes(w http.ResponseWriter, r *http.Request) {
	names, err := h.themeSvc(r).NewThemes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (h *Handler) addCustomTheme(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.UserID(r.Context()); !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		http.Error(w, "malformed body", http.StatusBadRequest)
		return
	}

	if err := h.themeSvc(r).AddCustomTheme(r.Context(), body.Name); err != nil {
		writeError(w, err)
		return
	}
	h.log.Infow("custom theme added", "theme", body.Name)
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) removeCustomTheme(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.UserID(r.Context()); !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.themeSvc(r).RemoveCustomTheme(r.Context(), name); err != nil {
		writeError(w, err)
		return
	}
	h.loader.Invalidate(name)
	h.log.Infow("custom theme removed", "theme", name)
	w.WriteHeader(http.StatusNoContent)
}
