// internal/handler/websites.go
//
// Website CRUD.  Every route requires an authenticated user; mutation
// routes additionally require ownership of the targeted row.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/picohost/internal/auth"
	"github.com/yanizio/picohost/internal/website"
)

// websiteBody is the JSON shape accepted by create and update.  Pointer
// fields distinguish "absent" from "empty" on PATCH.
type websiteBody struct {
	Site    string             `json:"site"`
	Name    *string            `json:"name"`
	Path    *string            `json:"path"`
	Theme   *string            `json:"theme"`
	Options *map[string]string `json:"options"`
}

func (h *Handler) listWebsites(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	sites, err := website.ByUser(r.Context(), h.db, user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sites)
}

func (h *Handler) createWebsite(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var body websiteBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "malformed body", http.StatusBadRequest)
		return
	}

	site := &website.Website{
		Site:   body.Site,
		UserID: user,
		Theme:  "default",
	}
	if body.Name != nil {
		site.Name = *body.Name
	}
	if body.Path != nil {
		site.Path = *body.Path
	}
	if body.Theme != nil {
		site.Theme = *body.Theme
	}
	if body.Options != nil {
		site.Options = *body.Options
	}

	if err := h.websiteSvc(r).ValidateForSave(site); err != nil {
		writeError(w, err)
		return
	}
	if err := h.themeSvc(r).ValidateTheme(r.Context(), site.Theme); err != nil {
		writeError(w, err)
		return
	}
	if err := website.Insert(r.Context(), h.db, site); err != nil {
		writeError(w, err)
		return
	}

	h.log.Infow("website created", "site", site.Site, "user", user)
	writeJSON(w, http.StatusCreated, site)
}

func (h *Handler) updateWebsite(w http.ResponseWriter, r *http.Request) {
	site, user, ok := h.ownedWebsite(w, r)
	if !ok {
		return
	}

	var body websiteBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "malformed body", http.StatusBadRequest)
		return
	}

	// The slug is immutable; only display and content fields move.
	if body.Name != nil {
		site.Name = *body.Name
	}
	if body.Path != nil {
		site.Path = *body.Path
	}
	if body.Theme != nil {
		site.Theme = *body.Theme
	}
	if body.Options != nil {
		site.Options = *body.Options
	}

	if err := h.websiteSvc(r).ValidateForSave(site); err != nil {
		writeError(w, err)
		return
	}
	if err := h.themeSvc(r).ValidateTheme(r.Context(), site.Theme); err != nil {
		writeError(w, err)
		return
	}
	if err := website.Update(r.Context(), h.db, site); err != nil {
		writeError(w, err)
		return
	}

	h.log.Infow("website updated", "site", site.Site, "user", user)
	writeJSON(w, http.StatusOK, site)
}

func (h *Handler) deleteWebsite(w http.ResponseWriter, r *http.Request) {
	site, user, ok := h.ownedWebsite(w, r)
	if !ok {
		return
	}

	if err := website.Delete(r.Context(), h.db, site.ID); err != nil {
		writeError(w, err)
		return
	}

	h.log.Infow("website deleted", "site", site.Site, "user", user)
	w.WriteHeader(http.StatusNoContent)
}

// ownedWebsite loads the {id} route param and enforces ownership.  On
// failure the response is already written and ok is false.
func (h *Handler) ownedWebsite(w http.ResponseWriter, r *http.Request) (*website.Website, string, bool) {
	user, okAuth := auth.UserID(r.Context())
	if !okAuth {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return nil, "", false
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "malformed id", http.StatusBadRequest)
		return nil, "", false
	}

	site, err := website.ByID(r.Context(), h.db, id)
	if err != nil {
		writeError(w, err)
		return nil, "", false
	}
	if err := h.websiteSvc(r).AssertOwnedBy(site, user); err != nil {
		writeError(w, err)
		return nil, "", false
	}
	return site, user, true
}
