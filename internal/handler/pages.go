// internal/handler/pages.go
//
// Page serving: /sites/{site}/… renders one Markdown page of a website
// through its theme.
//
// Flow per request: load the website row, stamp the viewer, resolve the
// page inside the owner's storage, parse front matter, run the access
// checks, then render.  Access is decided *after* parsing because the
// front matter can mark an individual page private.
package handler

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/picohost/internal/auth"
	"github.com/yanizio/picohost/internal/metrics"
	"github.com/yanizio/picohost/internal/page"
	"github.com/yanizio/picohost/internal/storage"
	"github.com/yanizio/picohost/internal/website"
)

// indexPage is served when the URL names the site root.
const indexPage = "index.md"

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	site, err := website.BySite(ctx, h.db, chi.URLParam(r, "site"))
	if err != nil {
		metrics.WebsiteLoadErrorsTotal.Inc()
		writeError(w, err)
		return
	}

	viewer, _ := auth.UserID(ctx)
	site.Viewer = viewer
	websites := h.websiteSvc(r)

	rel := chi.URLParam(r, "*")
	if rel == "" {
		rel = indexPage
	}

	// The generator may hand back absolute paths; fold them into the
	// site-relative form or refuse them outright.
	rel, err = websites.RelativePath(site, rel)
	if err != nil {
		writeError(w, err)
		return
	}

	// A content-source override must stay inside the owner's folder.
	if cs := site.Option(website.OptionContentSource); cs != "" {
		if err := websites.AssertContentIsLocal(site, cs); err != nil {
			writeError(w, err)
			return
		}
	}

	if _, err := websites.PageFileID(ctx, site, rel); err != nil {
		metrics.PageNotFoundTotal.Inc()
		writeError(w, err)
		return
	}

	raw, err := h.store.View(site.UserID).ReadFile(storage.CleanPath(site.Path + "/" + rel))
	if err != nil {
		// Index said yes, disk said no; treat as missing rather than leak
		// the underlying path in an error.
		metrics.PageNotFoundTotal.Inc()
		http.NotFound(w, r)
		return
	}

	meta, body, err := page.Parse(raw)
	if err != nil {
		h.log.Errorw("page parse failed", "site", site.Site, "page", rel, "err", err)
		http.Error(w, "page error", http.StatusInternalServerError)
		return
	}

	if err := websites.AssertViewerHasAccess(ctx, site, rel, meta); err != nil {
		metrics.AccessDeniedTotal.Inc()
		writeError(w, err)
		return
	}

	html, err := page.Render(body)
	if err != nil {
		h.log.Errorw("page render failed", "site", site.Site, "page", rel, "err", err)
		http.Error(w, "page error", http.StatusInternalServerError)
		return
	}

	tpl, err := h.loader.Load(site.Theme)
	if err != nil {
		h.log.Errorw("theme load failed", "site", site.Site, "theme", site.Theme, "err", err)
		http.Error(w, "theme error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Site":    site,
		"Title":   meta.Title(site.Name),
		"Meta":    meta,
		"Content": template.HTML(html),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.ExecuteTemplate(w, "page.html", data); err != nil {
		h.log.Errorw("template execute failed", "site", site.Site, "err", err)
		return
	}
	metrics.PageRequestTotal.Inc()
}
