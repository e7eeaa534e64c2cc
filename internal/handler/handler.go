// internal/handler/handler.go
//
// HTTP surface of Picohost.
//
// Context
// -------
// Two route families hang off one chi router:
//
//	/api/v1/…        – website CRUD and theme administration (JSON)
//	/sites/{site}/…  – rendered pages of one website (HTML)
//
// The handler owns no business rules; it loads the Website, stamps the
// viewer from the auth context, and delegates every decision to
// website.Service and theme.Service.  Error kinds map to HTTP statuses in
// errors.go.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yanizio/picohost/internal/auth"
	"github.com/yanizio/picohost/internal/l10n"
	"github.com/yanizio/picohost/internal/requestinfo"
	"github.com/yanizio/picohost/internal/storage"
	"github.com/yanizio/picohost/internal/theme"
	"github.com/yanizio/picohost/internal/website"
)

// Handler wires the services into HTTP routes.
type Handler struct {
	db       *sqlx.DB
	websites *website.Service
	themes   *theme.Service
	loader   *theme.Loader
	store    *storage.Store
	log      *zap.SugaredLogger
}

// New returns a Handler over the given collaborators.
func New(db *sqlx.DB, websites *website.Service, themes *theme.Service,
	loader *theme.Loader, store *storage.Store, log *zap.SugaredLogger) *Handler {
	return &Handler{
		db:       db,
		websites: websites,
		themes:   themes,
		loader:   loader,
		store:    store,
		log:      log,
	}
}

// Routes builds the chi router with the shared middleware chain.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(Security)
	r.Use(auth.Middleware)
	r.Use(requestinfo.Enrich)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/themes", h.listThemes)
		r.Get("/themes/new", h.newThemes)
		r.Post("/themes", h.addCustomTheme)
		r.Delete("/themes/{name}", h.removeCustomTheme)

		r.Get("/websites", h.listWebsites)
		r.Post("/websites", h.createWebsite)
		r.Patch("/websites/{id}", h.updateWebsite)
		r.Delete("/websites/{id}", h.deleteWebsite)
	})

	r.Get("/sites/{site}", h.servePage)
	r.Get("/sites/{site}/*", h.servePage)

	return r
}

//
// Per-request translation
//
// Error messages are baked into the error at the service layer, so the
// services themselves are rebound to the requester's language.  The copies
// are two-field structs; building one per request costs nothing.
//

func (h *Handler) websiteSvc(r *http.Request) *website.Service {
	return h.websites.WithTranslator(l10n.ForAcceptLanguage(r.Header.Get("Accept-Language")))
}

func (h *Handler) themeSvc(r *http.Request) *theme.Service {
	return h.themes.WithTranslator(l10n.ForAcceptLanguage(r.Header.Get("Accept-Language")))
}
