// internal/server/server.go
//
// HTTP server helper with robust timeouts.
//
// Page responses are small rendered documents, so the write cap stays
// tight; uploads do not pass through this server.  Idle keep-alives are
// held longer because browsers re-request theme assets in bursts.
//
//   • ReadHeaderTimeout – abort slow-loris headers (5 s)
//   • ReadTimeout       – full request read, JSON bodies included (15 s)
//   • WriteTimeout      – cap total response time (30 s)
//   • IdleTimeout       – close keep-alives on idle clients (120 s)
//
// This helper centralises those defaults so cmd/web doesn't repeat
// boilerplate.

package server

import (
	"net/http"
	"time"
)

// New constructs an *http.Server with sensible defaults.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    64 << 10,
		// TLSConfig may be injected by callers (e.g., autocert).
	}
}
