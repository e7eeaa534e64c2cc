// cmd/web/main.go
//
// Picohost – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (server-wide file → .env fallback).
//
//  2. Optionally connect Vault (VAULT_ADDR set) for secret references.
//
//  3. Load config (YAML + env overlays) and resolve the DB password.
//
//  4. Start daily rotating logger (tees to console when running in a TTY).
//
//  5. Open the platform database and log the website count.
//
//  6. Build storage, theme, and website services; wire the chi routes.
//
//  7. Serve with hardened timeouts; Prometheus metrics on /metrics;
//     graceful shutdown on SIGINT/SIGTERM via errgroup.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/yanizio/picohost/internal/appconfig"
	"github.com/yanizio/picohost/internal/config"
	"github.com/yanizio/picohost/internal/database"
	"github.com/yanizio/picohost/internal/handler"
	"github.com/yanizio/picohost/internal/l10n"
	"github.com/yanizio/picohost/internal/logger"
	"github.com/yanizio/picohost/internal/requestinfo"
	"github.com/yanizio/picohost/internal/server"
	"github.com/yanizio/picohost/internal/storage"
	"github.com/yanizio/picohost/internal/theme"
	"github.com/yanizio/picohost/internal/vault"
	"github.com/yanizio/picohost/internal/website"
)

const serverEnvPath = "/usr/local/etc/picohost/global.env"

// appName scopes rows in the app_config table.
const appName = "picohost"

// loadEnv prefers the server-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//
	// ── 1.  Secrets and config ──────────────────────────────────────────
	//
	var secrets config.SecretSource
	if os.Getenv("VAULT_ADDR") != "" {
		vc, err := vault.New(ctx, log.Printf)
		if err != nil {
			log.Fatalf("connect vault: %v", err)
		}
		secrets = vc
	}

	cfg, err := config.Load(ctx, secrets)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, runningInTTY(), cfg.Log.Debug)
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	if err := requestinfo.InitGeo(cfg.Geo.DBPath); err != nil {
		logOut.Fatalf("open geoip db: %v", err)
	}

	//
	// ── 2.  Platform DB connect ─────────────────────────────────────────
	//
	dsn := cfg.Database.DSN
	if strings.Contains(dsn, "%s") {
		dsn = fmt.Sprintf(dsn, cfg.Database.Password)
	}
	db, err := database.Open(ctx, dsn)
	if err != nil {
		logOut.Fatalf("connect db: %v", err)
	}
	defer db.Close()
	logOut.Info("platform DB online")

	// Log website count as an early sanity check.
	var active int
	_ = db.Get(&active, `SELECT COUNT(*) FROM website`)
	logOut.Infof("%d website(s) registered", active)

	//
	// ── 3.  Services ────────────────────────────────────────────────────
	//
	trans := l10n.New()
	store := storage.New(db, cfg.Storage.Root)
	appCfg := appconfig.New(db, appName)
	themes := theme.NewService(cfg.Themes.Dir, appCfg, trans)
	loader := theme.NewLoader(cfg.Themes.Dir)
	websites := website.NewService(store, trans)

	h := handler.New(db, websites, themes, loader, store, logOut)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", h.Routes())

	srv := server.New(cfg.HTTP.ListenAddr, mux)

	//
	// ── 4.  Serve until signalled ───────────────────────────────────────
	//
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logOut.Infof("listening on %s", cfg.HTTP.ListenAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		logOut.Fatalf("http server: %v", err)
	}
	logOut.Info("shutdown complete")
}
