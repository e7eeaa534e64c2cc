// Package metrics holds Prometheus instruments that are used across the
// platform.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PageRequestTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "page_request_total",
			Help: "Cumulative number of website page requests served.",
		})

	PageNotFoundTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "page_not_found_total",
			Help: "Cumulative number of page requests that hit no storage entry.",
		})

	AccessDeniedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "access_denied_total",
			Help: "Cumulative number of private-page requests that were refused.",
		})

	WebsiteLoadErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "website_load_errors_total",
			Help: "Cumulative number of website lookups that failed.",
		})

	ThemeScanTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "theme_scan_total",
			Help: "Cumulative number of themes-root directory scans.",
		})
)

func init() {
	prometheus.MustRegister(
		PageRequestTotal,
		PageNotFoundTotal,
		AccessDeniedTotal,
		WebsiteLoadErrorsTotal,
		ThemeScanTotal,
	)
}
