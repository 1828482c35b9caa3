// Package metrics defines and registers all custom Prometheus metrics for the
// Star Wars API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at init time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "starwars"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created user accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Catalog sync metrics ──────────────────────────────────────────────────────

// SyncRunsTotal counts catalog sync runs.
// Label:
//   - result: "success" or "failure"
var SyncRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_runs_total",
		Help:      "Total number of catalog sync runs, labelled by result.",
	},
	[]string{"result"},
)

// SyncMoviesInsertedTotal counts movies inserted by the sync job.
var SyncMoviesInsertedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_movies_inserted_total",
		Help:      "Total number of movies inserted by catalog sync runs.",
	},
)

// SyncDuration measures how long a single sync run takes end-to-end.
var SyncDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sync_duration_seconds",
		Help:      "Duration of a catalog sync run from fetch to reconciliation.",
		Buckets:   prometheus.DefBuckets,
	},
)
