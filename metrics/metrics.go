// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters for poll commands.
//
// A Recorder is created once per process against a registry:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.New(reg)
//	rec.Observe("vote", err)
//
// Every command is counted under roompoll_commands_total with its
// operation and outcome ("ok" or the error kind from models.Kind).
// A nil *Recorder is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/danielhkuo/roompoll/models"
)

type Recorder struct {
	commands *prometheus.CounterVec
	voters   prometheus.Histogram
}

func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		commands: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roompoll",
			Name:      "commands_total",
			Help:      "Poll commands handled, by operation and outcome.",
		}, []string{"op", "outcome"}),
		voters: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "roompoll",
			Name:      "tally_votes",
			Help:      "Number of votes counted per tally.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 6),
		}),
	}
}

// Observe counts one command
func (r *Recorder) Observe(op string, err error) {
	if r == nil {
		return
	}
	r.commands.WithLabelValues(op, models.Kind(err)).Inc()
}

// ObserveTally records the vote total of a computed tally
func (r *Recorder) ObserveTally(total int) {
	if r == nil {
		return
	}
	r.voters.Observe(float64(total))
}
