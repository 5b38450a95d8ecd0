// Copyright 2025 medwatch-dev.
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ReportsProcessedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "medwatch_reports_processed_total",
	Help: "Number of adverse-event reports processed and stored",
})

var ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "medwatch_extraction_duration_seconds",
	Help:    "Duration of rule-based report extraction in seconds",
	Buckets: prometheus.DefBuckets,
})

var TranslationLookupsAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "medwatch_translation_lookups_total",
	Help: "Number of outcome translation lookups by language and result",
}, []string{"language", "result"})
