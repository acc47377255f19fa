// Package metrics exposes Prometheus instrumentation for the ingestion
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ExtractionsTotal counts extraction attempts by source and outcome.
	ExtractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingestor_extractions_total",
		Help: "Extraction attempts by source and outcome.",
	}, []string{"source", "outcome"})

	// ClassificationDefaulted counts detector runs that fell through to the
	// documented default. Not an error, but tracked for rule quality.
	ClassificationDefaulted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingestor_classification_defaulted_total",
		Help: "Classifier runs that returned the default label.",
	}, []string{"detector"})

	// StagedTotal counts staging rows created.
	StagedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ingestor_staged_total",
		Help: "Crawled questions staged for review.",
	})

	// PublishedTotal counts questions materialized into the catalog.
	PublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ingestor_published_total",
		Help: "Questions published on approval.",
	})
)
