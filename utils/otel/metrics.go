package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all OTel metric instruments for content-indexer.
var Metrics *ContentIndexerMetrics

// ContentIndexerMetrics contains all metric instruments.
type ContentIndexerMetrics struct {
	IndexedTotal   metric.Int64Counter
	RemovedTotal   metric.Int64Counter
	ErrorsTotal    metric.Int64Counter
	BuildDuration  metric.Float64Histogram
	SearchDuration metric.Float64Histogram
}

// InitMetrics initializes all metric instruments.
func InitMetrics() error {
	meter := otel.Meter("content-indexer")

	indexedTotal, err := meter.Int64Counter("content_indexer_indexed_total",
		metric.WithDescription("Total number of content documents indexed"),
	)
	if err != nil {
		return err
	}

	removedTotal, err := meter.Int64Counter("content_indexer_removed_total",
		metric.WithDescription("Total number of content documents removed from the index"),
	)
	if err != nil {
		return err
	}

	errorsTotal, err := meter.Int64Counter("content_indexer_errors_total",
		metric.WithDescription("Total number of errors"),
	)
	if err != nil {
		return err
	}

	buildDuration, err := meter.Float64Histogram("content_indexer_build_duration_seconds",
		metric.WithDescription("Full index build duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	searchDuration, err := meter.Float64Histogram("content_indexer_search_duration_seconds",
		metric.WithDescription("Search request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	Metrics = &ContentIndexerMetrics{
		IndexedTotal:   indexedTotal,
		RemovedTotal:   removedTotal,
		ErrorsTotal:    errorsTotal,
		BuildDuration:  buildDuration,
		SearchDuration: searchDuration,
	}

	return nil
}
