package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики пайплайна загрузки каталога. Единственный видимый сигнал о
// выброшенных строках — счетчики: построчные диагностики не ведутся.
var (
	RowsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_rows_processed_total",
		Help: "Number of raw rows read from uploaded files",
	})

	RowsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_rows_written_total",
		Help: "Number of validated rows upserted into the catalog",
	})

	RowsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_rows_dropped_total",
		Help: "Number of rows dropped by validation",
	})

	UpsertFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_upsert_failures_total",
		Help: "Number of per-row upsert failures (best-effort, not fatal)",
	})

	UploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_uploads_total",
		Help: "Number of upload requests that reached the pipeline",
	})

	ExportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_exports_total",
		Help: "Number of generated export workbooks",
	})
)
