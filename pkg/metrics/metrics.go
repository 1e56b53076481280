package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	// Chamadas à Graph API do Facebook por endpoint e resultado
	graphRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_integration_graph_requests_total",
			Help: "Total number of Facebook Graph API requests",
		},
		[]string{"endpoint", "outcome"},
	)

	graphRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ads_integration_graph_request_duration_seconds",
			Help:    "Facebook Graph API request duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	// Etapas do fluxo de sincronização (connect, account_sync, campaign_sync...)
	syncStagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_integration_sync_stages_total",
			Help: "Total number of integration sync stages by outcome",
		},
		[]string{"stage", "outcome"},
	)

	persistedRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_integration_persisted_rows_total",
			Help: "Total number of rows upserted by table",
		},
		[]string{"table"},
	)
)

func ObserveGraphRequest(endpoint string, started time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}

	graphRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	graphRequestDuration.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
}

func ObserveStage(stage string, success bool) {
	outcome := OutcomeSuccess
	if !success {
		outcome = OutcomeError
	}

	syncStagesTotal.WithLabelValues(stage, outcome).Inc()
}

func AddPersistedRows(table string, n int) {
	if n <= 0 {
		return
	}

	persistedRowsTotal.WithLabelValues(table).Add(float64(n))
}

func Handler() http.Handler {
	return promhttp.Handler()
}
