package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "maxreviewer_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	summaryTotal     *prometheus.CounterVec
	summaryLatency   *prometheus.HistogramVec
	sourceFallbacks  *prometheus.CounterVec
	bucketMismatches prometheus.Counter
	syncRuns         *prometheus.CounterVec
	syncRecords      prometheus.Gauge
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
)

// Init registra as métricas no registry padrão. Pode ser chamada mais de uma vez.
func Init() {
	registerOnce.Do(func() {
		summaryTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "review_summary_total",
				Help: "Total de resumos de avaliações calculados por origem",
			},
			[]string{"source"},
		)
		summaryLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "review_summary_latency_seconds",
				Help:    "Latência do resumo de avaliações em segundos, incluindo a busca",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		)
		sourceFallbacks = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "review_source_fallback_total",
				Help: "Vezes em que dados sintéticos substituíram uma origem com falha",
			},
			[]string{"source"},
		)
		bucketMismatches = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "review_bucket_mismatch_total",
				Help: "Resumos cuja série mensal não soma o total de avaliações",
			},
		)
		syncRuns = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "review_sync_runs_total",
				Help: "Execuções da sincronização de avaliações por resultado",
			},
			[]string{"result"},
		)
		syncRecords = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "review_sync_records",
				Help: "Registros gravados pela última sincronização bem-sucedida",
			},
		)
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Requisições HTTP por método e código de status",
			},
			[]string{"method", "code"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "Latência das requisições HTTP em segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		)

		prometheus.MustRegister(
			summaryTotal,
			summaryLatency,
			sourceFallbacks,
			bucketMismatches,
			syncRuns,
			syncRecords,
			httpRequests,
			httpLatency,
		)
	})
}

// Handler expõe o registry padrão no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveSummary registra um resumo calculado e quanto tempo levou
func ObserveSummary(source string, duration time.Duration) {
	if source == "" {
		source = "unknown"
	}
	if summaryTotal != nil {
		summaryTotal.WithLabelValues(source).Inc()
	}
	if summaryLatency != nil {
		summaryLatency.WithLabelValues(source).Observe(duration.Seconds())
	}
}

// IncSourceFallback conta uma origem com falha substituída por dados sintéticos
func IncSourceFallback(source string) {
	if source == "" {
		source = "unknown"
	}
	if sourceFallbacks != nil {
		sourceFallbacks.WithLabelValues(source).Inc()
	}
}

func IncBucketMismatch() {
	if bucketMismatches != nil {
		bucketMismatches.Inc()
	}
}

// ObserveSync registra uma execução da sincronização; records só vale para execuções com sucesso
func ObserveSync(result string, records int) {
	if result == "" {
		result = ResultSuccess
	}
	if syncRuns != nil {
		syncRuns.WithLabelValues(result).Inc()
	}
	if result == ResultSuccess && syncRecords != nil {
		syncRecords.Set(float64(records))
	}
}

// ObserveHTTPRequest registra uma requisição atendida
func ObserveHTTPRequest(method string, status int, duration time.Duration) {
	if httpRequests != nil {
		httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	}
	if httpLatency != nil {
		httpLatency.WithLabelValues(method).Observe(duration.Seconds())
	}
}
