package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boardbuddy_http_requests_total",
		Help: "Total number of HTTP requests by route and status",
	}, []string{"method", "route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "boardbuddy_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 3000},
	}, []string{"method", "route"})
	DistrictCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boardbuddy_district_cache_hits_total",
		Help: "Total district coordinate lookups served by redis",
	})
	DistrictCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boardbuddy_district_cache_misses_total",
		Help: "Total district coordinate lookups that fell back to the database",
	})
	DistrictCacheErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boardbuddy_district_cache_errors_total",
		Help: "Total redis failures during district coordinate lookups",
	})
	ReviewsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boardbuddy_reviews_total",
		Help: "Total reviews sent by review type",
	}, []string{"type"})
	NoShowPenaltiesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boardbuddy_no_show_penalties_total",
		Help: "Total join count penalties applied for no-shows",
	})
	DBSlowQueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boardbuddy_db_slow_queries_total",
		Help: "Total SQL statements slower than the slow query threshold",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(DistrictCacheHitsTotal)
	prometheus.MustRegister(DistrictCacheMissesTotal)
	prometheus.MustRegister(DistrictCacheErrorsTotal)
	prometheus.MustRegister(ReviewsTotal)
	prometheus.MustRegister(NoShowPenaltiesTotal)
	prometheus.MustRegister(DBSlowQueriesTotal)
}

// Handler exposes the registered metrics for Prometheus scraping
func Handler() http.Handler { return promhttp.Handler() }
