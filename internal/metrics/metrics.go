// Package metrics holds the prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photoshare_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photoshare_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photoshare_http_active_requests",
			Help: "Requests currently being served",
		},
	)

	ImageHostOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photoshare_image_host_operations_total",
			Help: "Calls to the image host by operation and outcome",
		},
		[]string{"provider", "operation", "outcome"},
	)

	ImageHostDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photoshare_image_host_duration_seconds",
			Help:    "Latency of image host calls in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "operation"},
	)

	ImagesUploaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoshare_images_uploaded_total",
			Help: "Images successfully uploaded and persisted",
		},
	)

	CommentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoshare_comments_created_total",
			Help: "Comments posted on images",
		},
	)

	RatingsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoshare_ratings_submitted_total",
			Help: "Ratings accepted for images",
		},
	)

	RateLimitRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photoshare_rate_limit_rejections_total",
			Help: "Requests rejected by the per-IP limiter",
		},
		[]string{"bucket"},
	)
)

func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordImageHostCall records one image host call; err decides the outcome label.
func RecordImageHostCall(provider, operation string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	ImageHostOperations.WithLabelValues(provider, operation, outcome).Inc()
	ImageHostDuration.WithLabelValues(provider, operation).Observe(duration.Seconds())
}
