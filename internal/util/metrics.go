package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CartAddsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_adds_total",
		Help: "Total number of add-to-cart operations by outcome",
	}, []string{"status"})

	CartRemovesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_removes_total",
		Help: "Total number of cart items removed",
	})

	CartItemsDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_items_dropped_total",
		Help: "Total number of cart rows dropped because their product could not be resolved",
	})

	CheckoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkouts_total",
		Help: "Total number of checkout quotes computed",
	})

	ProductLookupsFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "product_lookups_failed_total",
		Help: "Total number of failed product lookups",
	}, []string{"reason"})

	DocumentsSeededTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "documents_seeded_total",
		Help: "Total number of demo documents inserted at startup",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
