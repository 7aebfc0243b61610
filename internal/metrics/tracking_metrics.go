// Package metrics exposes the tracker's prometheus collectors: totals of the
// store published by the snapshot job, and HTTP traffic recorded by the
// echo middleware.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// TrackingMetrics holds every collector of the service.
type TrackingMetrics struct {
	orders           prometheus.Gauge
	partners         prometheus.Gauge
	assignedOrders   prometheus.Gauge
	unassignedOrders prometheus.Gauge
	snapshots        prometheus.Counter

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Snapshot is one reading of the store totals.
type Snapshot struct {
	Orders           int
	Partners         int
	AssignedOrders   int
	UnassignedOrders int
}

// NewTrackingMetrics registers the collectors with registerer. A nil
// registerer means prometheus.DefaultRegisterer. Registering twice on the
// same registerer reuses the existing collectors.
func NewTrackingMetrics(registerer prometheus.Registerer) *TrackingMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &TrackingMetrics{
		orders: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "tracker_orders",
			Help: "Number of stored orders",
		}),
		partners: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "tracker_partners",
			Help: "Number of registered delivery partners",
		}),
		assignedOrders: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "tracker_assigned_orders",
			Help: "Number of orders assigned to a delivery partner",
		}),
		unassignedOrders: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "tracker_unassigned_orders",
			Help: "Number of orders not assigned to any delivery partner",
		}),
		snapshots: registerCounter(registerer, prometheus.CounterOpts{
			Name: "tracker_snapshots_total",
			Help: "Total number of tracking snapshots taken",
		}),
		httpRequests: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "tracker_http_requests_total",
			Help: "Total number of HTTP requests served",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "tracker_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"method", "route"}),
	}
}

// ObserveSnapshot publishes the store totals.
func (m *TrackingMetrics) ObserveSnapshot(s Snapshot) {
	m.orders.Set(float64(s.Orders))
	m.partners.Set(float64(s.Partners))
	m.assignedOrders.Set(float64(s.AssignedOrders))
	m.unassignedOrders.Set(float64(s.UnassignedOrders))
	m.snapshots.Inc()
}

// ObserveRequest records one served HTTP request. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func (m *TrackingMetrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(
	registerer prometheus.Registerer,
	opts prometheus.CounterOpts,
	labels []string,
) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(
	registerer prometheus.Registerer,
	opts prometheus.HistogramOpts,
	labels []string,
) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}
