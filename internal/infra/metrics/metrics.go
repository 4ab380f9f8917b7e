// Package metrics exposes session and cart counters to Prometheus.
package metrics

import (
	"net/http"

	"greencart/internal/domain/entity"
	"greencart/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is the Prometheus implementation of service.SessionMetrics.
type Collector struct {
	logins         *prometheus.CounterVec
	registrations  *prometheus.CounterVec
	gateRejections *prometheus.CounterVec
	cartUpdates    *prometheus.CounterVec
}

var _ service.SessionMetrics = (*Collector)(nil)

// NewCollector registers the counters on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "greencart_logins_total",
			Help: "Login attempts by audience and outcome.",
		}, []string{"audience", "outcome"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "greencart_registrations_total",
			Help: "User registrations by outcome.",
		}, []string{"outcome"}),
		gateRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "greencart_gate_rejections_total",
			Help: "Requests rejected by a session gate.",
		}, []string{"audience", "reason"}),
		cartUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "greencart_cart_updates_total",
			Help: "Cart snapshot pushes by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(c.logins, c.registrations, c.gateRejections, c.cartUpdates)

	return c
}

// NewRegistry returns a registry with the Go runtime and process collectors installed.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewSessionMetrics builds the collector on the shared registry.
func NewSessionMetrics(reg *prometheus.Registry) service.SessionMetrics {
	return NewCollector(reg)
}

func (c *Collector) RecordLogin(audience entity.Audience, outcome string) {
	c.logins.WithLabelValues(audience.String(), outcome).Inc()
}

func (c *Collector) RecordRegistration(outcome string) {
	c.registrations.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordGateRejection(audience entity.Audience, reason string) {
	c.gateRejections.WithLabelValues(audience.String(), reason).Inc()
}

func (c *Collector) RecordCartUpdate(outcome string) {
	c.cartUpdates.WithLabelValues(outcome).Inc()
}

// Handler serves the Prometheus exposition format for scraping.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
