package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ActiveConnections   prometheus.Gauge
	EventsReceived      *prometheus.CounterVec
	EventsRelayed       *prometheus.CounterVec
	PersistenceFailures *prometheus.CounterVec
}

var (
	metricsOnce     sync.Once
	metricsInstance *Metrics
)

func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = &Metrics{
			ActiveConnections: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "whiteboard_active_connections",
				Help: "Current number of open websocket connections",
			}),
			EventsReceived: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "whiteboard_events_received_total",
				Help: "Inbound socket events by event name",
			}, []string{"event"}),
			EventsRelayed: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "whiteboard_events_relayed_total",
				Help: "Room broadcasts issued by event name",
			}, []string{"event"}),
			PersistenceFailures: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "whiteboard_persistence_failures_total",
				Help: "Failed store round trips by operation",
			}, []string{"operation"}),
		}
	})
	return metricsInstance
}

func (m *Metrics) ConnectionOpened() {
	if m == nil || m.ActiveConnections == nil {
		return
	}
	m.ActiveConnections.Inc()
}

func (m *Metrics) ConnectionClosed() {
	if m == nil || m.ActiveConnections == nil {
		return
	}
	m.ActiveConnections.Dec()
}

func (m *Metrics) EventReceived(event string) {
	if m == nil || m.EventsReceived == nil {
		return
	}
	m.EventsReceived.WithLabelValues(event).Inc()
}

func (m *Metrics) EventRelayed(event string) {
	if m == nil || m.EventsRelayed == nil {
		return
	}
	m.EventsRelayed.WithLabelValues(event).Inc()
}

func (m *Metrics) PersistenceFailed(operation string) {
	if m == nil || m.PersistenceFailures == nil {
		return
	}
	m.PersistenceFailures.WithLabelValues(operation).Inc()
}
