package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "groupdeal"

// Metrics is nil-safe: a nil *Metrics records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	joins         *prometheus.CounterVec
	leaves        *prometheus.CounterVec
	completions   *prometheus.CounterVec
	notifications *prometheus.CounterVec
	taskRuns      *prometheus.CounterVec
	sideEffects   *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		joins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "joins_total",
			Help:      "Join attempts by outcome.",
		}, []string{"outcome"}),
		leaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaves_total",
			Help:      "Leave attempts by outcome.",
		}, []string{"outcome"}),
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completion_attempts_total",
			Help:      "Completion claim attempts by result (claimed, lost, below_threshold, error).",
		}, []string{"result"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification deliveries by kind and result.",
		}, []string{"kind", "result"}),
		taskRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_runs_total",
			Help:      "Post-commit task executions by kind and result.",
		}, []string{"kind", "result"}),
		sideEffects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "side_effect_failures_total",
			Help:      "Side effects that failed after the membership change committed.",
		}, []string{"effect"}),
	}
	reg.MustRegister(
		m.joins, m.leaves, m.completions, m.notifications, m.taskRuns, m.sideEffects,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) JoinObserved(outcome string) {
	if m == nil {
		return
	}
	m.joins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) LeaveObserved(outcome string) {
	if m == nil {
		return
	}
	m.leaves.WithLabelValues(outcome).Inc()
}

func (m *Metrics) CompletionObserved(result string) {
	if m == nil {
		return
	}
	m.completions.WithLabelValues(result).Inc()
}

func (m *Metrics) NotificationObserved(kind string, ok bool) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(kind, result(ok)).Inc()
}

func (m *Metrics) TaskRunObserved(kind string, ok bool) {
	if m == nil {
		return
	}
	m.taskRuns.WithLabelValues(kind, result(ok)).Inc()
}

func (m *Metrics) SideEffectFailed(effect string) {
	if m == nil {
		return
	}
	m.sideEffects.WithLabelValues(effect).Inc()
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
