/*
 * @module service/monitoring/metrics
 * @description Prometheus 指标：门面调用、订阅、SSE连接、遥测转发
 * @architecture 实例化的采集器集合，便于测试隔离
 * @documentReference DESIGN.md
 * @stateFlow NewMetrics -> Register(reg) -> 各组件上报 -> /metrics 暴露
 * @rules 重复注册视为成功
 * @dependencies github.com/prometheus/client_golang
 * @refs service/mockapi/options.go, service/scheduler/scheduler_service.go
 */

package monitoring

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "datamesh"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics 服务的全部采集器
type Metrics struct {
	calls               *prometheus.CounterVec
	callDuration        *prometheus.HistogramVec
	activeSubscriptions prometheus.Gauge
	sseConnections      prometheus.Gauge
	sseDropped          prometheus.Counter
	relayPublishes      *prometheus.CounterVec
}

// NewMetrics 创建采集器，尚未注册
func NewMetrics() *Metrics {
	return &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_calls_total",
				Help:      "Mock API calls, partitioned by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		callDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_call_seconds",
				Help:      "Mock API call latency in seconds, simulated delay included.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.2, 0.3, 0.4, 0.5, 1},
			},
			[]string{"operation"},
		),
		activeSubscriptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_subscriptions",
			Help:      "Update subscriptions that have not been cancelled.",
		}),
		sseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sse_connections",
			Help:      "Open Server-Sent-Events connections.",
		}),
		sseDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sse_dropped_events_total",
			Help:      "Events dropped because a client queue was full.",
		}),
		relayPublishes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "relay_publishes_total",
				Help:      "Telemetry relay publishes, partitioned by sink and outcome.",
			},
			[]string{"sink", "outcome"},
		),
	}
}

// Register 注册到给定的 Registerer，已注册的采集器跳过
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.calls,
		m.callDuration,
		m.activeSubscriptions,
		m.sseConnections,
		m.sseDropped,
		m.relayPublishes,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}

// ObserveCall 记录一次门面调用
func (m *Metrics) ObserveCall(op string, d time.Duration, err error) {
	m.calls.WithLabelValues(op, outcome(err)).Inc()
	if d < 0 {
		d = 0
	}
	m.callDuration.WithLabelValues(op).Observe(d.Seconds())
}

// SubscriptionOpened 订阅创建
func (m *Metrics) SubscriptionOpened() {
	m.activeSubscriptions.Inc()
}

// SubscriptionClosed 订阅取消
func (m *Metrics) SubscriptionClosed() {
	m.activeSubscriptions.Dec()
}

// SSEConnected SSE连接建立
func (m *Metrics) SSEConnected() {
	m.sseConnections.Inc()
}

// SSEDisconnected SSE连接断开
func (m *Metrics) SSEDisconnected() {
	m.sseConnections.Dec()
}

// SSEDropped 客户端队列已满，事件被丢弃
func (m *Metrics) SSEDropped() {
	m.sseDropped.Inc()
}

// ObservePublish 记录一次转发结果
func (m *Metrics) ObservePublish(sink string, err error) {
	m.relayPublishes.WithLabelValues(sink, outcome(err)).Inc()
}
