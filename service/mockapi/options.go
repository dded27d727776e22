/*
 * @module service/mockapi/options
 * @description 模拟API门面的可选配置：延迟、推送间隔、日志、指标记录
 * @architecture 函数式选项
 * @documentReference DESIGN.md
 * @stateFlow New(opts...) -> 应用选项 -> 构造门面
 * @rules 未设置的选项使用默认值
 * @dependencies log/slog, time
 * @refs service/mockapi/mock_api.go
 */

package mockapi

import (
	"log/slog"
	"time"

	"datamesh-service/service/integrations"
)

// Operation 门面操作名，用于延迟配置和指标标签
type Operation string

const (
	OpDashboardMetrics Operation = "dashboard_metrics"
	OpTrendData        Operation = "trend_data"
	OpDataAssets       Operation = "data_assets"
	OpDataAsset        Operation = "data_asset"
	OpDataLineage      Operation = "data_lineage"
	OpNodeDetails      Operation = "node_details"
	OpLineageImpact    Operation = "lineage_impact"
	OpQualityMetrics   Operation = "quality_metrics"
	OpQualityTrends    Operation = "quality_trends"
	OpSourceMetrics    Operation = "source_metrics"
	OpQualityAlerts    Operation = "quality_alerts"
	OpIntegrations     Operation = "integrations"
)

// DefaultUpdateInterval 订阅推送间隔
const DefaultUpdateInterval = 5 * time.Second

// Latency 每个操作的模拟延迟
type Latency map[Operation]time.Duration

// DefaultLatency 默认模拟延迟
func DefaultLatency() Latency {
	return Latency{
		OpDashboardMetrics: 300 * time.Millisecond,
		OpTrendData:        200 * time.Millisecond,
		OpDataAssets:       400 * time.Millisecond,
		OpDataAsset:        200 * time.Millisecond,
		OpDataLineage:      300 * time.Millisecond,
		OpNodeDetails:      200 * time.Millisecond,
		OpLineageImpact:    200 * time.Millisecond,
		OpQualityMetrics:   250 * time.Millisecond,
		OpQualityTrends:    200 * time.Millisecond,
		OpSourceMetrics:    300 * time.Millisecond,
		OpQualityAlerts:    200 * time.Millisecond,
		OpIntegrations:     250 * time.Millisecond,
	}
}

// Recorder 门面调用与订阅的观测接口，由 monitoring 包实现
type Recorder interface {
	ObserveCall(op string, d time.Duration, err error)
	SubscriptionOpened()
	SubscriptionClosed()
}

type nopRecorder struct{}

func (nopRecorder) ObserveCall(string, time.Duration, error) {}
func (nopRecorder) SubscriptionOpened()                      {}
func (nopRecorder) SubscriptionClosed()                      {}

// Option 门面选项
type Option func(*MockAPI)

// WithLatency 覆盖部分操作的延迟，未列出的操作保持原值
func WithLatency(l Latency) Option {
	return func(m *MockAPI) {
		for op, d := range l {
			m.latency[op] = d
		}
	}
}

// WithLatencyScale 按比例缩放所有延迟，0 表示不等待
func WithLatencyScale(scale float64) Option {
	return func(m *MockAPI) {
		if scale < 0 {
			scale = 0
		}
		for op, d := range m.latency {
			m.latency[op] = time.Duration(float64(d) * scale)
		}
	}
}

// WithNoLatency 关闭所有模拟延迟，测试中使用
func WithNoLatency() Option {
	return WithLatencyScale(0)
}

// WithUpdateInterval 设置订阅推送间隔
func WithUpdateInterval(d time.Duration) Option {
	return func(m *MockAPI) {
		if d > 0 {
			m.updateInterval = d
		}
	}
}

// WithLogger 设置日志
func WithLogger(l *slog.Logger) Option {
	return func(m *MockAPI) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRecorder 设置指标记录器
func WithRecorder(r Recorder) Option {
	return func(m *MockAPI) {
		if r != nil {
			m.recorder = r
		}
	}
}

// WithTrendWindow 设置趋势窗口（天）
func WithTrendWindow(days int) Option {
	return func(m *MockAPI) {
		m.trendWindow = days
	}
}

// WithIntegrations 使用外部加载的集成数据
func WithIntegrations(s *integrations.Store) Option {
	return func(m *MockAPI) {
		m.integrations = s
	}
}
