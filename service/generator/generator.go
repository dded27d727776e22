/*
 * @module service/generator/generator
 * @description 模拟数据生成器，按固定取值区间生成数据网格平台的随机遥测快照
 * @architecture 无状态生成器 - 随机源与时钟可注入
 * @documentReference DESIGN.md
 * @stateFlow 调用 -> 抽取随机数 -> 返回新的值对象
 * @rules 所有百分比字段在左闭右开区间内均匀取整；不修改任何已返回对象
 * @dependencies math/rand/v2, sync, time
 * @refs service/models/quality.go, service/mockapi/mock_api.go
 */

package generator

import (
	"math/rand/v2"
	"sync"
	"time"

	"datamesh-service/service/models"
)

// DefaultTrendWindow 默认趋势窗口（天）
const DefaultTrendWindow = 7

// AlertProbability 每次实时更新注入告警的概率
const AlertProbability = 0.2

// Range 整数取值区间 [Min, Min+Span)
type Range struct {
	Min  int
	Span int
}

// Max 区间上界（不含）
func (r Range) Max() int {
	return r.Min + r.Span
}

// Contains 判断v是否落在区间内
func (r Range) Contains(v int) bool {
	return v >= r.Min && v < r.Max()
}

var (
	OverallRange      = Range{Min: 80, Span: 20}
	CompletenessRange = Range{Min: 85, Span: 15}
	AccuracyRange     = Range{Min: 90, Span: 10}
	ConsistencyRange  = Range{Min: 75, Span: 25}
	TimelinessRange   = Range{Min: 70, Span: 30}

	DataVolumeRange        = Range{Min: 500, Span: 1000}
	ActiveConnectionsRange = Range{Min: 80, Span: 20}
	DataQualityScoreRange  = Range{Min: 80, Span: 20}
	UpdateAssetsRange      = Range{Min: 150, Span: 50}
	NodeThroughputRange    = Range{Min: 100, Span: 1000}
	NodeLatencyRange       = Range{Min: 10, Span: 100}
)

const (
	systemHealthMin  = 98.5
	systemHealthSpan = 1.5
)

// Option 生成器选项
type Option func(*Generator)

// WithSeed 使用固定种子，输出可复现
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand 注入自定义随机源
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithClock 注入时钟
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// Generator 模拟数据生成器，可并发使用
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// New 创建生成器，未指定种子时使用随机种子
func New(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Now 返回生成器时钟的当前时间
func (g *Generator) Now() time.Time {
	return g.now()
}

// Int 在区间r内均匀取整
func (g *Generator) Int(r Range) int {
	if r.Span <= 0 {
		return r.Min
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return r.Min + g.rng.IntN(r.Span)
}

// Float 返回 [lo, lo+span) 的均匀浮点数
func (g *Generator) Float(lo, span float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.Float64()*span
}

// ago 返回 now 往前 [0, window) 内的随机时间
func (g *Generator) ago(window time.Duration) time.Time {
	offset := time.Duration(g.Float(0, float64(window)))
	return g.now().Add(-offset)
}

// Quality 生成质量快照
func (g *Generator) Quality() models.QualitySnapshot {
	return models.QualitySnapshot{
		Overall:      g.Int(OverallRange),
		Completeness: g.Int(CompletenessRange),
		Accuracy:     g.Int(AccuracyRange),
		Consistency:  g.Int(ConsistencyRange),
		Timeliness:   g.Int(TimelinessRange),
	}
}

// Trend 生成 windowSize 个按天排列的趋势点，最旧的在前。
// windowSize <= 0 时返回空切片。
func (g *Generator) Trend(windowSize int) []models.TrendPoint {
	if windowSize <= 0 {
		return []models.TrendPoint{}
	}

	now := g.now()
	points := make([]models.TrendPoint, 0, windowSize)
	for i := 0; i < windowSize; i++ {
		date := now.AddDate(0, 0, -(windowSize - 1 - i))
		points = append(points, models.TrendPoint{
			Date:         date,
			Label:        date.Format("Jan 2"),
			DataVolume:   g.Int(DataVolumeRange),
			QualityScore: g.Int(OverallRange),
			Completeness: g.Int(CompletenessRange),
			Accuracy:     g.Int(AccuracyRange),
			Consistency:  g.Int(ConsistencyRange),
			Timeliness:   g.Int(TimelinessRange),
		})
	}
	return points
}

// DashboardMetrics 生成仪表板指标，资产总数由调用方给出
func (g *Generator) DashboardMetrics(totalAssets int) models.DashboardMetrics {
	return models.DashboardMetrics{
		TotalDataAssets:   totalAssets,
		ActiveConnections: g.Int(ActiveConnectionsRange),
		DataQualityScore:  g.Int(DataQualityScoreRange),
		SystemHealth:      g.Float(systemHealthMin, systemHealthSpan),
		LastUpdated:       g.now(),
	}
}

// NodeOperational 生成血缘节点的运行时指标
func (g *Generator) NodeOperational() models.NodeOperational {
	return models.NodeOperational{
		LastUpdated: g.ago(24 * time.Hour),
		Throughput:  g.Int(NodeThroughputRange),
		Latency:     g.Int(NodeLatencyRange),
		Status:      models.NodeActive,
	}
}

// Update 生成一次实时推送。nextAlertID 仅在注入告警时调用。
func (g *Generator) Update(nextAlertID func() int64) models.Update {
	update := models.Update{
		Timestamp: g.now(),
		Metrics: models.UpdateMetrics{
			TotalDataAssets:   g.Int(UpdateAssetsRange),
			ActiveConnections: g.Int(ActiveConnectionsRange),
			DataQualityScore:  g.Int(DataQualityScoreRange),
		},
		Alerts: []models.Alert{},
	}

	if g.Float(0, 1) >= 1-AlertProbability {
		var id int64
		if nextAlertID != nil {
			id = nextAlertID()
		}
		update.Alerts = append(update.Alerts, models.Alert{
			ID:        id,
			Type:      models.AlertWarning,
			Source:    "System",
			Message:   "New quality alert detected",
			Timestamp: "Just now",
			Severity:  models.SeverityMedium,
		})
	}
	return update
}
