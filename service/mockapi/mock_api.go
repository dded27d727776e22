/*
 * @module service/mockapi/mock_api
 * @description 模拟API门面，缓存一份基线数据，按模拟延迟应答各视图的查询
 * @architecture 显式构造的服务实例，非单例
 * @documentReference DESIGN.md
 * @stateFlow New -> 生成并校验基线 -> 查询(延迟 -> 拷贝返回) / 订阅(定时推送)
 * @rules 基线构造后只读；返回值均为副本；ctx 取消时提前返回
 * @dependencies golang.org/x/text/cases, log/slog
 * @refs service/generator, service/lineage, service/integrations
 */

package mockapi

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/cases"

	"datamesh-service/service/generator"
	"datamesh-service/service/integrations"
	"datamesh-service/service/lineage"
	"datamesh-service/service/models"
)

// MockAPI 模拟API门面，可并发使用
type MockAPI struct {
	gen      *generator.Generator
	baseline generator.Baseline
	nodes    map[string]models.LineageNode

	integrations *integrations.Store

	latency        Latency
	updateInterval time.Duration
	trendWindow    int
	logger         *slog.Logger
	recorder       Recorder

	alertSeq atomic.Int64

	mu      sync.Mutex
	subs    map[uint64]*subscription
	nextSub uint64
	closed  bool
}

// New 创建门面。基线在此生成一次，血缘图校验失败时返回错误。
func New(gen *generator.Generator, opts ...Option) (*MockAPI, error) {
	if gen == nil {
		gen = generator.New()
	}

	m := &MockAPI{
		gen:            gen,
		latency:        DefaultLatency(),
		updateInterval: DefaultUpdateInterval,
		trendWindow:    generator.DefaultTrendWindow,
		logger:         slog.Default(),
		recorder:       nopRecorder{},
		subs:           make(map[uint64]*subscription),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.baseline = gen.Baseline()
	if err := lineage.Validate(m.baseline.Lineage); err != nil {
		return nil, fmt.Errorf("基线血缘图校验失败: %w", err)
	}
	m.nodes = make(map[string]models.LineageNode, len(m.baseline.Lineage.Nodes))
	for _, n := range m.baseline.Lineage.Nodes {
		m.nodes[n.ID] = n
	}

	var maxAlertID int64
	for _, a := range m.baseline.Alerts {
		maxAlertID = max(maxAlertID, a.ID)
	}
	m.alertSeq.Store(maxAlertID)

	if m.integrations == nil {
		store, err := integrations.Load()
		if err != nil {
			return nil, fmt.Errorf("加载集成数据失败: %w", err)
		}
		m.integrations = store
	}

	m.logger.Info("模拟API已初始化",
		"data_sources", len(m.baseline.DataSources),
		"lineage_nodes", len(m.baseline.Lineage.Nodes),
		"update_interval", m.updateInterval.String())
	return m, nil
}

// wait 模拟网络延迟，ctx 取消时提前返回
func (m *MockAPI) wait(ctx context.Context, op Operation) error {
	d := m.latency[op]
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// call 统一处理延迟与指标记录
func call[T any](ctx context.Context, m *MockAPI, op Operation, fn func() (T, error)) (T, error) {
	start := time.Now()
	var (
		out T
		err error
	)
	if err = m.wait(ctx, op); err == nil {
		out, err = fn()
	}
	m.recorder.ObserveCall(string(op), time.Since(start), err)
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// === 仪表板 ===

// GetDashboardMetrics 仪表板汇总指标，资产总数取基线数据源数量
func (m *MockAPI) GetDashboardMetrics(ctx context.Context) (models.DashboardMetrics, error) {
	return call(ctx, m, OpDashboardMetrics, func() (models.DashboardMetrics, error) {
		return m.gen.DashboardMetrics(len(m.baseline.DataSources)), nil
	})
}

// GetTrendData 仪表板趋势数据
func (m *MockAPI) GetTrendData(ctx context.Context) ([]models.TrendPoint, error) {
	return call(ctx, m, OpTrendData, func() ([]models.TrendPoint, error) {
		return m.gen.Trend(m.trendWindow), nil
	})
}

// === 数据目录 ===

// GetDataAssets 按关键字和类别过滤数据资产，保持基线顺序
func (m *MockAPI) GetDataAssets(ctx context.Context, filter models.AssetFilter) ([]models.DataSource, error) {
	return call(ctx, m, OpDataAssets, func() ([]models.DataSource, error) {
		fold := cases.Fold()
		needle := fold.String(strings.TrimSpace(filter.Search))

		result := make([]models.DataSource, 0, len(m.baseline.DataSources))
		for _, ds := range m.baseline.DataSources {
			if filter.Category != "" && filter.Category != models.CategoryAll &&
				string(ds.Category) != filter.Category {
				continue
			}
			if needle != "" && !matches(fold, ds, needle) {
				continue
			}
			result = append(result, ds.Clone())
		}
		return result, nil
	})
}

func matches(fold cases.Caser, ds models.DataSource, needle string) bool {
	if strings.Contains(fold.String(ds.Name), needle) ||
		strings.Contains(fold.String(ds.Description), needle) {
		return true
	}
	for _, tag := range ds.Tags {
		if strings.Contains(fold.String(tag), needle) {
			return true
		}
	}
	return false
}

// GetDataAsset 按ID获取数据资产
func (m *MockAPI) GetDataAsset(ctx context.Context, id string) (models.DataSource, error) {
	return call(ctx, m, OpDataAsset, func() (models.DataSource, error) {
		for _, ds := range m.baseline.DataSources {
			if ds.ID == id {
				return ds.Clone(), nil
			}
		}
		return models.DataSource{}, notFound("data asset", id)
	})
}

// === 数据血缘 ===

// GetDataLineage 完整血缘图
func (m *MockAPI) GetDataLineage(ctx context.Context) (models.LineageGraph, error) {
	return call(ctx, m, OpDataLineage, func() (models.LineageGraph, error) {
		return m.baseline.Lineage.Clone(), nil
	})
}

// GetNodeDetails 节点详情，运行时指标每次随机生成
func (m *MockAPI) GetNodeDetails(ctx context.Context, id string) (models.NodeDetails, error) {
	return call(ctx, m, OpNodeDetails, func() (models.NodeDetails, error) {
		node, ok := m.nodes[id]
		if !ok {
			return models.NodeDetails{}, notFound("lineage node", id)
		}
		return models.NodeDetails{LineageNode: node, Details: m.gen.NodeOperational()}, nil
	})
}

// GetLineageImpact 节点的上下游影响范围
func (m *MockAPI) GetLineageImpact(ctx context.Context, id string) (models.LineageImpact, error) {
	return call(ctx, m, OpLineageImpact, func() (models.LineageImpact, error) {
		if _, ok := m.nodes[id]; !ok {
			return models.LineageImpact{}, notFound("lineage node", id)
		}
		return models.LineageImpact{
			NodeID:     id,
			Upstream:   lineage.Upstream(m.baseline.Lineage, id),
			Downstream: lineage.Downstream(m.baseline.Lineage, id),
		}, nil
	})
}

// === 数据质量 ===

// GetQualityMetrics 基线质量快照
func (m *MockAPI) GetQualityMetrics(ctx context.Context) (models.QualitySnapshot, error) {
	return call(ctx, m, OpQualityMetrics, func() (models.QualitySnapshot, error) {
		return m.baseline.Quality, nil
	})
}

// GetQualityTrends 质量趋势，使用默认窗口
func (m *MockAPI) GetQualityTrends(ctx context.Context) ([]models.TrendPoint, error) {
	return m.GetQualityTrendsWindow(ctx, m.trendWindow)
}

// GetQualityTrendsWindow 指定天数的质量趋势，days <= 0 返回空列表
func (m *MockAPI) GetQualityTrendsWindow(ctx context.Context, days int) ([]models.TrendPoint, error) {
	return call(ctx, m, OpQualityTrends, func() ([]models.TrendPoint, error) {
		return m.gen.Trend(days), nil
	})
}

// GetSourceMetrics 各数据源质量明细
func (m *MockAPI) GetSourceMetrics(ctx context.Context) ([]models.SourceMetricRow, error) {
	return call(ctx, m, OpSourceMetrics, func() ([]models.SourceMetricRow, error) {
		return m.gen.SourceRows(), nil
	})
}

// GetQualityAlerts 基线告警
func (m *MockAPI) GetQualityAlerts(ctx context.Context) ([]models.Alert, error) {
	return call(ctx, m, OpQualityAlerts, func() ([]models.Alert, error) {
		return append([]models.Alert(nil), m.baseline.Alerts...), nil
	})
}

// === 实时更新 ===

// NextUpdate 生成一次实时推送，告警ID全局递增
func (m *MockAPI) NextUpdate() models.Update {
	return m.gen.Update(m.nextAlertID)
}

func (m *MockAPI) nextAlertID() int64 {
	return m.alertSeq.Add(1)
}
