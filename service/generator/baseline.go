/*
 * @module service/generator/baseline
 * @description 基线快照：固定身份的数据源、固定血缘图、随机质量指标与固定告警
 * @architecture 无状态生成器
 * @documentReference DESIGN.md
 * @stateFlow Baseline() -> 门面缓存
 * @rules 结构固定，只有数值字段随机
 * @dependencies datamesh-service/service/models
 * @refs service/mockapi/mock_api.go
 */

package generator

import (
	"time"

	"datamesh-service/service/models"
)

// Baseline 门面在构造时缓存的一次性快照
type Baseline struct {
	DataSources []models.DataSource    `json:"dataSources"`
	Lineage     models.LineageGraph    `json:"lineage"`
	Quality     models.QualitySnapshot `json:"quality"`
	Alerts      []models.Alert         `json:"alerts"`
}

// Baseline 生成基线快照
func (g *Generator) Baseline() Baseline {
	return Baseline{
		DataSources: g.dataSources(),
		Lineage:     lineageGraph(),
		Quality:     g.Quality(),
		Alerts:      baselineAlerts(),
	}
}

func (g *Generator) dataSources() []models.DataSource {
	return []models.DataSource{
		{
			ID:          "customer-api",
			Name:        "Customer API",
			Category:    models.CategoryAPI,
			Description: "RESTful API providing customer data and profiles",
			Owner:       "Customer Team",
			LastUpdated: g.ago(7 * 24 * time.Hour),
			Quality:     models.QualityExcellent,
			Tags:        []string{"customer", "api", "profile"},
			Metrics: map[string]float64{
				"requests":   float64(g.Int(Range{Min: 5000, Span: 10000})),
				"latency_ms": float64(g.Int(Range{Min: 50, Span: 100})),
				"uptime_pct": g.Float(99.5, 0.5),
			},
		},
		{
			ID:          "sales-db",
			Name:        "Sales Database",
			Category:    models.CategoryDatabase,
			Description: "PostgreSQL database containing sales transactions and purchase orders",
			Owner:       "Sales Team",
			LastUpdated: g.ago(3 * 24 * time.Hour),
			Quality:     models.QualityGood,
			Tags:        []string{"sales", "database", "transactions"},
			Metrics: map[string]float64{
				"size_gb":          2.3,
				"records":          float64(g.Int(Range{Min: 500000, Span: 1000000})),
				"backup_age_hours": g.Float(0, 24),
			},
		},
		{
			ID:          "product-files",
			Name:        "Product Catalog Files",
			Category:    models.CategoryFile,
			Description: "CSV files containing product information, pricing, and inventory",
			Owner:       "Product Team",
			LastUpdated: g.ago(2 * 24 * time.Hour),
			Quality:     models.QualityGood,
			Tags:        []string{"product", "catalog", "inventory"},
			Metrics: map[string]float64{
				"file_count":     float64(g.Int(Range{Min: 10, Span: 50})),
				"total_size_mb":  156,
				"sync_age_hours": g.Float(0, 6),
			},
		},
		{
			ID:          "analytics-stream",
			Name:        "Analytics Event Stream",
			Category:    models.CategoryStream,
			Description: "Kafka stream of user events and system metrics for real-time analytics",
			Owner:       "Analytics Team",
			LastUpdated: g.ago(time.Hour),
			Quality:     models.QualityExcellent,
			Tags:        []string{"analytics", "streaming", "events"},
			Metrics: map[string]float64{
				"throughput":  float64(g.Int(Range{Min: 5000, Span: 10000})),
				"partitions":  16,
				"replication": 3,
			},
		},
	}
}

// lineageGraph 固定的九节点血缘图：源 -> 转换 -> 仓/湖 -> 消费端
func lineageGraph() models.LineageGraph {
	node := func(id, name string, typ models.NodeType, x, y int) models.LineageNode {
		return models.LineageNode{ID: id, Name: name, Type: typ, Position: models.Position{X: x, Y: y}, Status: models.NodeActive}
	}
	link := func(source, target string, typ models.LinkType) models.LineageLink {
		return models.LineageLink{Source: source, Target: target, Type: typ}
	}

	return models.LineageGraph{
		Nodes: []models.LineageNode{
			node("source1", "Customer API", models.NodeTypeAPI, 50, 100),
			node("source2", "Sales Database", models.NodeTypeDatabase, 50, 200),
			node("source3", "Product Files", models.NodeTypeFile, 50, 300),
			node("transform1", "Data Cleaner", models.NodeTypeTransform, 200, 150),
			node("transform2", "Schema Mapper", models.NodeTypeTransform, 200, 250),
			node("warehouse", "Data Warehouse", models.NodeTypeWarehouse, 400, 200),
			node("lake", "Data Lake", models.NodeTypeLake, 400, 300),
			node("analytics", "Analytics API", models.NodeTypeAPI, 600, 150),
			node("dashboard", "Dashboard", models.NodeTypeDashboard, 600, 250),
		},
		Links: []models.LineageLink{
			link("source1", "transform1", models.LinkData),
			link("source2", "transform1", models.LinkData),
			link("source3", "transform2", models.LinkData),
			link("transform1", "warehouse", models.LinkData),
			link("transform2", "lake", models.LinkData),
			link("warehouse", "analytics", models.LinkAPI),
			link("warehouse", "dashboard", models.LinkAPI),
			link("lake", "analytics", models.LinkAPI),
		},
	}
}

func baselineAlerts() []models.Alert {
	return []models.Alert{
		{
			ID:        1,
			Type:      models.AlertWarning,
			Source:    "Product Files",
			Message:   "Data completeness dropped below 90%",
			Timestamp: "5 minutes ago",
			Severity:  models.SeverityMedium,
		},
		{
			ID:        2,
			Type:      models.AlertError,
			Source:    "Marketing Data",
			Message:   "Schema validation failed for 15 records",
			Timestamp: "12 minutes ago",
			Severity:  models.SeverityHigh,
		},
		{
			ID:        3,
			Type:      models.AlertInfo,
			Source:    "Customer API",
			Message:   "Data freshness check completed successfully",
			Timestamp: "1 hour ago",
			Severity:  models.SeverityLow,
		},
	}
}

// SourceRows 各数据源的质量明细。作为确定性的种子数据保持静态。
func (g *Generator) SourceRows() []models.SourceMetricRow {
	return []models.SourceMetricRow{
		{Name: "Customer API", Completeness: 98, Accuracy: 95, Consistency: 92, Timeliness: 88, Issues: 2},
		{Name: "Sales Database", Completeness: 94, Accuracy: 97, Consistency: 89, Timeliness: 95, Issues: 1},
		{Name: "Product Files", Completeness: 87, Accuracy: 93, Consistency: 85, Timeliness: 78, Issues: 5},
		{Name: "Analytics API", Completeness: 96, Accuracy: 91, Consistency: 94, Timeliness: 92, Issues: 1},
		{Name: "Marketing Data", Completeness: 89, Accuracy: 88, Consistency: 82, Timeliness: 85, Issues: 3},
	}
}
