/*
 * @module service/models/datasource
 * @description 数据源模型定义，描述数据目录中的数据资产
 * @architecture 数据模型层
 * @documentReference DESIGN.md
 * @stateFlow 基线生成 -> 缓存 -> 拷贝后返回调用方
 * @rules 缓存的数据源只读，对外返回的必须是副本
 * @dependencies time
 * @refs service/generator/baseline.go
 */

package models

import "time"

// DataSourceCategory 数据源类别
type DataSourceCategory string

const (
	CategoryAPI      DataSourceCategory = "api"
	CategoryDatabase DataSourceCategory = "database"
	CategoryFile     DataSourceCategory = "file"
	CategoryStream   DataSourceCategory = "stream"

	// CategoryAll 目录过滤的哨兵值，表示不按类别过滤
	CategoryAll = "all"
)

// QualityLabel 数据质量等级
type QualityLabel string

const (
	QualityExcellent QualityLabel = "excellent"
	QualityGood      QualityLabel = "good"
	QualityPoor      QualityLabel = "poor"
)

// DataSource 数据资产
type DataSource struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Category    DataSourceCategory `json:"type"`
	Description string             `json:"description"`
	Owner       string             `json:"owner"`
	LastUpdated time.Time          `json:"lastUpdated"`
	Quality     QualityLabel       `json:"quality"`
	Tags        []string           `json:"tags"`
	Metrics     map[string]float64 `json:"metrics"` // 按类别不同的数值指标
}

// Clone 返回深拷贝，切片和map不与原对象共享
func (d DataSource) Clone() DataSource {
	out := d
	out.Tags = append([]string(nil), d.Tags...)
	out.Metrics = make(map[string]float64, len(d.Metrics))
	for k, v := range d.Metrics {
		out.Metrics[k] = v
	}
	return out
}

// AssetFilter 数据目录过滤条件
type AssetFilter struct {
	Search   string `json:"search" validate:"max=128"`
	Category string `json:"category" validate:"omitempty,oneof=all api database file stream"`
}

// DashboardMetrics 仪表板汇总指标
type DashboardMetrics struct {
	TotalDataAssets   int       `json:"totalDataAssets"`
	ActiveConnections int       `json:"activeConnections"`
	DataQualityScore  int       `json:"dataQualityScore"`
	SystemHealth      float64   `json:"systemHealth"`
	LastUpdated       time.Time `json:"lastUpdated"`
}
