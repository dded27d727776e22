/*
 * @module service/models/quality
 * @description 数据质量模型：质量快照、趋势、数据源质量、告警与实时更新
 * @architecture 数据模型层
 * @documentReference DESIGN.md
 * @stateFlow 生成器每次调用产生新的值对象
 * @rules 所有百分比字段落在[0,100]之间
 * @dependencies time
 * @refs service/generator/generator.go
 */

package models

import "time"

// QualitySnapshot 质量快照
type QualitySnapshot struct {
	Overall      int `json:"overall"`
	Completeness int `json:"completeness"`
	Accuracy     int `json:"accuracy"`
	Consistency  int `json:"consistency"`
	Timeliness   int `json:"timeliness"`
}

// TrendPoint 趋势数据点，一天一个
type TrendPoint struct {
	Date         time.Time `json:"-"`
	Label        string    `json:"date"`
	DataVolume   int       `json:"dataVolume"`
	QualityScore int       `json:"qualityScore"`
	Completeness int       `json:"completeness"`
	Accuracy     int       `json:"accuracy"`
	Consistency  int       `json:"consistency"`
	Timeliness   int       `json:"timeliness"`
}

// SourceMetricRow 单个数据源的质量指标
type SourceMetricRow struct {
	Name         string `json:"name"`
	Completeness int    `json:"completeness"`
	Accuracy     int    `json:"accuracy"`
	Consistency  int    `json:"consistency"`
	Timeliness   int    `json:"timeliness"`
	Issues       int    `json:"issues"`
}

// AlertSeverity 告警严重程度
type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// AlertType 告警分类
type AlertType string

const (
	AlertInfo    AlertType = "info"
	AlertWarning AlertType = "warning"
	AlertError   AlertType = "error"
)

// Alert 质量告警
type Alert struct {
	ID        int64         `json:"id"`
	Type      AlertType     `json:"type"`
	Source    string        `json:"source"`
	Message   string        `json:"message"`
	Timestamp string        `json:"timestamp"` // 相对时间描述，如 "5 minutes ago"
	Severity  AlertSeverity `json:"severity"`
}

// UpdateMetrics 实时更新中的指标增量
type UpdateMetrics struct {
	TotalDataAssets   int `json:"totalDataAssets"`
	ActiveConnections int `json:"activeConnections"`
	DataQualityScore  int `json:"dataQualityScore"`
}

// Update 订阅推送的数据
type Update struct {
	Timestamp time.Time     `json:"timestamp"`
	Metrics   UpdateMetrics `json:"metrics"`
	Alerts    []Alert       `json:"alerts"`
}
