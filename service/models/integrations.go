/*
 * @module service/models/integrations
 * @description 第三方平台集成面板的数据模型：SQL仓库、工作流、湖表、模型注册中心、治理目录
 * @architecture 数据模型层
 * @documentReference DESIGN.md
 * @stateFlow YAML夹具加载 -> 汇总计算 -> 只读返回
 * @rules 汇总字段由明细行计算得出，不在夹具中手写
 * @dependencies gopkg.in/yaml.v3 标签
 * @refs service/integrations/loader.go
 */

package models

// === SQL仓库 ===

// SQLWarehouse SQL计算仓库
type SQLWarehouse struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	State           string `json:"state" yaml:"state"` // RUNNING, STOPPED, STARTING
	ClusterSize     string `json:"clusterSize" yaml:"clusterSize"`
	AutoStopMinutes int    `json:"autoStopMinutes" yaml:"autoStopMinutes"`
	QueriesPerHour  int    `json:"queriesPerHour" yaml:"queriesPerHour"`
}

// SQLQuery 最近执行的查询
type SQLQuery struct {
	ID           string  `json:"id" yaml:"id"`
	Query        string  `json:"query" yaml:"query"`
	Duration     float64 `json:"duration" yaml:"duration"` // 秒
	RowsReturned int     `json:"rowsReturned" yaml:"rowsReturned"`
	Status       string  `json:"status" yaml:"status"`
	Timestamp    string  `json:"timestamp" yaml:"timestamp"`
	User         string  `json:"user" yaml:"user"`
}

// SQLPerformance SQL性能汇总
type SQLPerformance struct {
	AvgQueryTime      float64 `json:"avgQueryTime" yaml:"avgQueryTime"`
	TotalQueriesToday int     `json:"totalQueriesToday" yaml:"totalQueriesToday"`
	SuccessRate       float64 `json:"successRate" yaml:"successRate"`
	ActiveUsers       int     `json:"activeUsers" yaml:"activeUsers"`
}

// SQLInsights SQL仓库面板
type SQLInsights struct {
	Warehouses         []SQLWarehouse `json:"warehouses" yaml:"warehouses"`
	RecentQueries      []SQLQuery     `json:"recentQueries" yaml:"recentQueries"`
	PerformanceMetrics SQLPerformance `json:"performanceMetrics" yaml:"performanceMetrics"`
}

// === 工作流 ===

// WorkflowJob 作业定义
type WorkflowJob struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Status      string   `json:"status" yaml:"status"` // SUCCESS, RUNNING, FAILED
	LastRun     string   `json:"lastRun" yaml:"lastRun"`
	Duration    *float64 `json:"duration" yaml:"duration"` // 分钟，运行中为空
	NextRun     string   `json:"nextRun" yaml:"nextRun"`
	SuccessRate float64  `json:"successRate" yaml:"successRate"`
	Owner       string   `json:"owner" yaml:"owner"`
	Cluster     string   `json:"cluster" yaml:"cluster"`
}

// WorkflowRun 作业运行记录
type WorkflowRun struct {
	RunID          string   `json:"runId" yaml:"runId"`
	JobName        string   `json:"jobName" yaml:"jobName"`
	Status         string   `json:"status" yaml:"status"`
	StartTime      string   `json:"startTime" yaml:"startTime"`
	EndTime        *string  `json:"endTime" yaml:"endTime"`
	Duration       *float64 `json:"duration" yaml:"duration"`
	Tasks          int      `json:"tasks" yaml:"tasks"`
	CompletedTasks int      `json:"completedTasks" yaml:"completedTasks"`
}

// WorkflowSummary 工作流汇总
type WorkflowSummary struct {
	TotalJobs      int     `json:"totalJobs"`
	RunningJobs    int     `json:"runningJobs"`
	FailedJobs     int     `json:"failedJobs"`
	SuccessRate    float64 `json:"successRate"`
	AvgDuration    float64 `json:"avgDuration"`
	TotalRunsToday int     `json:"totalRunsToday" yaml:"totalRunsToday"`
}

// Workflows 工作流面板
type Workflows struct {
	Jobs       []WorkflowJob   `json:"jobs" yaml:"jobs"`
	RecentRuns []WorkflowRun   `json:"recentRuns" yaml:"recentRuns"`
	Summary    WorkflowSummary `json:"summary" yaml:"summary"`
}

// === 湖表 ===

// LakeTable 湖表元数据
type LakeTable struct {
	Name          string   `json:"name" yaml:"name"`
	Version       int      `json:"version" yaml:"version"`
	LastUpdate    string   `json:"lastUpdate" yaml:"lastUpdate"`
	Schema        []string `json:"schema" yaml:"schema"`
	Status        string   `json:"status" yaml:"status"` // Healthy, Warning, Error
	RowCount      int64    `json:"rowCount" yaml:"rowCount"`
	SizeGB        float64  `json:"sizeGB" yaml:"sizeGB"`
	SchemaChanges int      `json:"schemaChanges" yaml:"schemaChanges"`
}

// LakeSummary 湖表汇总
type LakeSummary struct {
	TotalTables   int     `json:"totalTables"`
	HealthyTables int     `json:"healthyTables"`
	TotalRows     int64   `json:"totalRows"`
	TotalSizeGB   float64 `json:"totalSizeGB"`
}

// LakeTables 湖表面板
type LakeTables struct {
	Tables  []LakeTable `json:"tables" yaml:"tables"`
	Summary LakeSummary `json:"summary"`
}

// === 模型注册中心 ===

// MLExperiment 实验
type MLExperiment struct {
	ID           string  `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Status       string  `json:"status" yaml:"status"` // ACTIVE, ARCHIVED
	Runs         int     `json:"runs" yaml:"runs"`
	LastRun      string  `json:"lastRun" yaml:"lastRun"`
	BestAccuracy float64 `json:"bestAccuracy" yaml:"bestAccuracy"`
	Owner        string  `json:"owner" yaml:"owner"`
}

// ModelPerformance 模型性能
type ModelPerformance struct {
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1Score   float64 `json:"f1Score" yaml:"f1Score"`
}

// RegisteredModel 已注册模型
type RegisteredModel struct {
	Name        string           `json:"name" yaml:"name"`
	Version     string           `json:"version" yaml:"version"`
	Stage       string           `json:"stage" yaml:"stage"` // Production, Staging, Archived
	Accuracy    float64          `json:"accuracy" yaml:"accuracy"`
	LastTrained string           `json:"lastTrained" yaml:"lastTrained"`
	Performance ModelPerformance `json:"performance" yaml:"performance"`
	Tags        []string         `json:"tags" yaml:"tags"`
	Size        string           `json:"size" yaml:"size"`
}

// MLRun 训练运行
type MLRun struct {
	RunID          string             `json:"runId" yaml:"runId"`
	ExperimentName string             `json:"experimentName" yaml:"experimentName"`
	Status         string             `json:"status" yaml:"status"`
	StartTime      string             `json:"startTime" yaml:"startTime"`
	EndTime        string             `json:"endTime" yaml:"endTime"`
	Duration       float64            `json:"duration" yaml:"duration"`
	Metrics        map[string]float64 `json:"metrics" yaml:"metrics"`
	Parameters     map[string]float64 `json:"parameters" yaml:"parameters"`
}

// ModelRegistrySummary 模型注册中心汇总
type ModelRegistrySummary struct {
	TotalExperiments  int     `json:"totalExperiments"`
	ActiveExperiments int     `json:"activeExperiments"`
	TotalModels       int     `json:"totalModels"`
	ProductionModels  int     `json:"productionModels"`
	AvgAccuracy       float64 `json:"avgAccuracy"`
}

// ModelRegistry 模型注册中心面板
type ModelRegistry struct {
	Experiments []MLExperiment       `json:"experiments" yaml:"experiments"`
	Models      []RegisteredModel    `json:"models" yaml:"models"`
	RecentRuns  []MLRun              `json:"recentRuns" yaml:"recentRuns"`
	Summary     ModelRegistrySummary `json:"summary"`
}

// === 治理目录 ===

// Catalog 目录
type Catalog struct {
	Name      string `json:"name" yaml:"name"`
	Owner     string `json:"owner" yaml:"owner"`
	Comment   string `json:"comment" yaml:"comment"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
	UpdatedAt string `json:"updatedAt" yaml:"updatedAt"`
	Status    string `json:"status" yaml:"status"`
}

// CatalogSchema 目录下的schema
type CatalogSchema struct {
	Name      string `json:"name" yaml:"name"`
	Catalog   string `json:"catalog" yaml:"catalog"`
	Owner     string `json:"owner" yaml:"owner"`
	Comment   string `json:"comment" yaml:"comment"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
	UpdatedAt string `json:"updatedAt" yaml:"updatedAt"`
	Tables    int    `json:"tables" yaml:"tables"`
	Views     int    `json:"views" yaml:"views"`
}

// TableColumn 表字段
type TableColumn struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Nullable bool   `json:"nullable" yaml:"nullable"`
}

// TableLineage 表级上下游
type TableLineage struct {
	Upstream   []string `json:"upstream" yaml:"upstream"`
	Downstream []string `json:"downstream" yaml:"downstream"`
}

// CatalogTable 治理表
type CatalogTable struct {
	Name             string            `json:"name" yaml:"name"`
	Schema           string            `json:"schema" yaml:"schema"`
	Catalog          string            `json:"catalog" yaml:"catalog"`
	Owner            string            `json:"owner" yaml:"owner"`
	TableType        string            `json:"tableType" yaml:"tableType"`
	DataSourceFormat string            `json:"dataSourceFormat" yaml:"dataSourceFormat"`
	Location         string            `json:"location" yaml:"location"`
	CreatedAt        string            `json:"createdAt" yaml:"createdAt"`
	UpdatedAt        string            `json:"updatedAt" yaml:"updatedAt"`
	Properties       map[string]string `json:"properties" yaml:"properties"`
	Columns          []TableColumn     `json:"columns" yaml:"columns"`
	Tags             []string          `json:"tags" yaml:"tags"`
	Lineage          TableLineage      `json:"lineage" yaml:"lineage"`
}

// FullName 三段式表名 catalog.schema.table
func (t CatalogTable) FullName() string {
	return t.Catalog + "." + t.Schema + "." + t.Name
}

// GovernanceSummary 治理汇总
type GovernanceSummary struct {
	TotalCatalogs int    `json:"totalCatalogs"`
	TotalSchemas  int    `json:"totalSchemas"`
	TotalTables   int    `json:"totalTables"`
	PIITables     int    `json:"piiTables"`
	LastAudit     string `json:"lastAudit"`
}

// GovernanceCatalog 治理目录面板
type GovernanceCatalog struct {
	Catalogs []Catalog         `json:"catalogs" yaml:"catalogs"`
	Schemas  []CatalogSchema   `json:"schemas" yaml:"schemas"`
	Tables   []CatalogTable    `json:"tables" yaml:"tables"`
	Summary  GovernanceSummary `json:"summary"`
}
