/*
 * @module service/integrations/loader
 * @description 集成面板数据加载：从内嵌YAML夹具解析SQL仓库、工作流、湖表、模型注册中心、治理目录
 * @architecture 只读数据存储
 * @documentReference DESIGN.md
 * @stateFlow embed.FS -> yaml解析 -> 计算汇总 -> Store
 * @rules 汇总字段从明细计算；对外返回副本
 * @dependencies gopkg.in/yaml.v3, embed
 * @refs service/models/integrations.go, service/mockapi/integrations.go
 */

package integrations

import (
	"embed"
	"fmt"
	"io/fs"
	"math"

	"gopkg.in/yaml.v3"

	"datamesh-service/service/models"
)

//go:embed fixtures/*.yaml
var fixtures embed.FS

const (
	sqlFile       = "sql.yaml"
	workflowsFile = "workflows.yaml"
	lakeFile      = "lake.yaml"
	modelsFile    = "models.yaml"
	catalogFile   = "catalog.yaml"
)

// Store 集成面板数据，加载后只读
type Store struct {
	sql        models.SQLInsights
	workflows  models.Workflows
	lake       models.LakeTables
	registry   models.ModelRegistry
	governance models.GovernanceCatalog
}

// Load 从内嵌夹具加载
func Load() (*Store, error) {
	sub, err := fs.Sub(fixtures, "fixtures")
	if err != nil {
		return nil, fmt.Errorf("打开内嵌夹具失败: %w", err)
	}
	return LoadFS(sub)
}

// LoadFS 从任意文件系统加载，目录下需包含全部五个夹具文件
func LoadFS(fsys fs.FS) (*Store, error) {
	s := &Store{}
	files := []struct {
		name string
		out  any
	}{
		{sqlFile, &s.sql},
		{workflowsFile, &s.workflows},
		{lakeFile, &s.lake},
		{modelsFile, &s.registry},
		{catalogFile, &s.governance},
	}
	for _, f := range files {
		if err := decode(fsys, f.name, f.out); err != nil {
			return nil, err
		}
	}

	s.workflows.Summary = summarizeWorkflows(s.workflows)
	s.lake.Summary = summarizeLake(s.lake.Tables)
	s.registry.Summary = summarizeRegistry(s.registry)
	s.governance.Summary = summarizeGovernance(s.governance)
	return s, nil
}

func decode(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("读取夹具 %s 失败: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("解析夹具 %s 失败: %w", name, err)
	}
	return nil
}

// === 汇总计算 ===

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func summarizeWorkflows(w models.Workflows) models.WorkflowSummary {
	summary := models.WorkflowSummary{
		TotalJobs:      len(w.Jobs),
		TotalRunsToday: w.Summary.TotalRunsToday,
	}
	var rateSum, durSum float64
	var durCount int
	for _, job := range w.Jobs {
		switch job.Status {
		case "RUNNING":
			summary.RunningJobs++
		case "FAILED":
			summary.FailedJobs++
		}
		rateSum += job.SuccessRate
		if job.Duration != nil {
			durSum += *job.Duration
			durCount++
		}
	}
	if len(w.Jobs) > 0 {
		summary.SuccessRate = round1(rateSum / float64(len(w.Jobs)))
	}
	if durCount > 0 {
		summary.AvgDuration = round1(durSum / float64(durCount))
	}
	return summary
}

func summarizeLake(tables []models.LakeTable) models.LakeSummary {
	summary := models.LakeSummary{TotalTables: len(tables)}
	for _, t := range tables {
		if t.Status == "Healthy" {
			summary.HealthyTables++
		}
		summary.TotalRows += t.RowCount
		summary.TotalSizeGB += t.SizeGB
	}
	summary.TotalSizeGB = round1(summary.TotalSizeGB)
	return summary
}

func summarizeRegistry(r models.ModelRegistry) models.ModelRegistrySummary {
	summary := models.ModelRegistrySummary{
		TotalExperiments: len(r.Experiments),
		TotalModels:      len(r.Models),
	}
	for _, e := range r.Experiments {
		if e.Status == "ACTIVE" {
			summary.ActiveExperiments++
		}
	}
	var accSum float64
	for _, m := range r.Models {
		if m.Stage == "Production" {
			summary.ProductionModels++
		}
		accSum += m.Accuracy
	}
	if len(r.Models) > 0 {
		summary.AvgAccuracy = round1(accSum / float64(len(r.Models)))
	}
	return summary
}

func summarizeGovernance(g models.GovernanceCatalog) models.GovernanceSummary {
	summary := models.GovernanceSummary{
		TotalCatalogs: len(g.Catalogs),
		TotalSchemas:  len(g.Schemas),
		TotalTables:   len(g.Tables),
	}
	for _, t := range g.Tables {
		if t.Properties["classification"] == "PII" {
			summary.PIITables++
		}
		// RFC3339 时间戳按字典序即时间序
		if audit := t.Properties["lastAudit"]; audit > summary.LastAudit {
			summary.LastAudit = audit
		}
	}
	return summary
}
