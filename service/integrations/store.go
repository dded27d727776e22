package integrations

import (
	"datamesh-service/service/models"
)

// SQLInsights SQL仓库面板
func (s *Store) SQLInsights() models.SQLInsights {
	out := s.sql
	out.Warehouses = append([]models.SQLWarehouse(nil), s.sql.Warehouses...)
	out.RecentQueries = append([]models.SQLQuery(nil), s.sql.RecentQueries...)
	return out
}

// Workflows 工作流面板
func (s *Store) Workflows() models.Workflows {
	out := s.workflows
	out.Jobs = make([]models.WorkflowJob, 0, len(s.workflows.Jobs))
	for _, j := range s.workflows.Jobs {
		out.Jobs = append(out.Jobs, cloneJob(j))
	}
	out.RecentRuns = make([]models.WorkflowRun, 0, len(s.workflows.RecentRuns))
	for _, r := range s.workflows.RecentRuns {
		r.EndTime = clonePtr(r.EndTime)
		r.Duration = clonePtr(r.Duration)
		out.RecentRuns = append(out.RecentRuns, r)
	}
	return out
}

// Job 按ID查找作业
func (s *Store) Job(id string) (models.WorkflowJob, bool) {
	for _, j := range s.workflows.Jobs {
		if j.ID == id {
			return cloneJob(j), true
		}
	}
	return models.WorkflowJob{}, false
}

// LakeTables 湖表面板
func (s *Store) LakeTables() models.LakeTables {
	out := s.lake
	out.Tables = make([]models.LakeTable, 0, len(s.lake.Tables))
	for _, t := range s.lake.Tables {
		t.Schema = append([]string(nil), t.Schema...)
		out.Tables = append(out.Tables, t)
	}
	return out
}

// ModelRegistry 模型注册中心面板
func (s *Store) ModelRegistry() models.ModelRegistry {
	out := s.registry
	out.Experiments = append([]models.MLExperiment(nil), s.registry.Experiments...)
	out.Models = make([]models.RegisteredModel, 0, len(s.registry.Models))
	for _, m := range s.registry.Models {
		m.Tags = append([]string(nil), m.Tags...)
		out.Models = append(out.Models, m)
	}
	out.RecentRuns = make([]models.MLRun, 0, len(s.registry.RecentRuns))
	for _, r := range s.registry.RecentRuns {
		r.Metrics = cloneMap(r.Metrics)
		r.Parameters = cloneMap(r.Parameters)
		out.RecentRuns = append(out.RecentRuns, r)
	}
	return out
}

// GovernanceCatalog 治理目录面板
func (s *Store) GovernanceCatalog() models.GovernanceCatalog {
	out := s.governance
	out.Catalogs = append([]models.Catalog(nil), s.governance.Catalogs...)
	out.Schemas = append([]models.CatalogSchema(nil), s.governance.Schemas...)
	out.Tables = make([]models.CatalogTable, 0, len(s.governance.Tables))
	for _, t := range s.governance.Tables {
		out.Tables = append(out.Tables, cloneTable(t))
	}
	return out
}

// Table 按 catalog.schema.table 查找治理表
func (s *Store) Table(fullName string) (models.CatalogTable, bool) {
	for _, t := range s.governance.Tables {
		if t.FullName() == fullName {
			return cloneTable(t), true
		}
	}
	return models.CatalogTable{}, false
}

func cloneJob(j models.WorkflowJob) models.WorkflowJob {
	j.Duration = clonePtr(j.Duration)
	return j
}

func cloneTable(t models.CatalogTable) models.CatalogTable {
	t.Properties = cloneMap(t.Properties)
	t.Columns = append([]models.TableColumn(nil), t.Columns...)
	t.Tags = append([]string(nil), t.Tags...)
	t.Lineage = models.TableLineage{
		Upstream:   append([]string(nil), t.Lineage.Upstream...),
		Downstream: append([]string(nil), t.Lineage.Downstream...),
	}
	return t
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
