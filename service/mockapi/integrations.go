package mockapi

import (
	"context"

	"datamesh-service/service/models"
)

// GetSQLInsights SQL仓库面板
func (m *MockAPI) GetSQLInsights(ctx context.Context) (models.SQLInsights, error) {
	return call(ctx, m, OpIntegrations, func() (models.SQLInsights, error) {
		return m.integrations.SQLInsights(), nil
	})
}

// GetWorkflows 工作流面板
func (m *MockAPI) GetWorkflows(ctx context.Context) (models.Workflows, error) {
	return call(ctx, m, OpIntegrations, func() (models.Workflows, error) {
		return m.integrations.Workflows(), nil
	})
}

// GetWorkflowJob 按ID获取作业
func (m *MockAPI) GetWorkflowJob(ctx context.Context, id string) (models.WorkflowJob, error) {
	return call(ctx, m, OpIntegrations, func() (models.WorkflowJob, error) {
		job, ok := m.integrations.Job(id)
		if !ok {
			return models.WorkflowJob{}, notFound("workflow job", id)
		}
		return job, nil
	})
}

// GetLakeTables 湖表面板
func (m *MockAPI) GetLakeTables(ctx context.Context) (models.LakeTables, error) {
	return call(ctx, m, OpIntegrations, func() (models.LakeTables, error) {
		return m.integrations.LakeTables(), nil
	})
}

// GetModelRegistry 模型注册中心面板
func (m *MockAPI) GetModelRegistry(ctx context.Context) (models.ModelRegistry, error) {
	return call(ctx, m, OpIntegrations, func() (models.ModelRegistry, error) {
		return m.integrations.ModelRegistry(), nil
	})
}

// GetGovernanceCatalog 治理目录面板
func (m *MockAPI) GetGovernanceCatalog(ctx context.Context) (models.GovernanceCatalog, error) {
	return call(ctx, m, OpIntegrations, func() (models.GovernanceCatalog, error) {
		return m.integrations.GovernanceCatalog(), nil
	})
}

// GetCatalogTable 按 catalog.schema.table 获取治理表
func (m *MockAPI) GetCatalogTable(ctx context.Context, fullName string) (models.CatalogTable, error) {
	return call(ctx, m, OpIntegrations, func() (models.CatalogTable, error) {
		table, ok := m.integrations.Table(fullName)
		if !ok {
			return models.CatalogTable{}, notFound("catalog table", fullName)
		}
		return table, nil
	})
}
