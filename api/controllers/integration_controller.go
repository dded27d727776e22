/*
 * @module api/controllers/integration_controller
 * @description 第三方平台集成面板控制器
 * @architecture MVC架构 - 控制器层
 * @documentReference DESIGN.md
 * @stateFlow HTTP请求 -> 门面调用 -> 统一响应
 * @rules 查找类接口对不存在的ID返回404
 * @dependencies github.com/go-chi/chi/v5
 * @refs service/integrations/store.go
 */

package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"datamesh-service/service/mockapi"
)

// IntegrationController 集成面板控制器
type IntegrationController struct {
	api *mockapi.MockAPI
}

// NewIntegrationController 创建集成面板控制器实例
func NewIntegrationController(api *mockapi.MockAPI) *IntegrationController {
	return &IntegrationController{api: api}
}

// GetSQLInsights 获取SQL仓库面板
// @Summary 获取SQL仓库面板
// @Tags 平台集成
// @Produce json
// @Success 200 {object} APIResponse{data=models.SQLInsights}
// @Router /integrations/sql [get]
func (c *IntegrationController) GetSQLInsights(w http.ResponseWriter, r *http.Request) {
	panel, err := c.api.GetSQLInsights(r.Context())
	renderResult(w, r, "获取SQL仓库面板", panel, err)
}

// GetWorkflows 获取工作流面板
// @Summary 获取工作流面板
// @Tags 平台集成
// @Produce json
// @Success 200 {object} APIResponse{data=models.Workflows}
// @Router /integrations/workflows [get]
func (c *IntegrationController) GetWorkflows(w http.ResponseWriter, r *http.Request) {
	panel, err := c.api.GetWorkflows(r.Context())
	renderResult(w, r, "获取工作流面板", panel, err)
}

// GetWorkflowJob 获取作业详情
// @Summary 获取作业详情
// @Tags 平台集成
// @Produce json
// @Param id path string true "作业ID"
// @Success 200 {object} APIResponse{data=models.WorkflowJob}
// @Failure 404 {object} ErrResponse
// @Router /integrations/workflows/jobs/{id} [get]
func (c *IntegrationController) GetWorkflowJob(w http.ResponseWriter, r *http.Request) {
	job, err := c.api.GetWorkflowJob(r.Context(), chi.URLParam(r, "id"))
	renderResult(w, r, "获取作业详情", job, err)
}

// GetLakeTables 获取湖表面板
// @Summary 获取湖表面板
// @Tags 平台集成
// @Produce json
// @Success 200 {object} APIResponse{data=models.LakeTables}
// @Router /integrations/lake [get]
func (c *IntegrationController) GetLakeTables(w http.ResponseWriter, r *http.Request) {
	panel, err := c.api.GetLakeTables(r.Context())
	renderResult(w, r, "获取湖表面板", panel, err)
}

// GetModelRegistry 获取模型注册中心面板
// @Summary 获取模型注册中心面板
// @Tags 平台集成
// @Produce json
// @Success 200 {object} APIResponse{data=models.ModelRegistry}
// @Router /integrations/mlflow [get]
func (c *IntegrationController) GetModelRegistry(w http.ResponseWriter, r *http.Request) {
	panel, err := c.api.GetModelRegistry(r.Context())
	renderResult(w, r, "获取模型注册中心面板", panel, err)
}

// GetGovernanceCatalog 获取治理目录面板
// @Summary 获取治理目录面板
// @Tags 平台集成
// @Produce json
// @Success 200 {object} APIResponse{data=models.GovernanceCatalog}
// @Router /integrations/catalog [get]
func (c *IntegrationController) GetGovernanceCatalog(w http.ResponseWriter, r *http.Request) {
	panel, err := c.api.GetGovernanceCatalog(r.Context())
	renderResult(w, r, "获取治理目录面板", panel, err)
}

// GetCatalogTable 获取治理表详情
// @Summary 获取治理表详情
// @Tags 平台集成
// @Produce json
// @Param name path string true "三段式表名 catalog.schema.table"
// @Success 200 {object} APIResponse{data=models.CatalogTable}
// @Failure 404 {object} ErrResponse
// @Router /integrations/catalog/tables/{name} [get]
func (c *IntegrationController) GetCatalogTable(w http.ResponseWriter, r *http.Request) {
	table, err := c.api.GetCatalogTable(r.Context(), chi.URLParam(r, "name"))
	renderResult(w, r, "获取治理表详情", table, err)
}
