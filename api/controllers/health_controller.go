/*
 * @module api/controllers/health_controller
 * @description 健康检查控制器，提供服务健康状态检查
 * @architecture MVC架构 - 控制器层
 * @documentReference DESIGN.md
 * @stateFlow HTTP请求处理流程
 * @rules 就绪检查同时报告活跃订阅与SSE连接数量
 * @dependencies net/http
 * @refs api/routes.go
 */

package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// ServiceName 服务名
const ServiceName = "datamesh-service"

// Version 服务版本
const Version = "1.0.0"

// ReadinessSource 就绪检查需要的运行状态
type ReadinessSource interface {
	ActiveSubscriptions() int
	ConnectionCount() int
}

// HealthController 健康检查控制器
type HealthController struct {
	source ReadinessSource
}

// NewHealthController 创建健康检查控制器实例，source 可为空
func NewHealthController(source ReadinessSource) *HealthController {
	return &HealthController{source: source}
}

// HealthResponse 健康检查响应结构
type HealthResponse struct {
	Status              string    `json:"status" example:"ok"`
	Timestamp           time.Time `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Version             string    `json:"version" example:"1.0.0"`
	Service             string    `json:"service" example:"datamesh-service"`
	ActiveSubscriptions *int      `json:"activeSubscriptions,omitempty"`
	SSEConnections      *int      `json:"sseConnections,omitempty"`
}

// Health 健康检查
// @Summary 健康检查
// @Description 检查服务健康状态
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   Version,
		Service:   ServiceName,
	})
}

// Ready 就绪检查
// @Summary 就绪检查
// @Description 检查服务是否就绪，附带订阅与连接数量
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /ready [get]
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   Version,
		Service:   ServiceName,
	}
	if c.source != nil {
		subs, conns := c.source.ActiveSubscriptions(), c.source.ConnectionCount()
		response.ActiveSubscriptions = &subs
		response.SSEConnections = &conns
	}

	render.JSON(w, r, response)
}
