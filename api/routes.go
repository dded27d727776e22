/*
 * @module api/routes
 * @description API路由配置模块，负责初始化和配置所有HTTP路由
 * @architecture RESTful API架构
 * @documentReference DESIGN.md
 * @stateFlow 无状态HTTP请求处理
 * @rules 业务接口统一挂在 /api/v1 下并按客户端限流；健康检查与SSE不限流
 * @dependencies github.com/go-chi/chi/v5, github.com/go-chi/cors, github.com/go-chi/render
 * @refs api/controllers
 */

package api

import (
	"datamesh-service/api/controllers"
	ratelimit "datamesh-service/api/middleware"
	"datamesh-service/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// APIPrefix 业务接口前缀
const APIPrefix = "/api/v1"

// InitRoute 初始化所有API路由，limiter 为空时不限流
func InitRoute(r *chi.Mux, c *service.Container, limiter *ratelimit.RateLimiter) {
	// 基础中间件
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// CORS配置
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Retry-After", "X-RateLimit-Limit"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 健康检查
	healthController := controllers.NewHealthController(c)
	r.Get("/health", healthController.Health)
	r.Get("/ready", healthController.Ready)

	// SSE事件订阅
	eventController := controllers.NewEventController(c.EventService)
	r.Get("/sse/{client_name}", eventController.HandleSSE)

	// 事件管理
	r.Route("/events", func(r chi.Router) {
		r.Post("/send", eventController.SendEvent)
		r.Post("/broadcast", eventController.BroadcastEvent)
	})

	r.Route(APIPrefix, func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		// 仪表板
		r.Route("/dashboard", func(r chi.Router) {
			dashboardController := controllers.NewDashboardController(c.MockAPI)
			r.Get("/metrics", dashboardController.GetMetrics)
			r.Get("/trends", dashboardController.GetTrends)
			r.Get("/overview", dashboardController.GetOverview)
		})

		// 数据目录
		r.Route("/catalog", func(r chi.Router) {
			catalogController := controllers.NewCatalogController(c.MockAPI)
			r.Get("/assets", catalogController.GetAssets)
			r.Get("/assets/{id}", catalogController.GetAsset)
		})

		// 数据血缘
		r.Route("/lineage", func(r chi.Router) {
			lineageController := controllers.NewLineageController(c.MockAPI)
			r.Get("/", lineageController.GetLineage)
			r.Get("/nodes/{id}", lineageController.GetNode)
			r.Get("/nodes/{id}/impact", lineageController.GetImpact)
		})

		// 数据质量
		r.Route("/quality", func(r chi.Router) {
			qualityController := controllers.NewQualityController(c.MockAPI)
			r.Get("/metrics", qualityController.GetMetrics)
			r.Get("/trends", qualityController.GetTrends)
			r.Get("/sources", qualityController.GetSources)
			r.Get("/alerts", qualityController.GetAlerts)
		})

		// 平台集成
		r.Route("/integrations", func(r chi.Router) {
			integrationController := controllers.NewIntegrationController(c.MockAPI)
			r.Get("/sql", integrationController.GetSQLInsights)
			r.Get("/workflows", integrationController.GetWorkflows)
			r.Get("/workflows/jobs/{id}", integrationController.GetWorkflowJob)
			r.Get("/lake", integrationController.GetLakeTables)
			r.Get("/mlflow", integrationController.GetModelRegistry)
			r.Get("/catalog", integrationController.GetGovernanceCatalog)
			r.Get("/catalog/tables/{name}", integrationController.GetCatalogTable)
		})
	})
}
