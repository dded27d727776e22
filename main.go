package main

import (
	"context"
	"datamesh-service/api"
	ratelimit "datamesh-service/api/middleware"
	_ "datamesh-service/docs"
	"datamesh-service/logger"
	"datamesh-service/service"
	"datamesh-service/service/config"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	daprd "github.com/dapr/go-sdk/service/http"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title 数据网格仪表板模拟服务 API
// @version 1.0
// @description 数据网格仪表板后台模拟服务，提供仪表板、数据目录、血缘、质量、平台集成与实时推送接口
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		return err
	}
	log := logger.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := service.NewContainer(ctx, cfg, log, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	defer container.Close()

	var limiter *ratelimit.RateLimiter
	if cfg.RateLimit > 0 {
		limiter = ratelimit.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
		defer limiter.Stop()
	}

	mux := chi.NewRouter()

	// 如果有BASE_CONTEXT，则在该路径下挂载所有路由
	if cfg.BaseContext != "" {
		mux.Route(cfg.BaseContext, func(r chi.Router) {
			// 创建子路由器并初始化路由
			subMux := r.(*chi.Mux)
			api.InitRoute(subMux, container, limiter)
			r.Handle("/metrics", promhttp.Handler())
			r.Handle("/swagger*", httpSwagger.WrapHandler)
		})
	} else {
		api.InitRoute(mux, container, limiter)
		mux.Handle("/metrics", promhttp.Handler())
		mux.Handle("/swagger*", httpSwagger.WrapHandler)
	}

	s := daprd.NewServiceWithMux(cfg.Addr(), mux)

	errCh := make(chan error, 1)
	go func() {
		log.Info("服务启动", "addr", cfg.Addr(), "base_context", cfg.BaseContext)
		errCh <- s.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		log.Info("收到退出信号，开始关闭")
	}

	if err := s.GracefulStop(); err != nil {
		return fmt.Errorf("关闭HTTP服务失败: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
