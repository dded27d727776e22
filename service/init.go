/*
 * @module service/init
 * @description 服务初始化模块，按配置组装生成器、模拟API门面、事件中心、遥测转发与指标
 * @architecture 分层架构 - 服务层，依赖显式注入，不使用全局单例
 * @documentReference DESIGN.md
 * @stateFlow 配置 -> 生成器 -> 门面 -> 事件中心 -> 转发输出 -> 启动转发
 * @rules 遥测输出连接失败时跳过该输出，不影响服务启动
 * @dependencies github.com/prometheus/client_golang
 * @refs main.go, api/routes.go
 */

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"datamesh-service/client/connectors"
	"datamesh-service/service/config"
	"datamesh-service/service/distributed_lock"
	"datamesh-service/service/event"
	"datamesh-service/service/generator"
	"datamesh-service/service/mockapi"
	"datamesh-service/service/monitoring"
	"datamesh-service/service/scheduler"
)

// Container 服务依赖容器
type Container struct {
	Config       *config.Config
	Logger       *slog.Logger
	Metrics      *monitoring.Metrics
	Generator    *generator.Generator
	MockAPI      *mockapi.MockAPI
	EventService *event.EventService
	Relay        *scheduler.RelayService

	closers []func() error
}

// NewContainer 组装所有服务，reg 为 nil 时不注册指标
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	metrics := monitoring.NewMetrics()
	if reg != nil {
		if err := metrics.Register(reg); err != nil {
			return nil, fmt.Errorf("注册指标失败: %w", err)
		}
	}

	var genOpts []generator.Option
	if cfg.Seed != 0 {
		genOpts = append(genOpts, generator.WithSeed(cfg.Seed))
	}
	gen := generator.New(genOpts...)

	api, err := mockapi.New(gen,
		mockapi.WithLatencyScale(cfg.LatencyScale),
		mockapi.WithUpdateInterval(cfg.UpdateInterval),
		mockapi.WithTrendWindow(cfg.TrendWindow),
		mockapi.WithLogger(logger.With("component", "mockapi")),
		mockapi.WithRecorder(metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("初始化模拟API失败: %w", err)
	}

	var closers []func() error
	events := event.NewEventService(api, logger.With("component", "event"), metrics)

	relay := scheduler.NewRelayService(api, buildPublishers(ctx, cfg.Relay, logger), cfg.Relay.Spec,
		logger.With("component", "relay"))
	relay.SetObserver(metrics)
	if lock := buildRelayLock(ctx, cfg.Relay, logger); lock != nil {
		relay.SetLock(lock, cfg.Relay.LockTTL)
		closers = append(closers, lock.Close)
	}
	if err := relay.Start(); err != nil {
		for _, closeFn := range closers {
			_ = closeFn()
		}
		events.Close()
		api.Close()
		return nil, fmt.Errorf("启动遥测转发失败: %w", err)
	}

	logger.Info("服务初始化完成", "seed", cfg.Seed, "relay_enabled", cfg.Relay.Enabled())
	return &Container{
		Config:       cfg,
		Logger:       logger,
		Metrics:      metrics,
		Generator:    gen,
		MockAPI:      api,
		EventService: events,
		Relay:        relay,
		closers:      closers,
	}, nil
}

// buildRelayLock 配置了Redis和锁TTL时创建转发锁，连接失败时不加锁
func buildRelayLock(ctx context.Context, cfg config.RelayConfig, logger *slog.Logger) *distributed_lock.RedisLock {
	if cfg.LockTTL <= 0 || cfg.RedisAddr == "" {
		return nil
	}
	lock, err := distributed_lock.NewRedisLock(ctx, distributed_lock.LockConfig{
		Address:  cfg.RedisAddr,
		Password: cfg.RedisPassword,
		Database: cfg.RedisDB,
	}, logger.With("component", "lock"))
	if err != nil {
		logger.Error("转发锁不可用，各实例将独立转发", "error", err)
		return nil
	}
	return lock
}

// buildPublishers 按配置创建遥测输出
func buildPublishers(ctx context.Context, cfg config.RelayConfig, logger *slog.Logger) []scheduler.Publisher {
	var pubs []scheduler.Publisher
	log := logger.With("component", "connectors")

	if cfg.RedisAddr != "" {
		p, err := connectors.NewRedisPublisher(ctx, connectors.RedisConfig{
			Address:   cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			Database:  cfg.RedisDB,
			Channel:   cfg.RedisChannel,
			LatestTTL: cfg.RedisTTL,
		}, log)
		if err != nil {
			log.Error("Redis输出不可用，已跳过", "error", err)
		} else {
			pubs = append(pubs, p)
		}
	}

	if len(cfg.KafkaBrokers) > 0 {
		p, err := connectors.NewKafkaPublisher(connectors.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		}, log)
		if err != nil {
			log.Error("Kafka输出不可用，已跳过", "error", err)
		} else {
			pubs = append(pubs, p)
		}
	}

	if cfg.MQTTBroker != "" {
		p, err := connectors.NewMQTTPublisher(connectors.MQTTConfig{
			Broker:   cfg.MQTTBroker,
			ClientID: cfg.MQTTClientID,
			Topic:    cfg.MQTTTopic,
			QoS:      byte(cfg.MQTTQoS),
		}, log)
		if err != nil {
			log.Error("MQTT输出不可用，已跳过", "error", err)
		} else {
			pubs = append(pubs, p)
		}
	}
	return pubs
}

// Close 按依赖反序释放资源
func (c *Container) Close() {
	c.Relay.Stop()
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.Logger.Warn("释放资源失败", "error", err)
		}
	}
	c.EventService.Close()
	c.MockAPI.Close()
	c.Logger.Info("服务资源已释放")
}

// ActiveSubscriptions 门面当前的活跃订阅数
func (c *Container) ActiveSubscriptions() int {
	return c.MockAPI.ActiveSubscriptions()
}

// ConnectionCount 当前SSE连接数
func (c *Container) ConnectionCount() int {
	return c.EventService.ConnectionCount()
}
