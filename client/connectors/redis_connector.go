/*
 * @module client/connectors/redis_connector
 * @description Redis 遥测输出：PUBLISH 到频道，同时把最新一条写入 <channel>:latest
 * @architecture 适配器模式 - 封装第三方Redis客户端
 * @documentReference DESIGN.md
 * @stateFlow 连接校验 -> 发布 -> 缓存最新值 -> 关闭
 * @rules 发布失败直接返回错误，由转发服务记录
 * @dependencies github.com/go-redis/redis/v8
 * @refs service/scheduler/scheduler_service.go
 */

package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisConfig Redis输出配置
type RedisConfig struct {
	Address   string
	Password  string
	Database  int
	Channel   string
	LatestTTL time.Duration // <channel>:latest 的过期时间，0 表示不写
}

// redisClient *redis.Client 的子集
type redisClient interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// RedisPublisher Redis发布器
type RedisPublisher struct {
	client redisClient
	config RedisConfig
	logger *slog.Logger
}

// NewRedisPublisher 创建并校验Redis连接
func NewRedisPublisher(ctx context.Context, config RedisConfig, logger *slog.Logger) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         config.Address,
		Password:     config.Password,
		DB:           config.Database,
		DialTimeout:  5 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	p := newRedisPublisher(client, config, logger)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("Redis连接失败: %w", err)
	}
	p.logger.Info("Redis输出已连接", "address", config.Address, "channel", config.Channel)
	return p, nil
}

func newRedisPublisher(client redisClient, config RedisConfig, logger *slog.Logger) *RedisPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisPublisher{client: client, config: config, logger: logger}
}

// Name 输出名
func (p *RedisPublisher) Name() string {
	return "redis"
}

// Publish 发布一条消息
func (p *RedisPublisher) Publish(ctx context.Context, payload []byte) error {
	if err := p.client.Publish(ctx, p.config.Channel, payload).Err(); err != nil {
		return fmt.Errorf("PUBLISH命令失败: %w", err)
	}
	if p.config.LatestTTL > 0 {
		key := p.config.Channel + ":latest"
		if err := p.client.Set(ctx, key, payload, p.config.LatestTTL).Err(); err != nil {
			return fmt.Errorf("SET命令失败 key=%s: %w", key, err)
		}
	}
	return nil
}

// Close 关闭连接
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
