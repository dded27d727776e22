/*
 * @module service/distributed_lock/redis_lock
 * @description Redis分布式锁，多副本部署时保证每个转发窗口只有一个实例发布遥测
 * @architecture 工具层 - 提供分布式锁能力
 * @documentReference DESIGN.md
 * @stateFlow 获取锁 -> 发布 -> 锁自动过期 / 停止时主动释放
 * @rules 使用Redis SET NX实现；释放锁时校验持有者，只删除自己持有的锁
 * @dependencies github.com/go-redis/redis/v8
 * @refs service/scheduler/scheduler_service.go, service/init.go
 */

package distributed_lock

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultPrefix 锁键前缀
const DefaultPrefix = "datamesh:lock:"

// unlockScript 只有锁的持有者才能删除锁
const unlockScript = `
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`

// LockConfig 锁配置
type LockConfig struct {
	Address  string
	Password string
	Database int
	Prefix   string
}

// lockClient *redis.Client 的子集
type lockClient interface {
	Ping(ctx context.Context) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

// RedisLock Redis分布式锁实现
type RedisLock struct {
	client     lockClient
	prefix     string
	instanceID string // 锁的持有者标识
	logger     *slog.Logger
}

// NewRedisLock 创建Redis分布式锁并校验连接
func NewRedisLock(ctx context.Context, config LockConfig, logger *slog.Logger) (*RedisLock, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         config.Address,
		Password:     config.Password,
		DB:           config.Database,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("Redis连接失败: %w", err)
	}

	// 实例ID使用主机名+进程ID
	hostname, _ := os.Hostname()
	l := newRedisLock(client, config.Prefix, fmt.Sprintf("%s:%d", hostname, os.Getpid()), logger)
	l.logger.Info("Redis分布式锁初始化成功", "instance_id", l.instanceID, "redis_addr", config.Address)
	return l, nil
}

func newRedisLock(client lockClient, prefix, instanceID string, logger *slog.Logger) *RedisLock {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisLock{
		client:     client,
		prefix:     prefix,
		instanceID: instanceID,
		logger:     logger,
	}
}

// InstanceID 锁持有者标识
func (r *RedisLock) InstanceID() string {
	return r.instanceID
}

// TryLock 尝试获取锁，key 已存在时返回 false
func (r *RedisLock) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.prefix+key, r.instanceID, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("获取锁失败: %w", err)
	}
	if ok {
		r.logger.Debug("分布式锁: 成功获取锁", "key", key, "ttl", ttl, "instance", r.instanceID)
	}
	return ok, nil
}

// Unlock 释放锁，锁不存在或被其他实例持有时不报错
func (r *RedisLock) Unlock(ctx context.Context, key string) error {
	result, err := r.client.Eval(ctx, unlockScript, []string{r.prefix + key}, r.instanceID).Int64()
	if err != nil {
		return fmt.Errorf("释放锁失败: %w", err)
	}
	if result == 1 {
		r.logger.Debug("分布式锁: 成功释放锁", "key", key, "instance", r.instanceID)
	} else {
		r.logger.Debug("分布式锁: 锁不存在或已被其他实例持有", "key", key, "instance", r.instanceID)
	}
	return nil
}

// IsLocked 检查锁是否存在
func (r *RedisLock) IsLocked(ctx context.Context, key string) (bool, error) {
	exists, err := r.client.Exists(ctx, r.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("检查锁状态失败: %w", err)
	}
	return exists > 0, nil
}

// Close 关闭Redis客户端
func (r *RedisLock) Close() error {
	return r.client.Close()
}
