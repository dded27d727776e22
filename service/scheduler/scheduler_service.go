/*
 * @module service/scheduler/scheduler_service
 * @description 遥测转发调度器，按 cron 表达式生成实时更新并发布到各外部输出
 * @architecture 基于 robfig/cron 的调度器模式
 * @documentReference DESIGN.md
 * @stateFlow Start -> 定时触发 -> 生成更新 -> JSON编码 -> 逐个输出发布 -> Stop
 * @rules 单个输出失败只记录日志和指标，不影响其他输出；与门面订阅相互独立
 * @dependencies github.com/robfig/cron/v3
 * @refs client/connectors, service/mockapi/mock_api.go
 */

package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"datamesh-service/service/models"
)

// DefaultRelaySpec 默认每5秒转发一次
const DefaultRelaySpec = "@every 5s"

// publishTimeout 每次转发的总超时
const publishTimeout = 10 * time.Second

// UpdateSource 更新来源，*mockapi.MockAPI 实现此接口
type UpdateSource interface {
	NextUpdate() models.Update
}

// Publisher 外部输出
type Publisher interface {
	Name() string
	Publish(ctx context.Context, payload []byte) error
	Close() error
}

// Locker 多副本部署时的转发互斥锁
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// relayLockKey 转发锁的键
const relayLockKey = "relay"

// PublishObserver 发布结果观测
type PublishObserver interface {
	ObservePublish(sink string, err error)
}

type nopObserver struct{}

func (nopObserver) ObservePublish(string, error) {}

// RelayService 遥测转发服务
type RelayService struct {
	source     UpdateSource
	publishers []Publisher
	spec       string
	retry      RetryPolicy
	logger     *slog.Logger
	observer   PublishObserver
	lock       Locker
	lockTTL    time.Duration

	cron    *cron.Cron
	entryID cron.EntryID
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	running bool
}

// NewRelayService 创建转发服务，spec 为空时使用默认间隔
func NewRelayService(source UpdateSource, publishers []Publisher, spec string, logger *slog.Logger) *RelayService {
	if spec == "" {
		spec = DefaultRelaySpec
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &RelayService{
		source:     source,
		publishers: publishers,
		spec:       spec,
		retry:      DefaultRetryPolicy(),
		logger:     logger,
		observer:   nopObserver{},
		cron:       cron.New(cron.WithSeconds()),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SetObserver 设置发布观测
func (s *RelayService) SetObserver(o PublishObserver) {
	if o != nil {
		s.observer = o
	}
}

// SetLock 设置转发锁。持有锁的实例在 ttl 内独占发布，ttl 应略小于转发间隔。
func (s *RelayService) SetLock(l Locker, ttl time.Duration) {
	s.lock = l
	s.lockTTL = ttl
}

// SetRetryPolicy 设置重试策略
func (s *RelayService) SetRetryPolicy(p RetryPolicy) {
	s.retry = p
}

// Start 启动调度
func (s *RelayService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if len(s.publishers) == 0 {
		s.logger.Info("未配置遥测输出，转发服务不启动")
		return nil
	}

	id, err := s.cron.AddFunc(s.spec, s.tick)
	if err != nil {
		return fmt.Errorf("添加转发任务失败 [%s]: %w", s.spec, err)
	}
	s.entryID = id
	s.cron.Start()
	s.running = true

	names := make([]string, 0, len(s.publishers))
	for _, p := range s.publishers {
		names = append(names, p.Name())
	}
	s.logger.Info("遥测转发服务已启动", "spec", s.spec, "sinks", names)
	return nil
}

// Stop 停止调度，等待正在执行的转发结束后关闭所有输出
func (s *RelayService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancel()
	if s.running {
		<-s.cron.Stop().Done()
		s.running = false
	}
	if s.lock != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := s.lock.Unlock(ctx, relayLockKey); err != nil {
			s.logger.Warn("释放转发锁失败", "error", err)
		}
		cancel()
	}
	for _, p := range s.publishers {
		if err := p.Close(); err != nil {
			s.logger.Warn("关闭遥测输出失败", "sink", p.Name(), "error", err)
		}
	}
	s.publishers = nil
	s.logger.Info("遥测转发服务已停止")
}

// tick 定时任务入口，配置了锁时只有持锁实例发布
func (s *RelayService) tick() {
	if s.lock != nil {
		ok, err := s.lock.TryLock(s.ctx, relayLockKey, s.lockTTL)
		if err != nil {
			s.logger.Warn("获取转发锁失败，跳过本次转发", "error", err)
			return
		}
		if !ok {
			s.logger.Debug("转发锁由其他实例持有，跳过本次转发")
			return
		}
	}
	if err := s.PublishOnce(s.ctx); err != nil {
		s.logger.Warn("遥测转发部分失败", "error", err)
	}
}

// PublishOnce 生成一次更新并发布到所有输出，返回各输出错误的合并
func (s *RelayService) PublishOnce(ctx context.Context) error {
	update := s.source.NextUpdate()
	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("编码更新失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	var errs []error
	for _, p := range s.publishers {
		err := s.retry.Do(ctx, func(ctx context.Context) error {
			return p.Publish(ctx, payload)
		})
		s.observer.ObservePublish(p.Name(), err)
		if err != nil {
			s.logger.Warn("发布到遥测输出失败", "sink", p.Name(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
		}
	}
	return errors.Join(errs...)
}
