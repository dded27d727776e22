/*
 * @module client/connectors/kafka_connector
 * @description Kafka 遥测输出：把每次推送写入配置的主题
 * @architecture 适配器模式 - 封装第三方Kafka客户端
 * @documentReference DESIGN.md
 * @stateFlow 创建Writer -> 写消息 -> 关闭
 * @rules 同步写入，失败返回错误
 * @dependencies github.com/segmentio/kafka-go
 * @refs service/scheduler/scheduler_service.go
 */

package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaConfig Kafka输出配置
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher Kafka发布器
type KafkaPublisher struct {
	writer messageWriter
	config KafkaConfig
	now    func() time.Time
}

// NewKafkaPublisher 创建Kafka发布器。Writer 在首次写入时才连接broker。
func NewKafkaPublisher(config KafkaConfig, logger *slog.Logger) (*KafkaPublisher, error) {
	if len(config.Brokers) == 0 {
		return nil, fmt.Errorf("Kafka broker 列表为空")
	}
	if config.Topic == "" {
		return nil, fmt.Errorf("Kafka 主题为空")
	}
	if logger == nil {
		logger = slog.Default()
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(config.Brokers...),
		Topic:                  config.Topic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	if config.BatchTimeout > 0 {
		writer.BatchTimeout = config.BatchTimeout
	}

	logger.Info("Kafka输出已创建", "brokers", config.Brokers, "topic", config.Topic)
	return newKafkaPublisher(writer, config), nil
}

func newKafkaPublisher(writer messageWriter, config KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, config: config, now: time.Now}
}

// Name 输出名
func (p *KafkaPublisher) Name() string {
	return "kafka"
}

// Publish 写入一条消息，key 为毫秒时间戳
func (p *KafkaPublisher) Publish(ctx context.Context, payload []byte) error {
	now := p.now()
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(now.UnixMilli(), 10)),
		Value: payload,
		Time:  now,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("写入Kafka主题 %s 失败: %w", p.config.Topic, err)
	}
	return nil
}

// Close 关闭Writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
