/*
 * @module client/connectors/mqtt_connector
 * @description MQTT 遥测输出：把每次推送发布到配置的主题
 * @architecture 适配器模式 - 封装第三方MQTT客户端
 * @documentReference DESIGN.md
 * @stateFlow 连接broker -> 发布 -> 断开
 * @rules 发布等待确认，超时视为失败
 * @dependencies github.com/eclipse/paho.mqtt.golang
 * @refs service/scheduler/scheduler_service.go
 */

package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTConfig MQTT输出配置
type MQTTConfig struct {
	Broker         string
	ClientID       string
	Username       string
	Password       string
	Topic          string
	QoS            byte
	Retained       bool
	ConnectTimeout time.Duration
}

type mqttClient interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// MQTTPublisher MQTT发布器
type MQTTPublisher struct {
	client mqttClient
	config MQTTConfig
	logger *slog.Logger
}

// NewMQTTPublisher 连接broker并创建发布器
func NewMQTTPublisher(config MQTTConfig, logger *slog.Logger) (*MQTTPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if config.ConnectTimeout <= 0 {
		config.ConnectTimeout = 10 * time.Second
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(config.Broker)
	opts.SetClientID(config.ClientID)
	if config.Username != "" {
		opts.SetUsername(config.Username)
		opts.SetPassword(config.Password)
	}
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("MQTT连接断开", "broker", config.Broker, "error", err)
	})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(config.ConnectTimeout) {
		return nil, fmt.Errorf("MQTT连接超时: %s", config.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("MQTT连接失败: %w", err)
	}

	logger.Info("MQTT输出已连接", "broker", config.Broker, "topic", config.Topic)
	return newMQTTPublisher(client, config, logger), nil
}

func newMQTTPublisher(client mqttClient, config MQTTConfig, logger *slog.Logger) *MQTTPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &MQTTPublisher{client: client, config: config, logger: logger}
}

// Name 输出名
func (p *MQTTPublisher) Name() string {
	return "mqtt"
}

// Publish 发布一条消息，等待确认或 ctx 结束
func (p *MQTTPublisher) Publish(ctx context.Context, payload []byte) error {
	token := p.client.Publish(p.config.Topic, p.config.QoS, p.config.Retained, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return fmt.Errorf("发布到MQTT主题 %s 超时: %w", p.config.Topic, ctx.Err())
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("发布到MQTT主题 %s 失败: %w", p.config.Topic, err)
	}
	return nil
}

// Close 断开连接，等待250ms让消息发送完成
func (p *MQTTPublisher) Close() error {
	p.client.Disconnect(250)
	return nil
}
