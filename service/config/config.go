/*
 * @module service/config/config
 * @description 服务配置：命令行参数、DATAMESH_ 环境变量、可选的纯文本配置文件
 * @architecture 启动时一次性加载
 * @documentReference DESIGN.md
 * @stateFlow 默认值 -> 配置文件 -> 环境变量 -> 命令行 -> 兼容旧环境变量 -> 校验
 * @rules LISTEN_PORT / BASE_CONTEXT 仍然有效，且只在未显式配置时生效
 * @dependencies github.com/peterbourgon/ff/v3, github.com/spf13/cast, github.com/go-playground/validator/v10
 * @refs main.go, service/init.go
 */

package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/peterbourgon/ff/v3"
	"github.com/spf13/cast"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "DATAMESH"

// Config 服务配置
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	BaseContext string `validate:"omitempty,startswith=/"`
	LogLevel    string `validate:"oneof=debug info warn error"`

	Seed           uint64
	LatencyScale   float64       `validate:"min=0"`
	UpdateInterval time.Duration `validate:"min=1ms"`
	TrendWindow    int           `validate:"min=1,max=365"`

	RateLimit float64 `validate:"min=0"` // 每客户端每秒请求数，0 表示不限流
	RateBurst int     `validate:"min=0"`

	Relay RelayConfig
}

// RelayConfig 遥测转发配置，没有任何输出时不启动
type RelayConfig struct {
	Spec string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisChannel  string
	RedisTTL      time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	MQTTBroker   string
	MQTTClientID string
	MQTTTopic    string
	MQTTQoS      int `validate:"min=0,max=2"`

	// LockTTL 大于0且配置了Redis时，多副本之间用Redis锁互斥转发
	LockTTL time.Duration `validate:"min=0"`
}

// Enabled 是否配置了至少一个输出
func (r RelayConfig) Enabled() bool {
	return r.RedisAddr != "" || len(r.KafkaBrokers) > 0 || r.MQTTBroker != ""
}

// Load 解析配置。args 不含程序名。
func Load(name string, args []string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	cfg := &Config{}
	fs.IntVar(&cfg.Port, "port", 80, "HTTP listen port")
	fs.StringVar(&cfg.BaseContext, "base-context", "", "path prefix for all routes")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed, 0 picks a random one")
	fs.Float64Var(&cfg.LatencyScale, "latency-scale", 1, "multiplier for simulated latency, 0 disables it")
	fs.DurationVar(&cfg.UpdateInterval, "update-interval", 5*time.Second, "subscription push interval")
	fs.IntVar(&cfg.TrendWindow, "trend-window", 7, "default trend window in days")
	fs.Float64Var(&cfg.RateLimit, "rate-limit", 20, "requests per second per client, 0 disables limiting")
	fs.IntVar(&cfg.RateBurst, "rate-burst", 40, "request burst per client")

	fs.StringVar(&cfg.Relay.Spec, "relay-spec", "@every 5s", "cron spec of the telemetry relay")
	fs.StringVar(&cfg.Relay.RedisAddr, "relay-redis-addr", "", "redis address for the relay")
	fs.StringVar(&cfg.Relay.RedisPassword, "relay-redis-password", "", "redis password")
	fs.IntVar(&cfg.Relay.RedisDB, "relay-redis-db", 0, "redis database")
	fs.StringVar(&cfg.Relay.RedisChannel, "relay-redis-channel", "datamesh.updates", "redis pub/sub channel")
	fs.DurationVar(&cfg.Relay.RedisTTL, "relay-redis-ttl", time.Minute, "ttl of <channel>:latest, 0 skips it")
	kafkaBrokers := fs.String("relay-kafka-brokers", "", "comma separated kafka brokers")
	fs.StringVar(&cfg.Relay.KafkaTopic, "relay-kafka-topic", "datamesh-updates", "kafka topic")
	fs.StringVar(&cfg.Relay.MQTTBroker, "relay-mqtt-broker", "", "mqtt broker url, e.g. tcp://localhost:1883")
	fs.StringVar(&cfg.Relay.MQTTClientID, "relay-mqtt-client-id", "datamesh-service", "mqtt client id")
	fs.StringVar(&cfg.Relay.MQTTTopic, "relay-mqtt-topic", "datamesh/updates", "mqtt topic")
	fs.IntVar(&cfg.Relay.MQTTQoS, "relay-mqtt-qos", 0, "mqtt qos")
	fs.DurationVar(&cfg.Relay.LockTTL, "relay-lock-ttl", 0, "redis lock ttl shared by replicas, 0 disables locking")

	fs.String("config", "", "config file path")

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix(EnvPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	cfg.Relay.KafkaBrokers = splitList(*kafkaBrokers)

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if err := applyLegacyEnv(cfg, explicit); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("配置校验失败: %w", err)
	}
	return cfg, nil
}

// applyLegacyEnv 兼容 LISTEN_PORT 和 BASE_CONTEXT
func applyLegacyEnv(cfg *Config, explicit map[string]bool) error {
	if val := os.Getenv("LISTEN_PORT"); val != "" && !explicit["port"] {
		port, err := cast.ToIntE(val)
		if err != nil {
			return fmt.Errorf("LISTEN_PORT 无效: %w", err)
		}
		cfg.Port = port
	}
	if val := os.Getenv("BASE_CONTEXT"); val != "" && !explicit["base-context"] {
		cfg.BaseContext = cast.ToString(val)
	}
	cfg.BaseContext = strings.TrimSuffix(cfg.BaseContext, "/")
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Addr 监听地址
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
