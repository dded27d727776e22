package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datamesh-service/service/config"
	"datamesh-service/service/models"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:           8080,
		LogLevel:       "error",
		Seed:           11,
		LatencyScale:   0,
		UpdateInterval: 10 * time.Millisecond,
		TrendWindow:    5,
		Relay:          config.RelayConfig{Spec: "@every 1s"},
	}
}

func TestNewContainer(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewContainer(context.Background(), testConfig(), nil, reg)
	require.NoError(t, err)
	defer c.Close()

	trend, err := c.MockAPI.GetTrendData(context.Background())
	require.NoError(t, err)
	assert.Len(t, trend, 5, "趋势窗口来自配置")

	_, err = c.MockAPI.GetQualityMetrics(context.Background())
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families, "门面调用应记录指标")
}

func TestNewContainer_SeedIsReproducible(t *testing.T) {
	a, err := NewContainer(context.Background(), testConfig(), nil, nil)
	require.NoError(t, err)
	defer a.Close()
	b, err := NewContainer(context.Background(), testConfig(), nil, nil)
	require.NoError(t, err)
	defer b.Close()

	qa, err := a.MockAPI.GetQualityMetrics(context.Background())
	require.NoError(t, err)
	qb, err := b.MockAPI.GetQualityMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, qa, qb)
}

func TestContainer_ReadinessCounts(t *testing.T) {
	c, err := NewContainer(context.Background(), testConfig(), nil, nil)
	require.NoError(t, err)
	defer c.Close()

	client, err := c.EventService.AddSSEConnection("ops", "")
	require.NoError(t, err)
	assert.Equal(t, 1, c.ConnectionCount())
	assert.Equal(t, 1, c.ActiveSubscriptions())

	select {
	case evt := <-client.Channel:
		assert.Contains(t, []string{models.EventTypeUpdate, models.EventTypeAlert}, evt.EventType)
	case <-time.After(time.Second):
		t.Fatal("未收到实时更新")
	}

	c.EventService.RemoveSSEConnection("ops", client.ID)
	assert.Equal(t, 0, c.ConnectionCount())
	assert.Equal(t, 0, c.ActiveSubscriptions())
}

func TestBuildPublishers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// 主题缺失的 Kafka 输出被跳过
	pubs := buildPublishers(context.Background(), config.RelayConfig{
		KafkaBrokers: []string{"127.0.0.1:1"},
	}, logger)
	assert.Empty(t, pubs)

	// Kafka 写入器惰性连接，配置完整即可创建
	pubs = buildPublishers(context.Background(), config.RelayConfig{
		KafkaBrokers: []string{"127.0.0.1:1"},
		KafkaTopic:   "datamesh.updates",
	}, logger)
	require.Len(t, pubs, 1)
	assert.Equal(t, "kafka", pubs[0].Name())
	assert.NoError(t, pubs[0].Close())
}
