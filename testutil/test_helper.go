/*
 * @module testutil/test_helper
 * @description 测试工具和辅助函数
 * @architecture 测试基础设施 - 提供固定种子的门面、测试配置与HTTP断言工具
 * @documentReference DESIGN.md
 * @stateFlow 测试环境初始化 -> 测试执行 -> t.Cleanup 释放订阅
 * @rules 测试中的门面必须关闭模拟延迟并使用固定时钟，输出可复现
 * @dependencies testify, datamesh-service/service/mockapi
 * @refs service/mockapi, api/controllers
 */

package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datamesh-service/service/config"
	"datamesh-service/service/generator"
	"datamesh-service/service/mockapi"
)

// DefaultSeed 测试使用的随机种子
const DefaultSeed uint64 = 42

// FixedNow 测试时钟
var FixedNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

// NewGenerator 创建固定种子、固定时钟的生成器
func NewGenerator() *generator.Generator {
	return generator.New(
		generator.WithSeed(DefaultSeed),
		generator.WithClock(func() time.Time { return FixedNow }),
	)
}

// NewMockAPI 创建无延迟的门面，测试结束时自动关闭
func NewMockAPI(t testing.TB, opts ...mockapi.Option) *mockapi.MockAPI {
	t.Helper()

	opts = append([]mockapi.Option{mockapi.WithNoLatency()}, opts...)
	api, err := mockapi.New(NewGenerator(), opts...)
	require.NoError(t, err)
	t.Cleanup(api.Close)
	return api
}

// DefaultTestConfig 默认测试配置：无延迟、无限流、不启用转发
func DefaultTestConfig() *config.Config {
	return &config.Config{
		Port:           8080,
		LogLevel:       "error",
		Seed:           DefaultSeed,
		LatencyScale:   0,
		UpdateInterval: 20 * time.Millisecond,
		TrendWindow:    generator.DefaultTrendWindow,
		Relay: config.RelayConfig{
			Spec: "@every 1s",
		},
	}
}

// HTTPTestHelper HTTP测试辅助工具
type HTTPTestHelper struct{}

// NewHTTPTestHelper 创建HTTP测试辅助工具
func NewHTTPTestHelper() *HTTPTestHelper {
	return &HTTPTestHelper{}
}

// CreateJSONRequest 创建JSON请求
func (h *HTTPTestHelper) CreateJSONRequest(method, url string, body interface{}) (*http.Request, error) {
	var reqBody io.Reader

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// AssertJSONResponse 断言JSON响应
func (h *HTTPTestHelper) AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedBody interface{}) {
	assert.Equal(t, expectedStatus, w.Code)

	if expectedBody != nil {
		var actualBody interface{}
		err := json.Unmarshal(w.Body.Bytes(), &actualBody)
		assert.NoError(t, err)

		expectedJSON, _ := json.Marshal(expectedBody)
		actualJSON, _ := json.Marshal(actualBody)

		assert.JSONEq(t, string(expectedJSON), string(actualJSON))
	}
}

// envelope 与 controllers.APIResponse 相同的外层结构，data 延迟解析
type envelope struct {
	Status int             `json:"status"`
	Msg    string          `json:"msg"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

// DecodeData 断言响应状态码，并把 data 字段解析到 out。返回业务状态码。
func (h *HTTPTestHelper) DecodeData(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, out interface{}) int {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if out != nil {
		require.NotEmpty(t, env.Data, "响应缺少data字段")
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env.Status
}
