package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"teslastats/config"
	"teslastats/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		JWT:    config.JWTConfig{Secret: "router-secret", ExpireTime: time.Hour},
		Import: config.ImportConfig{RatePerMinute: 10, MaxUploadMB: 1},
	}
	middleware.InitJWT(cfg)
	return SetupRouter(cfg)
}

func TestHealth(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/v1/deliveries", nil))

	assert.Equal(t, 204, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestWriteRoutesRequireToken(t *testing.T) {
	r := testRouter()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/deliveries"},
		{http.MethodPut, "/api/v1/deliveries/1"},
		{http.MethodDelete, "/api/v1/deliveries/1"},
		{http.MethodPost, "/api/v1/imports"},
		{http.MethodGet, "/api/v1/imports"},
		{http.MethodGet, "/api/v1/auth/profile"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(`{}`)))
		assert.Equal(t, 401, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestSwaggerDoc(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/deliveries")
}

func TestSwaggerDocCoversRoutes(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, 200, w.Code)

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	// 每个已注册的 API 路由都要出现在文档中
	param := regexp.MustCompile(`:(\w+)`)
	for _, route := range r.Routes() {
		if !strings.HasPrefix(route.Path, "/api/v1") {
			continue
		}
		path := param.ReplaceAllString(route.Path, "{$1}")
		methods, ok := doc.Paths[path]
		if assert.True(t, ok, "文档缺少路径 %s", path) {
			assert.Contains(t, methods, strings.ToLower(route.Method), "文档缺少 %s %s", route.Method, path)
		}
	}

	// 引用的结构都要有定义
	refs := regexp.MustCompile(`#/definitions/([\w.]+)`).FindAllStringSubmatch(w.Body.String(), -1)
	require.NotEmpty(t, refs)
	for _, m := range refs {
		assert.Contains(t, doc.Definitions, m[1])
	}
	for _, name := range []string{"service.ImportReport", "analysis.CorrMatrix", "analysis.ColumnStats", "models.DeliveryRecord", "models.ImportBatch"} {
		assert.Contains(t, doc.Definitions, name)
	}
}

func TestValidateIsRateLimited(t *testing.T) {
	r := testRouter()

	// 前 10 次未携带文件返回 400，之后被限流
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewBufferString(`{}`)))
		assert.Equal(t, 400, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewBufferString(`{}`)))
	assert.Equal(t, 429, w.Code)
	assert.Contains(t, w.Body.String(), "校验过于频繁")
}
