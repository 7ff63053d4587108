package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder_Build(t *testing.T) {
	builder := NewMetricsBuilder()
	server := gin.New()
	server.Use(builder.Build())
	server.POST("/discussion/load", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/discussion/load", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	cnt := testutil.ToFloat64(builder.total.WithLabelValues(http.MethodPost, "/discussion/load", "200"))
	assert.Equal(t, float64(1), cnt)

	// 没注册的路由也要计数，按原始路径归档
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	require.Equal(t, http.StatusNotFound, recorder.Code)

	cnt = testutil.ToFloat64(builder.total.WithLabelValues(http.MethodGet, "/nowhere", "404"))
	assert.Equal(t, float64(1), cnt)
}
