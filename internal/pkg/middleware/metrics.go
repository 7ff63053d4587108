package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 按 method/path/status_code 统计每个接口的访问量和响应时间
type MetricsBuilder struct {
	duration *prometheus.SummaryVec
	total    *prometheus.CounterVec
}

func NewMetricsBuilder() *MetricsBuilder {
	labels := []string{"method", "path", "status_code"}
	return &MetricsBuilder{
		duration: promauto.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.005,
					0.99: 0.001,
				},
			},
			labels,
		),
		total: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			labels,
		),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		// 没匹配上路由就取不到模板路径，退回原始路径
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		method := ctx.Request.Method
		statusCode := strconv.Itoa(ctx.Writer.Status())
		b.duration.WithLabelValues(method, path, statusCode).
			Observe(time.Since(start).Seconds())
		b.total.WithLabelValues(method, path, statusCode).Inc()
	}
}
