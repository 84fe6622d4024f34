package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/careconnect/careconnect-api/internal/handler"
	"github.com/careconnect/careconnect-api/internal/middleware"
	"github.com/careconnect/careconnect-api/pkg/metrics"
)

// Handler registers its routes on a router group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
	RequestTimeout   time.Duration
	TemplateGlob     string
}

type Router struct {
	engine  *gin.Engine
	h       *handler.Handler
	metrics *metrics.Metrics
}

func NewRouter(h *handler.Handler, m *metrics.Metrics, cfg Config, handlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	if cfg.TemplateGlob != "" {
		engine.LoadHTMLGlob(cfg.TemplateGlob)
	}

	r := &Router{engine: engine, h: h, metrics: m}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = middleware.DefaultTimeoutConfig().Duration
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
		middleware.Timeout(middleware.TimeoutConfig{Duration: timeout}),
		middleware.CORS(middleware.DefaultCORSConfig()),
	)

	if cfg.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		})
		engine.Use(limiter.RateLimit())
	}

	// Routes live at the root, matching the paths clients already use.
	root := engine.Group("")
	for _, hdl := range handlers {
		hdl.RegisterRoutes(root)
	}

	r.setupOperationalRoutes(root)

	return r
}

func (r *Router) setupOperationalRoutes(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
	}
	rg.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.ErrorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
