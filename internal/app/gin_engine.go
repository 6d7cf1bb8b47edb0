package app

import (
	"time"

	"paygate/pkg/health"
	"paygate/pkg/logger"
	"paygate/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const readinessTimeout = 5 * time.Second

func NewGinEngine(l *logger.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(metrics.GinMiddleware(), logger.CorrelationMiddleware(), l.GinBodyLogger(), gin.Recovery())
	return engine
}

func setUpObservability(engine *gin.Engine, registry *health.Registry) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(registry, readinessTimeout))
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))
}
