package api

import (
	"github.com/gin-gonic/gin"

	"payswitch/pkg/logger"
	"payswitch/pkg/metrics"
)

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), logger.CorrelationMiddleware(), logger.RequestLogger(), metrics.GinMiddleware())
	return engine
}
