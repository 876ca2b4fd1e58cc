package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"payswitch/internal/api/handlers"
	"payswitch/pkg/health"
	"payswitch/pkg/metrics"
)

type Router struct {
	webhook        *handlers.WebhookHandler
	blocklist      *handlers.BlocklistHandler
	healthRegistry *health.Registry
}

func NewRouter(webhook *handlers.WebhookHandler, blocklist *handlers.BlocklistHandler, healthRegistry *health.Registry) *Router {
	return &Router{
		webhook:        webhook,
		blocklist:      blocklist,
		healthRegistry: healthRegistry,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	// Health checks (Kubernetes-style)
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	engine.POST("/webhooks/:connector", r.webhook.Receive)

	engine.POST("/blocklist", r.blocklist.Block)
	engine.DELETE("/blocklist", r.blocklist.Unblock)
	engine.GET("/blocklist", r.blocklist.List)
	engine.POST("/blocklist/toggle", r.blocklist.ToggleGuard)
}
