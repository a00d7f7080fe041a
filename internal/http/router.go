package api

import (
	stdhttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	intconfig "truckqr/internal/config"
	h "truckqr/internal/http/handlers"
	"truckqr/internal/http/middleware"
	"truckqr/internal/metrics"
	"truckqr/internal/utils"
)

// NewRouter wires middleware and routes. loc is the zone gate timestamps are
// expressed in; clock may be nil to use the wall clock.
func NewRouter(env intconfig.Env, loc *time.Location, clock func() time.Time) *gin.Engine {
	metrics.Register()

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.CORSAllowedOrigins),
		middleware.Metrics(),
		middleware.BodyLimit(env.MaxBodyBytes),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.L().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	qr := h.QR{Location: loc, Clock: clock}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)
		api.GET("/truck-types", h.TruckTypes)

		qrGroup := api.Group("/qr")
		qrGroup.POST("", qr.Generate)
		qrGroup.POST("/png", qr.GeneratePNG)
		qrGroup.POST("/gate-pass", qr.GenerateGatePass)
		qrGroup.POST("/validate", qr.Validate)
	}

	h.SetRouter(r)
	return r
}
