package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/fishtracker/internal/server/handlers"
)

// SessionCookie names the cookie carrying the trip log session id.
const SessionCookie = "fishlog_session"

// RequestObserver records served requests for metrics.
type RequestObserver interface {
	ObserveRequest(route string, status int, duration time.Duration)
}

// Deps groups everything the router mounts.
type Deps struct {
	Trips      *handlers.TripHandler
	Conditions *handlers.ConditionsHandler
	Metrics    http.Handler
	Observer   RequestObserver
	SessionTTL time.Duration
}

// New wires the Gin engine with required routes and middlewares.
func New(deps Deps, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger, deps.Observer))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	api := r.Group("/api", sessionMiddleware(deps.SessionTTL))
	api.GET("/conditions", deps.Conditions.Conditions)
	api.GET("/recommendation", deps.Conditions.Recommendation)
	api.GET("/dashboard", deps.Conditions.Dashboard)
	api.GET("/trips", deps.Trips.List)
	api.POST("/trips", deps.Trips.Create)
	api.GET("/trends", deps.Trips.Trends)
	api.GET("/weather-options", deps.Trips.WeatherOptions)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// sessionMiddleware resolves the caller's session from its cookie, minting a new
// id when the cookie is missing or malformed.
func sessionMiddleware(ttl time.Duration) gin.HandlerFunc {
	maxAge := int(ttl.Seconds())

	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, maxAge, "/", "", false, true)
		c.Set(handlers.SessionContextKey, id)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger, observer RequestObserver) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		if observer != nil {
			observer.ObserveRequest(c.FullPath(), c.Writer.Status(), elapsed)
		}

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", elapsed),
			zap.String("client_ip", c.ClientIP()))
	}
}
