package main

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"oysterkode.backend/internal/config"
	domainerrors "oysterkode.backend/internal/domain/errors"
	"oysterkode.backend/internal/interfaces/http/handlers"
	"oysterkode.backend/internal/interfaces/http/middleware"
	"oysterkode.backend/internal/interfaces/http/response"
	"oysterkode.backend/internal/metrics"
)

const (
	serviceName    = "oysterkode-backend"
	serviceVersion = "1.0.0"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	eventHandler   *handlers.EventHandler
	memberHandler  *handlers.MemberHandler
	projectHandler *handlers.ProjectHandler
	contactHandler *handlers.ContactHandler
	statsHandler   *handlers.StatsHandler
	authMiddleware gin.HandlerFunc
	dbPing         func(ctx context.Context) error
}

func newRouter(cfg *config.Config, d routeDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	applyCORSMiddleware(r, cfg.Server.AllowedOrigins)

	registerHealthRoute(r, d.dbPing)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	registerAPIRoutes(r, d, cfg.RateLimit)
	registerFallbacks(r)
	return r
}

func registerAPIRoutes(r *gin.Engine, d routeDeps, rl config.RateLimitConfig) {
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.LoginRateLimit(rl.LoginPerMinute, rl.LoginBurst), d.authHandler.Login)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Public site content
		api.GET("/events", d.eventHandler.ListPublic)
		api.GET("/members", d.memberHandler.ListPublic)
		api.GET("/projects", d.projectHandler.ListPublic)
		api.POST("/contact", middleware.IdempotencyMiddleware(), d.contactHandler.Submit)

		// Admin routes (protected)
		admin := api.Group("/admin")
		admin.Use(d.authMiddleware)
		{
			admin.GET("/events", d.eventHandler.List)
			admin.POST("/events", d.eventHandler.Create)
			admin.PUT("/events", d.eventHandler.Update)
			admin.DELETE("/events", d.eventHandler.Delete)

			admin.GET("/members", d.memberHandler.List)
			admin.POST("/members", d.memberHandler.Create)
			admin.PUT("/members", d.memberHandler.Update)
			admin.DELETE("/members", d.memberHandler.Delete)

			admin.GET("/projects", d.projectHandler.List)
			admin.POST("/projects", d.projectHandler.Create)
			admin.PUT("/projects", d.projectHandler.Update)
			admin.DELETE("/projects", d.projectHandler.Delete)

			admin.GET("/contact-submissions", d.contactHandler.List)
			admin.GET("/stats", d.statsHandler.Dashboard)
		}
	}
}

// registerFallbacks answers unknown paths with 404 and known paths hit with
// the wrong verb with 405 plus an Allow header.
func registerFallbacks(r *gin.Engine) {
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, domainerrors.NotFound("Route not found"))
	})
	r.NoMethod(func(c *gin.Context) {
		if allowed := allowedMethods(r.Routes(), c.Request.URL.Path); len(allowed) > 0 {
			c.Header("Allow", strings.Join(allowed, ", "))
		}
		response.Error(c, domainerrors.MethodNotAllowed(c.Request.Method))
	})
}

func allowedMethods(routes gin.RoutesInfo, path string) []string {
	path = strings.TrimSuffix(path, "/")
	var out []string
	for _, route := range routes {
		if route.Path == path {
			out = append(out, route.Method)
		}
	}
	sort.Strings(out)
	return out
}

func applyCORSMiddleware(r *gin.Engine, allowedOrigins []string) {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = strings.ToLower(strings.TrimSpace(o)); o != "" {
			allowed[o] = struct{}{}
		}
	}

	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := allowed[strings.ToLower(origin)]; ok && origin != "" {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")
			h.Set("Access-Control-Expose-Headers", "X-Request-ID, Retry-After")
			h.Set("Access-Control-Max-Age", "86400")
			h.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine, dbPing func(ctx context.Context) error) {
	r.GET("/health", func(c *gin.Context) {
		code, status, database := http.StatusOK, "ok", "connected"
		if dbPing != nil {
			if err := dbPing(c.Request.Context()); err != nil {
				code, status, database = http.StatusServiceUnavailable, "degraded", "unavailable"
			}
		}
		c.JSON(code, gin.H{
			"status":   status,
			"service":  serviceName,
			"version":  serviceVersion,
			"database": database,
		})
	})
}
