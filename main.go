// main.go
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/andriwidianto/securewatch/config"
	"github.com/andriwidianto/securewatch/endpoint"
	"github.com/andriwidianto/securewatch/middleware"
	"github.com/andriwidianto/securewatch/model"
	"github.com/andriwidianto/securewatch/store"
	"github.com/andriwidianto/securewatch/util"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()
	util.SetJWTSecret(cfg.JWTSecret)

	if err := util.InitGeoIP(cfg.GeoIPPath); err != nil {
		log.Printf("GeoIP disabled: %v", err)
	}
	defer util.CloseGeoIP()

	// Redis is optional; the rate limiter falls back to local counters.
	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, rate limiting uses in-process counters: %v", err)
	}

	// Build and seed the in-memory store.
	dataStore := store.NewMemoryStore()
	if err := store.SeedDefaultUsers(dataStore); err != nil {
		log.Fatalf("Error seeding default users: %v", err)
	}
	store.SeedDemoData(dataStore)

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.StoreMiddleware(dataStore))
	router.Use(middleware.EndpointCallLogger())

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	// Unknown routes answer with the same envelope as every other error.
	router.NoRoute(func(c *gin.Context) {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Not found",
			Err: fmt.Errorf("no route for %s %s", c.Request.Method, c.Request.URL.Path),
		})
	})

	api := router.Group("/api")

	loginLimiter := middleware.RateLimiter(middleware.RateLimitConfig{
		Limit:  cfg.LoginRateLimit,
		Window: cfg.LoginRateWindow,
	})
	api.POST("/auth/login", loginLimiter, endpoint.Login)

	authed := api.Group("")
	authed.Use(middleware.Authentication())
	authed.POST("/auth/logout", endpoint.Logout)
	authed.GET("/auth/me", endpoint.Me)
	authed.GET("/dashboard/metrics", endpoint.DashboardMetrics)
	authed.GET("/activity-logs", endpoint.ListActivityLogs)
	authed.GET("/security-events", endpoint.ListSecurityEvents)

	admin := authed.Group("")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.GET("/security-events/unresolved", endpoint.ListUnresolvedSecurityEvents)
	admin.GET("/admin/users", endpoint.ListUsers)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
