package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-booking-api/internal/config"
	"restaurant-booking-api/internal/middleware"
	"restaurant-booking-api/internal/router"
	"restaurant-booking-api/pkg/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.SetupLogging(cfg.Environment)

	container, err := server.NewContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.StructuredLogger())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "restaurant-booking-api",
		})
	})

	rt := container.Router
	engine.POST("/signup", dispatch(rt, "/signup"))
	engine.POST("/signin", dispatch(rt, "/signin"))

	// The deployed API protects these routes with the platform authorizer;
	// locally the token guard stands in when enabled.
	protected := engine.Group("")
	if cfg.Auth.VerifyTokens {
		protected.Use(middleware.TokenGuard())
	}
	protected.GET("/tables", dispatch(rt, "/tables"))
	protected.POST("/tables", dispatch(rt, "/tables"))
	protected.GET("/tables/:tableId", dispatch(rt, "/tables/{tableId}"))
	protected.GET("/reservations", dispatch(rt, "/reservations"))
	protected.POST("/reservations", dispatch(rt, "/reservations"))
	protected.GET("/weather", dispatch(rt, "/weather"))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	go func() {
		log.Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}

// dispatch adapts a gin request into the normalized request shape and routes
// it through the same table the Lambda entry point uses.
func dispatch(rt *router.Router, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)

		pathParams := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			pathParams[p.Key] = p.Value
		}

		headers := make(map[string]string, len(c.Request.Header))
		for key := range c.Request.Header {
			headers[key] = c.Request.Header.Get(key)
		}

		queryParams := make(map[string]string)
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				queryParams[key] = values[0]
			}
		}

		req := &router.Request{
			Resource:        resource,
			Method:          c.Request.Method,
			Body:            body,
			PathParameters:  pathParams,
			QueryParameters: queryParams,
			Headers:         headers,
		}

		resp := rt.Dispatch(c.Request.Context(), req)
		for key, value := range resp.Headers {
			c.Header(key, value)
		}
		c.String(resp.StatusCode, resp.Body)
	}
}
