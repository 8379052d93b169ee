package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vibecart/vibe-commerce-api/internal/config"
	"github.com/vibecart/vibe-commerce-api/internal/handlers"
	"github.com/vibecart/vibe-commerce-api/internal/web"
)

// CORSMiddleware allows the storefront dev server to talk to the API.
// Only the configured origin is allowed, not "*".
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With, accept, origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		// Preflight requests get an empty 204 and stop here.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestLogger writes one structured line per completed request.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request completed")
	}
}

// Recovery turns panics into 500s. The panic detail is included in the
// body only in development; production callers get the generic message.
func Recovery(logger zerolog.Logger, development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Msg("request panicked")

				body := gin.H{"success": false, "message": "Something went wrong!"}
				if development {
					body["error"] = fmt.Sprintf("%v", r)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()
		c.Next()
	}
}

// SetupRouter wires the REST surface and the embedded storefront.
func SetupRouter(h *handlers.Handlers, cfg config.Config) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(RequestLogger(h.Logger))
	router.Use(Recovery(h.Logger, cfg.IsDevelopment()))
	router.Use(CORSMiddleware(cfg.AllowedOrigin))

	// --- Storefront ---
	web.Register(router)

	// --- API Index & Health ---
	router.GET("/api", h.APIIndex)
	router.GET("/health", h.HealthCheck)

	// --- Product Routes (read-only catalog) ---
	router.GET("/products", h.GetProducts)
	router.GET("/products/:id", h.GetProductByID)

	// --- Cart Routes ---
	router.GET("/cart", h.GetCart)
	router.POST("/cart", h.AddToCart)
	router.PUT("/cart/:productId", h.UpdateCartItem)
	router.DELETE("/cart/:productId", h.DeleteCartItem)
	router.DELETE("/cart", h.ClearCart)

	// --- Checkout ---
	router.POST("/checkout", h.ProcessCheckout)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	return router
}
