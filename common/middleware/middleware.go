package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agrimate/common/log"
	"agrimate/common/response"
)

const RequestIDHeader = "X-Request-Id"

// CORS allows any origin and answers OPTIONS preflights with an empty 200
// before any handler is considered.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(RequestIDHeader, id)
		c.Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs every request before dispatch and once more with the
// status and latency after the handler ran.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		entry := log.Logger().WithFields(map[string]interface{}{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"requestId": c.GetString(RequestIDHeader),
		})
		entry.Info("request")
		c.Next()
		entry.WithFields(map[string]interface{}{
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("response")
	}
}

// Recovery turns handler panics into the uniform 500 envelope; nothing is
// allowed to escape to the transport layer.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Logger().WithContext(c.Request.Context()).Errorf("panic recovered: %v", recovered)
				response.Error(c, http.StatusInternalServerError, nil, "Internal server error")
			}
		}()
		c.Next()
	}
}

// NotFound answers unmatched routes with a structured 404.
func NotFound() gin.HandlerFunc {
	type notFoundBody struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Path    string `json:"path"`
		Method  string `json:"method"`
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, notFoundBody{
			Message: "Route not found",
			Path:    c.Request.URL.Path,
			Method:  c.Request.Method,
		})
	}
}
