package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	"fileportal/internal/pkg/response"
)

// RequestLogger logs method, path, status and latency for every request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// Recovery logs panics with a stack trace and answers with a generic
// error body so internal detail never leaks to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic on %s %s: %v\n%s",
					c.Request.Method, c.Request.URL.Path, r, debug.Stack())
				response.Error(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
