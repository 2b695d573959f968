package middleware

import (
	"fmt" // Panic value formatting

	"places_api/internal/apperr" // Classified HTTP errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ErrorHandler writes the last error forwarded with c.Error as {"message": ...}
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next() // Run the handler chain first
		if len(c.Errors) == 0 {
			return
		}
		// A handler already answered
		if c.Writer.Written() {
			return
		}
		he := apperr.From(c.Errors.Last().Err) // Classify the error
		entry := logrus.WithFields(logrus.Fields{
			"method": c.Request.Method, // HTTP method
			"path":   c.FullPath(),     // Matched route
			"status": he.Status(),      // Response status
			"error":  he.Error(),       // Full error, cause included
		})
		if he.Status() >= 500 {
			entry.Error("Request failed")
		} else {
			entry.Debug("Request rejected")
		}
		c.AbortWithStatusJSON(he.Status(), gin.H{"message": he.Message})
	}
}

// NotFound forwards a 404 for routes nothing matched
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperr.NotFound(apperr.MsgRouteNotFound))
	}
}

// Recovery turns a panic into a 500 forwarded to ErrorHandler, so it needs to run inside it
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		_ = c.Error(apperr.Internal(apperr.MsgUnknown, fmt.Errorf("panic: %v", rec)))
		c.Abort()
	})
}
