package utils

import (
	"net/http"

	"skibook/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware that catches panics and returns the standard
// envelope. The underlying message is only exposed outside production.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				body := gin.H{
					"success": false,
					"message": "Something went wrong!",
				}
				if !config.IsProduction() {
					body["error"] = err
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()
		c.Next()
	}
}
