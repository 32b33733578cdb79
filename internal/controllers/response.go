package controllers

import (
	"strconv"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
}

// SetLogLevel aligns the package logger with the application log level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// respondError writes the standard {"error": message} body
func respondError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, models.NewErrorResponse(message))
}

// requestLog returns a logger entry tagged with the current request
func requestLog(ctx *gin.Context) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"request_id": ctx.GetString(middleware.RequestIDKey),
		"method":     ctx.Request.Method,
		"path":       ctx.FullPath(),
	})
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
