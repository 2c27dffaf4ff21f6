package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет строку по каждому запросу и приватные ошибки хендлеров.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := l.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})

		for _, ginErr := range c.Errors {
			if ginErr.IsType(gin.ErrorTypePrivate) {
				entry = entry.WithError(ginErr.Err)
			}
		}

		if c.Writer.Status() >= 500 {
			entry.Error("request")
			return
		}
		entry.Info("request")
	}
}
