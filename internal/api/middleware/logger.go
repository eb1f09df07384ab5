package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/wealth-journey/internal/calculation"
)

// Logger writes one line per request through the application logger.
func Logger(l calculation.Logger) gin.HandlerFunc {
	if l == nil {
		l = calculation.NopLogger{}
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		line := "%s %s -> %d (%s)"
		args := []any{c.Request.Method, c.Request.URL.Path, status, time.Since(start)}
		if len(c.Errors) > 0 {
			line += ": %s"
			args = append(args, c.Errors.String())
		}
		switch {
		case status >= 500:
			l.Errorf(line, args...)
		case status >= 400:
			l.Warnf(line, args...)
		default:
			l.Infof(line, args...)
		}
	}
}
