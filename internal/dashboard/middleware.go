package dashboard

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dbsmedya/greenshare/internal/dataset"
	"github.com/dbsmedya/greenshare/internal/logger"
)

// requestLogger logs one line per request through the zap logger.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		reqLog := log.WithRequest(c.Request.Method, c.Request.URL.Path)
		fields := []interface{}{
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			reqLog.Errorw("Request failed", fields...)
		case status >= http.StatusBadRequest:
			reqLog.Warnw("Request rejected", fields...)
		default:
			reqLog.Debugw("Request served", fields...)
		}
	}
}

// paramError is a query parameter that could not be parsed.
type paramError struct {
	Param string
	Value string
	Err   error
}

func (e *paramError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Param, e.Value, e.Err)
}

func (e *paramError) Unwrap() error {
	return e.Err
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	var pe *paramError
	switch {
	case errors.As(err, &pe):
		return http.StatusBadRequest
	case dataset.IsDataNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// abort writes err as a JSON error body with the matching status.
func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}
