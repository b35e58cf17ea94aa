package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ja7ad/kinema/pkg/drive"
)

// ginLogger logs one line per request through logger. Rejected calculations
// additionally carry the offending input fields and the rejection reason.
func ginLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// handlers may rewrite the path
		path := c.Request.URL.Path
		start := time.Now()
		c.Next()
		latency := int(math.Ceil(float64(time.Since(start).Nanoseconds()) / 1e6))
		statusCode := c.Writer.Status()

		entry := logger.WithFields(logrus.Fields{
			"statusCode": statusCode,
			"latency":    latency,
			"method":     c.Request.Method,
			"path":       path,
		})

		if err := c.Errors.Last(); err != nil {
			var ie *drive.InputError
			if errors.As(err.Err, &ie) {
				entry = entry.WithFields(logrus.Fields{
					"fields": ie.Fields,
					"reason": ie.Kind.Error(),
				})
				if ie.Value != "" {
					entry = entry.WithField("value", ie.Value)
				}
			}
			entry.Warnf("%s %s rejected: %v", c.Request.Method, path, err.Err)
			return
		}

		msg := fmt.Sprintf("%s %s %d (%dms)", c.Request.Method, path, statusCode, latency)
		switch {
		case statusCode >= http.StatusInternalServerError:
			entry.Error(msg)
		case statusCode >= http.StatusBadRequest:
			entry.Warn(msg)
		default:
			entry.Debug(msg)
		}
	}
}
