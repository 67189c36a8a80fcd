package middleware

import (
	"time"

	"github.com/SampleSite/SampleSite-Backend/src/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger attaches a request-scoped logger to the request context and
// logs each completed request.
func RequestLogger(base logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Header(RequestIDHeader, requestID)

		entry := base.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     ctx.Request.Method,
			"path":       ctx.Request.URL.Path,
		})
		ctx.Request = ctx.Request.WithContext(logger.WithContext(ctx.Request.Context(), entry))

		start := time.Now()
		ctx.Next()

		fields := logrus.Fields{
			"status":  ctx.Writer.Status(),
			"latency": time.Since(start).String(),
		}
		if len(ctx.Errors) > 0 {
			entry.WithFields(fields).WithError(ctx.Errors.Last()).Error("request failed")
			return
		}
		entry.WithFields(fields).Info("request completed")
	}
}
