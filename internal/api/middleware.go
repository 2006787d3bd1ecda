package api

import (
	"freight-dispatch-service/internal/platform/obs"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID tags each request with an id (client supplied or generated)
// and stores it in the request context for timing logs.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(obs.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// logging logs end-to-end request duration and response size.
func logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		reqID, _ := c.Request.Context().Value(obs.RequestIDKey).(string)
		glog.Infof(
			"req_id=%s method=%s path=%s status=%d bytes=%d dur=%dms",
			reqID, c.Request.Method, c.Request.URL.RequestURI(), c.Writer.Status(), c.Writer.Size(), time.Since(start).Milliseconds(),
		)
	}
}
