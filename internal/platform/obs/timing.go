package obs

import (
	"context"
	"time"

	"github.com/golang/glog"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a context carrying the request id for timing logs.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, reqID)
}

// Time logs how long the named operation took once the returned func runs.
// Pass a pointer to the operation's named error to log failures too.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			glog.Warningf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		glog.V(1).Infof("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
