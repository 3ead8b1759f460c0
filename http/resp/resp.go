package resp

import (
	"net/http"

	"github.com/switchbacklabs/switchback"
	"github.com/switchbacklabs/switchback/logger"
)

// newLogContext helps structure a logger.LogContext from the provided parts,
// annotating data with the request ID when middleware stashed one.
func newLogContext(r *http.Request, err error, data map[string]any) *logger.LogContext {
	if r == nil && err == nil && data == nil {
		return nil
	}

	ctx := new(logger.LogContext)
	if r != nil {
		ctx.Request = r
		if id, ok := r.Context().Value(switchback.RequestIDKey).(string); ok {
			if data == nil {
				data = make(map[string]any)
			}
			data["requestID"] = id
		}
	}

	if err != nil {
		ctx.Error = err
	}

	if data != nil {
		ctx.Data = data
	}

	return ctx
}
