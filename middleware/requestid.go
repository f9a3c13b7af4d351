package middleware

import (
	beegocontext "github.com/beego/beego/v2/server/web/context"
	"github.com/google/uuid"
)

// RequestIDFilter injects an X-Request-Id into every request so responses and
// logs can be correlated.
func RequestIDFilter(ctx *beegocontext.Context) {
	id := ctx.Input.Header("X-Request-Id")
	if id == "" {
		id = uuid.NewString()
	}
	ctx.Input.SetData("trace_id", id)
	ctx.Output.Header("X-Request-Id", id)
}

// TraceID returns the request's trace id, empty if the filter did not run.
func TraceID(ctx *beegocontext.Context) string {
	if id, ok := ctx.Input.GetData("trace_id").(string); ok {
		return id
	}
	return ""
}
