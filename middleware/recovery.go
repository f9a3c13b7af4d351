package middleware

import (
	"runtime/debug"
	"time"

	beegocontext "github.com/beego/beego/v2/server/web/context"
	"go.uber.org/zap"

	"parlayLeague/common/logger"
	"parlayLeague/common/response"
)

// RecoveryFilter catches unhandled panics so a single bad request cannot take
// the process down.
func RecoveryFilter(ctx *beegocontext.Context) {
	defer func() {
		if err := recover(); err != nil {
			traceID := TraceID(ctx)
			logger.Error("panic recovered",
				zap.String("trace_id", traceID),
				zap.String("method", ctx.Request.Method),
				zap.String("path", ctx.Request.URL.Path),
				zap.Any("error", err),
				zap.String("stack", string(debug.Stack())))

			ctx.Output.SetStatus(500)
			_ = ctx.Output.JSON(response.APIResponse{
				Code:      response.CodeSystemError,
				Message:   "internal error, please retry later",
				TraceID:   traceID,
				Timestamp: time.Now().UnixMilli(),
			}, false, false)
			ctx.Abort(500, "panic recovered")
		}
	}()
}
