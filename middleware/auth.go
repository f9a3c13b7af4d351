package middleware

import (
	"crypto/subtle"
	"strings"
	"time"

	beegocontext "github.com/beego/beego/v2/server/web/context"
	"go.uber.org/zap"

	"parlayLeague/auth"
	"parlayLeague/common/logger"
	"parlayLeague/common/response"
	"parlayLeague/config"
)

var authCfg config.Auth

// SetupAuth stores the auth configuration for the filters.
func SetupAuth(c config.Auth) { authCfg = c }

// UserAuthFilter verifies the Bearer access token and stashes the caller's
// identity on the request.
func UserAuthFilter(ctx *beegocontext.Context) {
	claims, err := auth.FromRequest(ctx)
	if err != nil {
		logger.Warn("auth rejected",
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err))
		abortJSON(ctx, 401, response.CodeUnauthorized, err.Error())
		return
	}
	ctx.Input.SetData("user_id", claims.UserID)
	ctx.Input.SetData("username", claims.Username)
}

// AdminAuthFilter guards operational endpoints (lock sweep, forced
// settlement) with a static bearer token.
func AdminAuthFilter(ctx *beegocontext.Context) {
	if authCfg.AdminToken == "" {
		abortJSON(ctx, 403, response.CodeForbidden, "admin endpoints disabled")
		return
	}
	header := strings.TrimPrefix(strings.TrimSpace(ctx.Input.Header("Authorization")), "Bearer ")
	if subtle.ConstantTimeCompare([]byte(header), []byte(authCfg.AdminToken)) != 1 {
		abortJSON(ctx, 403, response.CodeForbidden, "forbidden")
		return
	}
}

// UserID returns the authenticated user id, zero if the filter did not run.
func UserID(ctx *beegocontext.Context) uint {
	if id, ok := ctx.Input.GetData("user_id").(uint); ok {
		return id
	}
	return 0
}

func abortJSON(ctx *beegocontext.Context, status, code int, message string) {
	ctx.Output.SetStatus(status)
	_ = ctx.Output.JSON(response.APIResponse{
		Code:      code,
		Message:   message,
		TraceID:   TraceID(ctx),
		Timestamp: time.Now().UnixMilli(),
	}, false, false)
	ctx.Abort(status, "unauthorized")
}
