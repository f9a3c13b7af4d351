package middleware

import (
	"strings"

	beegocontext "github.com/beego/beego/v2/server/web/context"

	"parlayLeague/config"
)

var corsCfg config.CORS

// SetupCORS stores the CORS configuration for the filter.
func SetupCORS(c config.CORS) { corsCfg = c }

// CORSFilter answers preflight requests and sets the allow headers for
// configured origins.
func CORSFilter(ctx *beegocontext.Context) {
	if !corsCfg.Enabled {
		return
	}
	origin := ctx.Request.Header.Get("Origin")
	if origin == "" {
		return
	}

	allowed := false
	for _, o := range strings.Split(corsCfg.Origins, ",") {
		o = strings.TrimSpace(o)
		if o == "*" || o == origin {
			allowed = true
			break
		}
	}
	if !allowed {
		return
	}

	ctx.Output.Header("Access-Control-Allow-Origin", origin)
	ctx.Output.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	ctx.Output.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-Id")
	ctx.Output.Header("Access-Control-Expose-Headers", "X-Request-Id")

	if ctx.Request.Method == "OPTIONS" {
		ctx.Output.SetStatus(204)
		ctx.ResponseWriter.WriteHeader(204)
	}
}
