package routers

import (
	beego "github.com/beego/beego/v2/server/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"parlayLeague/config"
	"parlayLeague/controllers"
	"parlayLeague/metrics"
	"parlayLeague/middleware"
)

// Register wires the global filters and every route. Call once at startup,
// after controllers.Setup.
func Register(cfg *config.Config) {
	// Global filters, in execution order.
	beego.InsertFilter("/*", beego.BeforeRouter, middleware.RecoveryFilter)
	beego.InsertFilter("/*", beego.BeforeRouter, middleware.RequestIDFilter)
	if cfg.CORS.Enabled {
		beego.InsertFilter("/*", beego.BeforeExec, middleware.CORSFilter)
	}
	beego.InsertFilter("/*", beego.BeforeExec, metrics.HTTPMetricsFilter)
	beego.InsertFilter("/*", beego.FinishRouter, metrics.HTTPMetricsAfter)

	// Unauthenticated surface.
	beego.Router("/healthz", &controllers.HealthController{}, "get:Healthz")
	beego.Router("/readyz", &controllers.HealthController{}, "get:Readyz")
	beego.Handler("/metrics", promhttp.Handler())

	beego.Router("/api/auth/register", &controllers.AuthController{}, "post:Register")
	beego.Router("/api/auth/login", &controllers.AuthController{}, "post:Login")

	// Everything else under /api requires a user token.
	beego.InsertFilter("/api/auth/me", beego.BeforeExec, middleware.UserAuthFilter)
	beego.InsertFilter("/api/auth/profile", beego.BeforeExec, middleware.UserAuthFilter)
	beego.InsertFilter("/api/leagues", beego.BeforeExec, middleware.UserAuthFilter)
	beego.InsertFilter("/api/leagues/*", beego.BeforeExec, middleware.UserAuthFilter)
	beego.InsertFilter("/api/odds/*", beego.BeforeExec, middleware.UserAuthFilter)
	beego.InsertFilter("/api/bets", beego.BeforeExec, middleware.UserAuthFilter)
	beego.InsertFilter("/api/bets/*", beego.BeforeExec, middleware.UserAuthFilter)
	beego.InsertFilter("/api/parlays", beego.BeforeExec, middleware.UserAuthFilter)
	beego.InsertFilter("/api/results/week/*", beego.BeforeExec, middleware.UserAuthFilter)

	beego.Router("/api/auth/me", &controllers.AuthController{}, "get:Me")
	beego.Router("/api/auth/profile", &controllers.AuthController{}, "put:UpdateProfile")

	beego.Router("/api/leagues", &controllers.LeagueController{}, "post:Create")
	beego.Router("/api/leagues/user", &controllers.LeagueController{}, "get:List")
	beego.Router("/api/leagues/join", &controllers.LeagueController{}, "post:Join")
	beego.Router("/api/leagues/:id", &controllers.LeagueController{}, "get:Detail")
	beego.Router("/api/leagues/:id/standings", &controllers.LeagueController{}, "get:Standings")
	beego.Router("/api/leagues/:id/schedule", &controllers.LeagueController{}, "post:GenerateSchedule")
	beego.Router("/api/leagues/:id/matchups/:week", &controllers.LeagueController{}, "get:WeekMatchups")

	beego.Router("/api/odds/week/:week", &controllers.OddsController{}, "get:Week")

	beego.Router("/api/bets", &controllers.BetController{}, "post:Place")
	beego.Router("/api/parlays", &controllers.BetController{}, "post:PlaceParlay")
	beego.Router("/api/bets/week/:week", &controllers.BetController{}, "get:Week")
	beego.Router("/api/bets/matchup/:id", &controllers.BetController{}, "get:MatchupBets")

	beego.Router("/api/results/week/:week", &controllers.ResultsController{}, "get:Week")

	// Result ingestion: any member by default, admin token only when the
	// deployment locks it down.
	if cfg.Auth.AllowAnyUpdater {
		beego.InsertFilter("/api/results/update", beego.BeforeExec, middleware.UserAuthFilter)
	} else {
		beego.InsertFilter("/api/results/update", beego.BeforeExec, middleware.AdminAuthFilter)
	}
	beego.Router("/api/results/update", &controllers.ResultsController{}, "post:SettleSweep")

	// Admin surface: static token auth.
	beego.InsertFilter("/api/admin/*", beego.BeforeExec, middleware.AdminAuthFilter)
	beego.Router("/api/admin/lock-sweep", &controllers.AdminController{}, "post:LockSweep")
	beego.Router("/api/admin/settle-game", &controllers.ResultsController{}, "post:SettleGame")
}
