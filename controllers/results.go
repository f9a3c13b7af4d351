package controllers

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	"parlayLeague/common/logger"
	"parlayLeague/common/response"
	"parlayLeague/services/settleService"
)

type ResultsController struct {
	baseController
}

// Week returns the caller's matchups for a week with derived balances.
func (c *ResultsController) Week() {
	week, err := strconv.Atoi(c.Ctx.Input.Param(":week"))
	if err != nil || week < 1 {
		response.BadRequest(&c.Controller, "invalid week", c.traceID())
		return
	}

	results, err := settleService.WeekResults(db, c.userID(), week)
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	response.Success(&c.Controller, results, c.traceID())
}

// SettleSweep runs the settlement pass on demand. The scheduler runs the
// same pass on a timer. week 0 sweeps every week.
func (c *ResultsController) SettleSweep() {
	week := 0
	if raw := c.GetString("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(&c.Controller, "invalid week", c.traceID())
			return
		}
		week = parsed
	}

	report, err := settleService.Sweep(db, provider, time.Now(), week)
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	logger.Info("manual settle sweep",
		zap.Int("week", week),
		zap.Int("games_settled", report.GamesSettled),
		zap.Int("matchups_finalized", report.MatchupsFinalized))
	response.Success(&c.Controller, report, c.traceID())
}

type settleGameRequest struct {
	GameID string `json:"game_id"`
	Result string `json:"result"`
}

// SettleGame applies an explicit result to one game. Admin only; used when
// the provider misreports or a result needs manual entry.
func (c *ResultsController) SettleGame() {
	var req settleGameRequest
	if err := c.parseBody(&req); err != nil {
		response.BadRequest(&c.Controller, "invalid JSON body", c.traceID())
		return
	}

	if err := settleService.SettleGame(db, req.GameID, req.Result); err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	logger.Info("game settled manually",
		zap.String("game_id", req.GameID),
		zap.String("result", req.Result))
	response.Success(&c.Controller, nil, c.traceID())
}
