package controllers

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	"parlayLeague/common/logger"
	"parlayLeague/common/response"
	"parlayLeague/services/betService"
)

type BetController struct {
	baseController
}

type placeBetRequest struct {
	MatchupID       uint    `json:"matchup_id"`
	BettingOptionID uint    `json:"betting_option_id"`
	Amount          float64 `json:"amount"`
}

// Place creates a single moneyline bet for the caller.
func (c *BetController) Place() {
	var req placeBetRequest
	if err := c.parseBody(&req); err != nil {
		response.BadRequest(&c.Controller, "invalid JSON body", c.traceID())
		return
	}

	bet, err := betService.PlaceBet(db, betService.PlaceBetInput{
		UserID:          c.userID(),
		MatchupID:       req.MatchupID,
		BettingOptionID: req.BettingOptionID,
		Amount:          req.Amount,
	}, time.Now())
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	logger.Info("bet placed",
		zap.Uint("user_id", bet.UserID),
		zap.Uint("bet_id", bet.ID),
		zap.Float64("amount", bet.Amount))
	response.Created(&c.Controller, bet, c.traceID())
}

type placeParlayRequest struct {
	MatchupID        uint    `json:"matchup_id"`
	BettingOptionIDs []uint  `json:"betting_option_ids"`
	Amount           float64 `json:"amount"`
}

// PlaceParlay creates a multi-leg wager for the caller.
func (c *BetController) PlaceParlay() {
	var req placeParlayRequest
	if err := c.parseBody(&req); err != nil {
		response.BadRequest(&c.Controller, "invalid JSON body", c.traceID())
		return
	}

	parlay, err := betService.PlaceParlay(db, betService.PlaceParlayInput{
		UserID:           c.userID(),
		MatchupID:        req.MatchupID,
		BettingOptionIDs: req.BettingOptionIDs,
		Amount:           req.Amount,
	}, time.Now())
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	logger.Info("parlay placed",
		zap.Uint("user_id", parlay.UserID),
		zap.Uint("parlay_id", parlay.ID),
		zap.Int("legs", len(parlay.Legs)),
		zap.Float64("amount", parlay.Amount))
	response.Created(&c.Controller, parlay, c.traceID())
}

// Week returns the caller's wagers and remaining balance for a week.
func (c *BetController) Week() {
	week, err := strconv.Atoi(c.Ctx.Input.Param(":week"))
	if err != nil || week < 1 {
		response.BadRequest(&c.Controller, "invalid week", c.traceID())
		return
	}

	summary, err := betService.UserWeek(db, c.userID(), week)
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	response.Success(&c.Controller, summary, c.traceID())
}

// MatchupBets returns both sides' wagers for a matchup the caller is in.
func (c *BetController) MatchupBets() {
	matchupID, ok := c.uintParam(":id")
	if !ok {
		return
	}

	board, err := betService.BetsForMatchup(db, c.userID(), matchupID)
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	response.Success(&c.Controller, board, c.traceID())
}
