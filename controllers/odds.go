package controllers

import (
	"strconv"

	"go.uber.org/zap"

	"parlayLeague/common/logger"
	"parlayLeague/common/response"
	"parlayLeague/models"
	"parlayLeague/services/oddsService"
)

type OddsController struct {
	baseController
}

type weekBoard struct {
	Week  int           `json:"week"`
	Games []gameOptions `json:"games"`
}

type gameOptions struct {
	Game    models.Game            `json:"game"`
	Options []models.BettingOption `json:"options"`
}

// Week syncs the week's board from the provider and returns the stored
// games with their betting options, lock flags included.
func (c *OddsController) Week() {
	week, err := strconv.Atoi(c.Ctx.Input.Param(":week"))
	if err != nil || week < 1 {
		response.BadRequest(&c.Controller, "invalid week", c.traceID())
		return
	}

	if _, err := oddsService.SyncWeek(db, provider, week); err != nil {
		// Stale board beats no board: serve what we have and log the miss.
		logger.Warn("odds sync failed, serving stored board",
			zap.Int("week", week), zap.Error(err))
	}

	var games []models.Game
	if err := db.Where("week = ?", week).Order("start_time").Find(&games).Error; err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}

	board := weekBoard{Week: week, Games: make([]gameOptions, 0, len(games))}
	for _, g := range games {
		var opts []models.BettingOption
		if err := db.Where("game_id = ?", g.ID).Order("id").Find(&opts).Error; err != nil {
			response.FromError(&c.Controller, err, c.traceID())
			return
		}
		board.Games = append(board.Games, gameOptions{Game: g, Options: opts})
	}
	response.Success(&c.Controller, board, c.traceID())
}
