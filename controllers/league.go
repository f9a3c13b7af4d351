package controllers

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"parlayLeague/common/logger"
	"parlayLeague/common/response"
	"parlayLeague/services/leagueService"
)

type LeagueController struct {
	baseController
}

type createLeagueRequest struct {
	Name string `json:"name"`
}

// Create starts a new league with the caller as commissioner.
func (c *LeagueController) Create() {
	var req createLeagueRequest
	if err := c.parseBody(&req); err != nil {
		response.BadRequest(&c.Controller, "invalid JSON body", c.traceID())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		response.BadRequest(&c.Controller, "league name is required", c.traceID())
		return
	}

	league, err := leagueService.CreateLeague(db, req.Name, c.userID())
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	logger.Info("league created",
		zap.Uint("league_id", league.ID),
		zap.Uint("commissioner_id", league.CommissionerID))
	response.Created(&c.Controller, league, c.traceID())
}

type joinLeagueRequest struct {
	InviteCode string `json:"invite_code"`
}

// Join adds the caller to a league by invite code.
func (c *LeagueController) Join() {
	var req joinLeagueRequest
	if err := c.parseBody(&req); err != nil {
		response.BadRequest(&c.Controller, "invalid JSON body", c.traceID())
		return
	}

	league, err := leagueService.JoinLeague(db, strings.ToUpper(strings.TrimSpace(req.InviteCode)), c.userID())
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	response.Success(&c.Controller, league, c.traceID())
}

// List returns the leagues the caller belongs to.
func (c *LeagueController) List() {
	leagues, err := leagueService.UserLeagues(db, c.userID())
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	response.Success(&c.Controller, leagues, c.traceID())
}

// Detail returns one league with its member list. Members only.
func (c *LeagueController) Detail() {
	leagueID, ok := c.uintParam(":id")
	if !ok {
		return
	}
	detail, err := leagueService.GetLeague(db, leagueID, c.userID())
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	response.Success(&c.Controller, detail, c.traceID())
}

// Standings returns the league table sorted by record.
func (c *LeagueController) Standings() {
	leagueID, ok := c.uintParam(":id")
	if !ok {
		return
	}
	rows, err := leagueService.Standings(db, leagueID, c.userID())
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	response.Success(&c.Controller, rows, c.traceID())
}

type scheduleRequest struct {
	Weeks int `json:"weeks"`
}

// GenerateSchedule builds the round-robin matchup calendar. Commissioner only.
func (c *LeagueController) GenerateSchedule() {
	leagueID, ok := c.uintParam(":id")
	if !ok {
		return
	}
	var req scheduleRequest
	if err := c.parseBody(&req); err != nil {
		response.BadRequest(&c.Controller, "invalid JSON body", c.traceID())
		return
	}

	matchups, err := leagueService.GenerateSchedule(db, leagueID, c.userID(), req.Weeks)
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	logger.Info("schedule generated",
		zap.Uint("league_id", leagueID),
		zap.Int("matchups", len(matchups)))
	response.Created(&c.Controller, matchups, c.traceID())
}

// WeekMatchups returns the league's matchups for one week.
func (c *LeagueController) WeekMatchups() {
	leagueID, ok := c.uintParam(":id")
	if !ok {
		return
	}
	week, err := strconv.Atoi(c.Ctx.Input.Param(":week"))
	if err != nil || week < 1 {
		response.BadRequest(&c.Controller, "invalid week", c.traceID())
		return
	}

	matchups, err := leagueService.WeekMatchups(db, leagueID, c.userID(), week)
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	response.Success(&c.Controller, matchups, c.traceID())
}
