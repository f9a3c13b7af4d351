package controllers

import (
	"time"

	"go.uber.org/zap"

	"parlayLeague/common/logger"
	"parlayLeague/common/response"
	"parlayLeague/services/lockService"
)

type AdminController struct {
	baseController
}

// LockSweep locks options whose games have started. Admin only; the
// scheduler runs the same sweep on a timer.
func (c *AdminController) LockSweep() {
	result, err := lockService.Sweep(db, time.Now())
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	logger.Info("manual lock sweep",
		zap.Int("options_locked", result.OptionsLocked),
		zap.Int("bets_locked", result.BetsLocked),
		zap.Int("parlays_locked", result.ParlaysLocked))
	response.Success(&c.Controller, result, c.traceID())
}
