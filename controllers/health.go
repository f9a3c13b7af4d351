package controllers

import (
	"parlayLeague/common/response"
)

type HealthController struct {
	baseController
}

// Healthz reports process liveness.
func (c *HealthController) Healthz() {
	response.Success(&c.Controller, map[string]string{"status": "ok"}, c.traceID())
}

// Readyz reports readiness: the process is ready when the database answers.
func (c *HealthController) Readyz() {
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		response.ErrorWithMessage(&c.Controller, 503, response.CodeSystemError, "database unreachable", c.traceID())
		return
	}
	response.Success(&c.Controller, map[string]string{"status": "ready"}, c.traceID())
}
