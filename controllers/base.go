package controllers

import (
	"encoding/json"
	"strconv"

	beego "github.com/beego/beego/v2/server/web"
	"gorm.io/gorm"

	"parlayLeague/common/response"
	"parlayLeague/middleware"
	"parlayLeague/services/oddsService"
)

var (
	db       *gorm.DB
	provider oddsService.Provider
)

// Setup wires the shared handles the controllers use. Call once at startup,
// before the router serves traffic.
func Setup(database *gorm.DB, odds oddsService.Provider) {
	db = database
	provider = odds
}

// baseController carries the per-request helpers shared by every API
// controller.
type baseController struct {
	beego.Controller
}

func (c *baseController) traceID() string {
	return middleware.TraceID(c.Ctx)
}

func (c *baseController) userID() uint {
	return middleware.UserID(c.Ctx)
}

// parseBody decodes the JSON request body into out.
func (c *baseController) parseBody(out interface{}) error {
	return json.Unmarshal(c.Ctx.Input.RequestBody, out)
}

// uintParam reads a positive integer route param. On a bad value it writes a
// 400 and returns ok=false; the caller should just return.
func (c *baseController) uintParam(name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Ctx.Input.Param(name), 10, 32)
	if err != nil || v == 0 {
		response.BadRequest(&c.Controller, "invalid id", c.traceID())
		return 0, false
	}
	return uint(v), true
}
