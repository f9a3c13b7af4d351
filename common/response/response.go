package response

import (
	"errors"
	"time"

	beego "github.com/beego/beego/v2/server/web"

	"parlayLeague/common/apperrors"
)

// APIResponse is the envelope every endpoint returns, success or failure.
type APIResponse struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	TraceID   string      `json:"trace_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// Business error codes.
const (
	CodeSuccess             = 0
	CodeBadRequest          = 1000
	CodeBusinessError       = 2000
	CodeInsufficientBalance = 2001
	CodeMarketLocked        = 2002
	CodeInvalidMatchup      = 2003
	CodeDuplicateLeg        = 2004
	CodeTooFewLegs          = 2005
	CodeAlreadySettled      = 2006
	CodeConflict            = 2007
	CodeUnauthorized        = 3000
	CodeInvalidToken        = 3001
	CodeForbidden           = 3002
	CodeNotFound            = 4004
	CodeSystemError         = 5000
)

var messages = map[int]string{
	CodeSuccess:             "success",
	CodeBadRequest:          "invalid request",
	CodeBusinessError:       "request failed",
	CodeInsufficientBalance: "weekly betting balance exceeded",
	CodeMarketLocked:        "betting is closed for this game",
	CodeInvalidMatchup:      "you are not part of this matchup",
	CodeDuplicateLeg:        "parlay legs must be on different games",
	CodeTooFewLegs:          "a parlay needs at least 2 legs",
	CodeAlreadySettled:      "bet is already settled",
	CodeConflict:            "conflicting update, please retry",
	CodeUnauthorized:        "authentication required",
	CodeInvalidToken:        "invalid or expired token",
	CodeForbidden:           "forbidden",
	CodeNotFound:            "not found",
	CodeSystemError:         "internal error, please retry later",
}

func Success(c *beego.Controller, data interface{}, traceID string) {
	c.Data["json"] = APIResponse{
		Code:      CodeSuccess,
		Message:   messages[CodeSuccess],
		Data:      data,
		TraceID:   traceID,
		Timestamp: time.Now().UnixMilli(),
	}
	_ = c.ServeJSON()
}

// Created serves a 201 with the standard envelope.
func Created(c *beego.Controller, data interface{}, traceID string) {
	c.Ctx.Output.SetStatus(201)
	c.Data["json"] = APIResponse{
		Code:      CodeSuccess,
		Message:   messages[CodeSuccess],
		Data:      data,
		TraceID:   traceID,
		Timestamp: time.Now().UnixMilli(),
	}
	_ = c.ServeJSON()
}

func Error(c *beego.Controller, httpStatus, code int, traceID string) {
	ErrorWithMessage(c, httpStatus, code, messages[code], traceID)
}

func ErrorWithMessage(c *beego.Controller, httpStatus, code int, message string, traceID string) {
	if message == "" {
		message = messages[CodeBusinessError]
	}
	c.Ctx.Output.SetStatus(httpStatus)
	c.Data["json"] = APIResponse{
		Code:      code,
		Message:   message,
		TraceID:   traceID,
		Timestamp: time.Now().UnixMilli(),
	}
	_ = c.ServeJSON()
}

func BadRequest(c *beego.Controller, message, traceID string) {
	ErrorWithMessage(c, 400, CodeBadRequest, message, traceID)
}

func NotFound(c *beego.Controller, message, traceID string) {
	ErrorWithMessage(c, 404, CodeNotFound, message, traceID)
}

func InternalError(c *beego.Controller, traceID string) {
	Error(c, 500, CodeSystemError, traceID)
}

// FromError maps a domain error onto the envelope. Unknown errors become 500s
// so callers never see internals.
func FromError(c *beego.Controller, err error, traceID string) {
	switch {
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		Error(c, 400, CodeInsufficientBalance, traceID)
	case errors.Is(err, apperrors.ErrMarketLocked):
		Error(c, 409, CodeMarketLocked, traceID)
	case errors.Is(err, apperrors.ErrInvalidMatchup):
		Error(c, 403, CodeInvalidMatchup, traceID)
	case errors.Is(err, apperrors.ErrDuplicateLeg):
		Error(c, 400, CodeDuplicateLeg, traceID)
	case errors.Is(err, apperrors.ErrTooFewLegs), errors.Is(err, apperrors.ErrTooManyLegs):
		ErrorWithMessage(c, 400, CodeTooFewLegs, err.Error(), traceID)
	case errors.Is(err, apperrors.ErrAlreadySettled):
		Error(c, 409, CodeAlreadySettled, traceID)
	case errors.Is(err, apperrors.ErrConflict):
		Error(c, 409, CodeConflict, traceID)
	case errors.Is(err, apperrors.ErrNotFound):
		Error(c, 404, CodeNotFound, traceID)
	default:
		InternalError(c, traceID)
	}
}
