package apperrors

import "errors"

// Sentinel errors for the betting domain. Services return these (possibly
// wrapped); controllers translate them into response codes.
var (
	ErrInsufficientBalance = errors.New("stake exceeds remaining weekly balance")
	ErrMarketLocked        = errors.New("betting option is locked")
	ErrInvalidMatchup      = errors.New("matchup does not belong to user")
	ErrDuplicateLeg        = errors.New("parlay has two legs on the same game")
	ErrTooFewLegs          = errors.New("parlay needs at least 2 legs")
	ErrTooManyLegs         = errors.New("parlay cannot have more than 10 legs")
	ErrNotFound            = errors.New("not found")
	ErrAlreadySettled      = errors.New("bet already settled")
	ErrConflict            = errors.New("conflicting update, retry")
)
