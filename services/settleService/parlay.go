package settleService

import (
	"parlayLeague/models"
	"parlayLeague/services/oddsService"
)

// ParlayOutcome is the tagged settlement variant for a parlay's leg set.
type ParlayOutcome int

const (
	// OutcomePending: at least one leg is still undecided and none has lost.
	OutcomePending ParlayOutcome = iota
	// OutcomeLost: some leg lost; the ticket is dead regardless of the rest.
	OutcomeLost
	// OutcomeAllVoid: every leg voided; stake is returned.
	OutcomeAllVoid
	// OutcomePartiallyVoid: all non-void legs won; price recomputed over the
	// surviving legs only.
	OutcomePartiallyVoid
	// OutcomeResolved: every leg won at full price.
	OutcomeResolved
)

// EvaluateParlay folds leg results into the parlay outcome and the effective
// decimal odds (product over non-void legs). Deterministic: identical leg
// results always produce identical output.
func EvaluateParlay(legs []models.ParlayLeg) (ParlayOutcome, float64) {
	anyPending := false
	anyVoid := false
	liveOdds := make([]float64, 0, len(legs))

	for _, leg := range legs {
		switch leg.Result {
		case models.LegResultLost:
			// Short-circuits: a lost leg kills the ticket even with legs
			// still in play.
			return OutcomeLost, 0
		case models.LegResultPending:
			anyPending = true
		case models.LegResultVoid:
			anyVoid = true
		case models.LegResultWon:
			liveOdds = append(liveOdds, leg.DecimalOdds)
		}
	}

	if anyPending {
		return OutcomePending, 0
	}
	if len(liveOdds) == 0 {
		return OutcomeAllVoid, 0
	}
	odds := oddsService.CombinedDecimalOdds(liveOdds)
	if anyVoid {
		return OutcomePartiallyVoid, odds
	}
	return OutcomeResolved, odds
}
