package settleService

import (
	"math"
	"testing"

	"parlayLeague/models"
)

func legs(results ...string) []models.ParlayLeg {
	out := make([]models.ParlayLeg, len(results))
	for i, r := range results {
		out[i] = models.ParlayLeg{DecimalOdds: 2.0, Result: r}
	}
	return out
}

func TestEvaluateParlay(t *testing.T) {
	tests := []struct {
		name            string
		legs            []models.ParlayLeg
		expectedOutcome ParlayOutcome
		expectedOdds    float64
	}{
		{
			name:            "all legs pending",
			legs:            legs(models.LegResultPending, models.LegResultPending),
			expectedOutcome: OutcomePending,
		},
		{
			name:            "one leg still pending",
			legs:            legs(models.LegResultWon, models.LegResultPending),
			expectedOutcome: OutcomePending,
		},
		{
			name:            "lost leg kills the ticket with legs in play",
			legs:            legs(models.LegResultWon, models.LegResultLost, models.LegResultPending),
			expectedOutcome: OutcomeLost,
		},
		{
			name:            "all legs won",
			legs:            legs(models.LegResultWon, models.LegResultWon, models.LegResultWon),
			expectedOutcome: OutcomeResolved,
			expectedOdds:    8.0,
		},
		{
			name:            "void leg drops out of the price",
			legs:            legs(models.LegResultWon, models.LegResultVoid, models.LegResultWon),
			expectedOutcome: OutcomePartiallyVoid,
			expectedOdds:    4.0,
		},
		{
			name:            "every leg void",
			legs:            legs(models.LegResultVoid, models.LegResultVoid),
			expectedOutcome: OutcomeAllVoid,
		},
		{
			name:            "void plus lost still loses",
			legs:            legs(models.LegResultVoid, models.LegResultLost),
			expectedOutcome: OutcomeLost,
		},
		{
			name:            "void plus pending stays pending",
			legs:            legs(models.LegResultVoid, models.LegResultPending),
			expectedOutcome: OutcomePending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, odds := EvaluateParlay(tt.legs)
			if outcome != tt.expectedOutcome {
				t.Errorf("outcome = %v, expected %v", outcome, tt.expectedOutcome)
			}
			if math.Abs(odds-tt.expectedOdds) > 0.0001 {
				t.Errorf("effective odds = %v, expected %v", odds, tt.expectedOdds)
			}
		})
	}
}

func TestEvaluateParlayMixedPrices(t *testing.T) {
	mixed := []models.ParlayLeg{
		{DecimalOdds: 1.91, Result: models.LegResultWon},
		{DecimalOdds: 2.10, Result: models.LegResultWon},
		{DecimalOdds: 1.50, Result: models.LegResultWon},
	}
	outcome, odds := EvaluateParlay(mixed)
	if outcome != OutcomeResolved {
		t.Fatalf("outcome = %v, expected OutcomeResolved", outcome)
	}
	if math.Abs(odds-6.0165) > 0.0001 {
		t.Errorf("effective odds = %v, expected 6.0165", odds)
	}
}
