package betService

import (
	"errors"
	"testing"
	"time"

	"parlayLeague/common/apperrors"
	"parlayLeague/models"
)

func TestPlaceParlayCombinesOdds(t *testing.T) {
	db := testDB(t)
	f := seedWeek(t, db, 3)

	parlay, err := PlaceParlay(db, PlaceParlayInput{
		UserID: f.user1.ID, MatchupID: f.matchup.ID,
		BettingOptionIDs: []uint{f.options[0].ID, f.options[1].ID, f.options[2].ID},
		Amount:           10,
	}, time.Now())
	if err != nil {
		t.Fatalf("PlaceParlay: %v", err)
	}

	if len(parlay.Legs) != 3 {
		t.Fatalf("legs = %d, expected 3", len(parlay.Legs))
	}
	if parlay.CombinedOdds != 15.625 { // 2.5^3
		t.Errorf("combined odds = %v, expected 15.625", parlay.CombinedOdds)
	}
	if parlay.PotentialPayout != 156.25 {
		t.Errorf("potential payout = %v, expected 156.25", parlay.PotentialPayout)
	}
	if parlay.Status != models.ParlayStatusPending {
		t.Errorf("status = %q, expected pending", parlay.Status)
	}
	for _, leg := range parlay.Legs {
		if leg.Result != models.LegResultPending {
			t.Errorf("leg result = %q, expected pending", leg.Result)
		}
		if leg.DecimalOdds != 2.5 {
			t.Errorf("leg odds snapshot = %v, expected 2.5", leg.DecimalOdds)
		}
	}
}

func TestPlaceParlayLegCountBounds(t *testing.T) {
	db := testDB(t)
	f := seedWeek(t, db, 1)

	_, err := PlaceParlay(db, PlaceParlayInput{
		UserID: f.user1.ID, MatchupID: f.matchup.ID,
		BettingOptionIDs: []uint{f.options[0].ID},
		Amount:           10,
	}, time.Now())
	if !errors.Is(err, apperrors.ErrTooFewLegs) {
		t.Fatalf("expected ErrTooFewLegs, got %v", err)
	}

	eleven := make([]uint, 11)
	for i := range eleven {
		eleven[i] = uint(i + 1)
	}
	_, err = PlaceParlay(db, PlaceParlayInput{
		UserID: f.user1.ID, MatchupID: f.matchup.ID,
		BettingOptionIDs: eleven,
		Amount:           10,
	}, time.Now())
	if !errors.Is(err, apperrors.ErrTooManyLegs) {
		t.Fatalf("expected ErrTooManyLegs, got %v", err)
	}
}

func TestPlaceParlayRejectsDuplicateGame(t *testing.T) {
	db := testDB(t)
	f := seedWeek(t, db, 1)

	// A second option on the same game.
	other := models.BettingOption{
		GameID: f.options[0].GameID, MarketType: models.MarketH2H,
		OutcomeName: "Away 1", Bookmaker: "book", AmericanOdds: -200, DecimalOdds: 1.5,
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("create option: %v", err)
	}

	_, err := PlaceParlay(db, PlaceParlayInput{
		UserID: f.user1.ID, MatchupID: f.matchup.ID,
		BettingOptionIDs: []uint{f.options[0].ID, other.ID},
		Amount:           10,
	}, time.Now())
	if !errors.Is(err, apperrors.ErrDuplicateLeg) {
		t.Fatalf("expected ErrDuplicateLeg, got %v", err)
	}
}

func TestPlaceParlayRejectsLockedLeg(t *testing.T) {
	db := testDB(t)
	f := seedWeek(t, db, 2)

	now := time.Now()
	db.Model(&models.BettingOption{}).Where("id = ?", f.options[1].ID).
		Updates(map[string]interface{}{"is_locked": true, "locked_at": now})

	_, err := PlaceParlay(db, PlaceParlayInput{
		UserID: f.user1.ID, MatchupID: f.matchup.ID,
		BettingOptionIDs: []uint{f.options[0].ID, f.options[1].ID},
		Amount:           10,
	}, now)
	if !errors.Is(err, apperrors.ErrMarketLocked) {
		t.Fatalf("expected ErrMarketLocked, got %v", err)
	}
}

func TestPlaceParlaySharesWeeklyAllowanceWithSingles(t *testing.T) {
	db := testDB(t)
	f := seedWeek(t, db, 3)

	if _, err := PlaceBet(db, PlaceBetInput{
		UserID: f.user1.ID, MatchupID: f.matchup.ID,
		BettingOptionID: f.options[0].ID, Amount: 80,
	}, time.Now()); err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}

	_, err := PlaceParlay(db, PlaceParlayInput{
		UserID: f.user1.ID, MatchupID: f.matchup.ID,
		BettingOptionIDs: []uint{f.options[1].ID, f.options[2].ID},
		Amount:           30,
	}, time.Now())
	if !errors.Is(err, apperrors.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	summary, err := UserWeek(db, f.user1.ID, 1)
	if err != nil {
		t.Fatalf("UserWeek: %v", err)
	}
	if summary.Staked != 80 {
		t.Errorf("staked = %v, expected 80", summary.Staked)
	}
	if summary.Remaining != 20 {
		t.Errorf("remaining = %v, expected 20", summary.Remaining)
	}
}
