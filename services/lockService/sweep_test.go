package lockService

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"parlayLeague/models"
)

var testDBCount int64

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	n := atomic.AddInt64(&testDBCount, 1)
	dsn := fmt.Sprintf("file:lockservice_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.Game{}, &models.BettingOption{},
		&models.Bet{}, &models.ParlayBet{}, &models.ParlayLeg{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedGame(t *testing.T, db *gorm.DB, id string, start time.Time) models.BettingOption {
	t.Helper()
	game := models.Game{ID: id, HomeTeam: "Home " + id, AwayTeam: "Away " + id, StartTime: start, Week: 1}
	if err := db.Create(&game).Error; err != nil {
		t.Fatalf("create game: %v", err)
	}
	option := models.BettingOption{
		GameID: game.ID, MarketType: models.MarketH2H, OutcomeName: game.HomeTeam,
		Bookmaker: "book", AmericanOdds: -110, DecimalOdds: 1.9091,
	}
	if err := db.Create(&option).Error; err != nil {
		t.Fatalf("create option: %v", err)
	}
	return option
}

func TestSweepLocksStartedGamesOnly(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	started := seedGame(t, db, "started", now.Add(-time.Hour))
	upcoming := seedGame(t, db, "upcoming", now.Add(time.Hour))

	startedBet := models.Bet{
		UserID: 1, MatchupID: 1, BettingOptionID: started.ID, Week: 1,
		Amount: 10, DecimalOdds: started.DecimalOdds, Status: models.BetStatusPending,
	}
	upcomingBet := models.Bet{
		UserID: 1, MatchupID: 1, BettingOptionID: upcoming.ID, Week: 1,
		Amount: 10, DecimalOdds: upcoming.DecimalOdds, Status: models.BetStatusPending,
	}
	for _, b := range []*models.Bet{&startedBet, &upcomingBet} {
		if err := db.Create(b).Error; err != nil {
			t.Fatalf("create bet: %v", err)
		}
	}

	result, err := Sweep(db, now)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if result.OptionsLocked != 1 {
		t.Errorf("options locked = %d, expected 1", result.OptionsLocked)
	}
	if result.BetsLocked != 1 {
		t.Errorf("bets locked = %d, expected 1", result.BetsLocked)
	}

	var startedOption models.BettingOption
	if err := db.First(&startedOption, started.ID).Error; err != nil {
		t.Fatalf("reload started option: %v", err)
	}
	if !startedOption.IsLocked || startedOption.LockedAt == nil {
		t.Error("started option not locked")
	}
	var upcomingOption models.BettingOption
	if err := db.First(&upcomingOption, upcoming.ID).Error; err != nil {
		t.Fatalf("reload upcoming option: %v", err)
	}
	if upcomingOption.IsLocked {
		t.Error("upcoming option locked early")
	}

	var gotStarted models.Bet
	if err := db.First(&gotStarted, startedBet.ID).Error; err != nil {
		t.Fatalf("reload started bet: %v", err)
	}
	if gotStarted.Status != models.BetStatusLocked {
		t.Errorf("started bet status = %q, expected locked", gotStarted.Status)
	}
	var gotUpcoming models.Bet
	if err := db.First(&gotUpcoming, upcomingBet.ID).Error; err != nil {
		t.Fatalf("reload upcoming bet: %v", err)
	}
	if gotUpcoming.Status != models.BetStatusPending {
		t.Errorf("upcoming bet status = %q, expected pending", gotUpcoming.Status)
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	option := seedGame(t, db, "g1", now.Add(-time.Hour))

	first, err := Sweep(db, now)
	if err != nil {
		t.Fatalf("first Sweep: %v", err)
	}
	if first.OptionsLocked != 1 {
		t.Fatalf("first sweep locked %d options, expected 1", first.OptionsLocked)
	}

	var lockedAt time.Time
	var got models.BettingOption
	db.First(&got, option.ID)
	if got.LockedAt == nil {
		t.Fatal("locked_at not set")
	}
	lockedAt = *got.LockedAt

	second, err := Sweep(db, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("second Sweep: %v", err)
	}
	if second.OptionsLocked != 0 || second.BetsLocked != 0 {
		t.Errorf("second sweep touched rows: %+v", second)
	}

	db.First(&got, option.ID)
	if !got.LockedAt.Equal(lockedAt) {
		t.Error("locked_at moved on resweep")
	}
}

func TestSweepLocksParlayWithAnyStartedLeg(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	started := seedGame(t, db, "started", now.Add(-time.Hour))
	upcoming := seedGame(t, db, "upcoming", now.Add(time.Hour))

	parlay := models.ParlayBet{
		UserID: 1, MatchupID: 1, Week: 1, Amount: 10,
		CombinedOdds: 3.6447, Status: models.ParlayStatusPending,
		Legs: []models.ParlayLeg{
			{BettingOptionID: started.ID, DecimalOdds: 1.9091, Result: models.LegResultPending},
			{BettingOptionID: upcoming.ID, DecimalOdds: 1.9091, Result: models.LegResultPending},
		},
	}
	if err := db.Create(&parlay).Error; err != nil {
		t.Fatalf("create parlay: %v", err)
	}

	result, err := Sweep(db, now)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if result.ParlaysLocked != 1 {
		t.Errorf("parlays locked = %d, expected 1", result.ParlaysLocked)
	}

	var got models.ParlayBet
	db.First(&got, parlay.ID)
	if got.Status != models.ParlayStatusLocked {
		t.Errorf("parlay status = %q, expected locked", got.Status)
	}
}
