package oddsService

import (
	"fmt"
	"hash/fnv"
	"time"
)

// mockProvider serves a fixed four-game board per week with deterministic
// results, so the whole system runs offline.
type mockProvider struct {
	now func() time.Time
}

func NewMockProvider() Provider {
	return &mockProvider{now: time.Now}
}

type mockMatch struct {
	home, away         string
	homeAmer, awayAmer int
}

var mockBoard = []mockMatch{
	{"Kansas City Chiefs", "Buffalo Bills", -118, 105},
	{"Dallas Cowboys", "Philadelphia Eagles", 110, -133},
	{"San Francisco 49ers", "Los Angeles Rams", -154, 125},
	{"Miami Dolphins", "New York Jets", -110, -110},
}

func (m *mockProvider) WeeklyOdds(week int) ([]GameQuote, error) {
	now := m.now()
	quotes := make([]GameQuote, 0, len(mockBoard))
	for i, match := range mockBoard {
		quotes = append(quotes, GameQuote{
			ID:        fmt.Sprintf("game_%d_%d", week, i+1),
			HomeTeam:  match.home,
			AwayTeam:  match.away,
			StartTime: now.Add(time.Duration(i+1) * 24 * time.Hour),
			Week:      week,
			Options: []OptionQuote{
				{
					OutcomeName:  match.home,
					Bookmaker:    "mockbook",
					AmericanOdds: match.homeAmer,
					DecimalOdds:  AmericanToDecimal(match.homeAmer),
				},
				{
					OutcomeName:  match.away,
					Bookmaker:    "mockbook",
					AmericanOdds: match.awayAmer,
					DecimalOdds:  AmericanToDecimal(match.awayAmer),
				},
			},
		})
	}
	return quotes, nil
}

// GameResult hashes the game id so repeated calls agree on the winner.
func (m *mockProvider) GameResult(gameID string) (string, error) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(gameID))
	if h.Sum32()%2 == 0 {
		return "home_win", nil
	}
	return "away_win", nil
}
