package oddsService

import "time"

// OptionQuote is one bettable h2h line as quoted by the provider.
type OptionQuote struct {
	OutcomeName  string  `json:"outcome_name"`
	Bookmaker    string  `json:"bookmaker"`
	AmericanOdds int     `json:"american_odds"`
	DecimalOdds  float64 `json:"decimal_odds"`
}

// GameQuote is a game plus its moneyline board for the week.
type GameQuote struct {
	ID        string        `json:"id"`
	HomeTeam  string        `json:"home_team"`
	AwayTeam  string        `json:"away_team"`
	StartTime time.Time     `json:"start_time"`
	Week      int           `json:"week"`
	Options   []OptionQuote `json:"options"`
}

// Provider supplies start times, odds and eventual results for games.
// Implemented by the Odds API client and by the deterministic mock used for
// offline operation.
type Provider interface {
	// WeeklyOdds returns the h2h board for a week.
	WeeklyOdds(week int) ([]GameQuote, error)
	// GameResult returns home_win/away_win/void once a game is decided, or
	// "" while it is still in play.
	GameResult(gameID string) (string, error)
}
