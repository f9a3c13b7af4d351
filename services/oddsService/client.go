package oddsService

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"parlayLeague/config"
)

// apiClient talks to The Odds API v4.
type apiClient struct {
	cfg    config.Odds
	client *http.Client
}

// NewProvider returns the configured provider: the live Odds API client, or
// the deterministic mock when no key is set or mock mode is on.
func NewProvider(cfg config.Odds) Provider {
	if cfg.Mock || cfg.APIKey == "" {
		return NewMockProvider()
	}
	return &apiClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type apiOutcome struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type apiMarket struct {
	Key      string       `json:"key"`
	Outcomes []apiOutcome `json:"outcomes"`
}

type apiBookmaker struct {
	Key     string      `json:"key"`
	Markets []apiMarket `json:"markets"`
}

type apiEvent struct {
	ID           string         `json:"id"`
	HomeTeam     string         `json:"home_team"`
	AwayTeam     string         `json:"away_team"`
	CommenceTime time.Time      `json:"commence_time"`
	Bookmakers   []apiBookmaker `json:"bookmakers"`
}

type apiScore struct {
	Name  string `json:"name"`
	Score string `json:"score"`
}

type apiScoreEvent struct {
	ID        string     `json:"id"`
	Completed bool       `json:"completed"`
	HomeTeam  string     `json:"home_team"`
	AwayTeam  string     `json:"away_team"`
	Scores    []apiScore `json:"scores"`
}

func (c *apiClient) WeeklyOdds(week int) ([]GameQuote, error) {
	from, to := weekWindow(week)
	q := url.Values{}
	q.Set("apiKey", c.cfg.APIKey)
	q.Set("regions", "us")
	q.Set("markets", "h2h")
	q.Set("dateFormat", "iso")
	q.Set("commenceTimeFrom", from.Format(time.RFC3339))
	q.Set("commenceTimeTo", to.Format(time.RFC3339))

	var events []apiEvent
	if err := c.getJSON(fmt.Sprintf("%s/sports/%s/odds?%s", c.cfg.BaseURL, c.cfg.Sport, q.Encode()), &events); err != nil {
		return nil, err
	}

	quotes := make([]GameQuote, 0, len(events))
	for _, ev := range events {
		quote := GameQuote{
			ID:        ev.ID,
			HomeTeam:  ev.HomeTeam,
			AwayTeam:  ev.AwayTeam,
			StartTime: ev.CommenceTime,
			Week:      week,
		}
		for _, team := range []string{ev.HomeTeam, ev.AwayTeam} {
			if book, price, ok := bestPrice(ev.Bookmakers, team); ok {
				quote.Options = append(quote.Options, OptionQuote{
					OutcomeName:  team,
					Bookmaker:    book,
					AmericanOdds: DecimalToAmerican(price),
					DecimalOdds:  price,
				})
			}
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}

func (c *apiClient) GameResult(gameID string) (string, error) {
	q := url.Values{}
	q.Set("apiKey", c.cfg.APIKey)
	q.Set("eventIds", gameID)
	q.Set("daysFrom", "3")

	var events []apiScoreEvent
	if err := c.getJSON(fmt.Sprintf("%s/sports/%s/scores?%s", c.cfg.BaseURL, c.cfg.Sport, q.Encode()), &events); err != nil {
		return "", err
	}
	for _, ev := range events {
		if ev.ID != gameID || !ev.Completed {
			continue
		}
		var home, away int
		for _, s := range ev.Scores {
			var n int
			if _, err := fmt.Sscanf(s.Score, "%d", &n); err != nil {
				continue
			}
			switch s.Name {
			case ev.HomeTeam:
				home = n
			case ev.AwayTeam:
				away = n
			}
		}
		switch {
		case home > away:
			return "home_win", nil
		case away > home:
			return "away_win", nil
		default:
			return "void", nil // tied moneyline has no winner, bets push
		}
	}
	return "", nil
}

func (c *apiClient) getJSON(requestURL string, out interface{}) error {
	resp, err := c.client.Get(requestURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("odds api returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// bestPrice returns the highest decimal price quoted for a team across
// bookmakers, with the bookmaker that quoted it.
func bestPrice(books []apiBookmaker, team string) (string, float64, bool) {
	var bookKey string
	var best float64
	for _, book := range books {
		for _, market := range book.Markets {
			if market.Key != "h2h" {
				continue
			}
			for _, outcome := range market.Outcomes {
				if outcome.Name == team && outcome.Price > best {
					best = outcome.Price
					bookKey = book.Key
				}
			}
		}
	}
	return bookKey, best, best > 0
}

// seasonAnchor is the most recent season opener (September 4) on or before
// now, so dates after New Year still land in the season in progress.
func seasonAnchor(now time.Time) time.Time {
	anchor := time.Date(now.Year(), time.September, 4, 0, 0, 0, 0, time.UTC)
	if now.Before(anchor) {
		anchor = anchor.AddDate(-1, 0, 0)
	}
	return anchor
}

// weekWindow maps a season week to its date range. Week 1 anchors to the
// season opener Thursday.
func weekWindow(week int) (time.Time, time.Time) {
	start := seasonAnchor(time.Now()).AddDate(0, 0, (week-1)*7)
	return start, start.AddDate(0, 0, 7)
}

// CurrentWeek returns the season week containing now.
func CurrentWeek(now time.Time) int {
	return int(now.Sub(seasonAnchor(now)).Hours()/(24*7)) + 1
}
